package placeholder

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"time"
)

// Built-in tokens recognized by the default template.
const (
	TokenTitle    = "{{Decision Title}}"
	TokenDate     = "{{YYYY-MM-DD}}"
	TokenRecordID = "{{RecordID}}"
)

// DateLayout is the layout used for TokenDate.
const DateLayout = "2006-01-02"

// tokenPattern matches a single {{...}} marker with no nested braces.
var tokenPattern = regexp.MustCompile(`{{[^{}]+}}`)

// Resolver produces the replacement text for one token.
type Resolver func() string

// Registry maps placeholder tokens to resolvers.
type Registry struct {
	resolvers map[string]Resolver
	warn      io.Writer
}

// NewRegistry returns an empty registry. Diagnostics are written to warn,
// which may be nil to discard them.
func NewRegistry(warn io.Writer) *Registry {
	if warn == nil {
		warn = io.Discard
	}
	return &Registry{
		resolvers: make(map[string]Resolver),
		warn:      warn,
	}
}

// Register binds token to fn, replacing any earlier binding.
func (r *Registry) Register(token string, fn Resolver) {
	r.resolvers[token] = fn
}

// Lookup returns the resolver for token and whether the token is registered.
func (r *Registry) Lookup(token string) (Resolver, bool) {
	fn, ok := r.resolvers[token]
	return fn, ok
}

// Tokens returns the registered tokens in sorted order.
func (r *Registry) Tokens() []string {
	tokens := make([]string, 0, len(r.resolvers))
	for t := range r.resolvers {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Render replaces every registered token in text with its resolver's output.
func (r *Registry) Render(text string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		fn, ok := r.resolvers[token]
		if !ok {
			return token
		}
		if fn == nil {
			fmt.Fprintf(r.warn, "Warning: placeholder %s is registered without a resolver.\n", token)
			return token
		}
		return fn()
	})
}

// Builtins returns a registry with the three tokens of the default template
// bound to title, id and the date of now.
func Builtins(warn io.Writer, title, id string, now time.Time) *Registry {
	r := NewRegistry(warn)
	r.Register(TokenTitle, func() string { return title })
	r.Register(TokenDate, func() string { return now.Format(DateLayout) })
	r.Register(TokenRecordID, func() string { return id })
	return r
}
