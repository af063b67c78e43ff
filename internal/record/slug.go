package record

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify derives a filesystem-safe name from a topic. Characters other than
// letters, digits, whitespace and '-' are dropped, the result is trimmed and
// lower-cased, and each whitespace run becomes a single '-'. A blank topic
// yields an empty slug.
func Slugify(topic string) string {
	topic = norm.NFKC.String(topic)

	var b strings.Builder
	b.Grow(len(topic))
	for _, r := range topic {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			b.WriteRune(r)
		}
	}

	// Fields trims and splits on any whitespace run.
	return strings.Join(strings.Fields(strings.ToLower(b.String())), "-")
}
