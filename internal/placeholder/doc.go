// Package placeholder resolves {{Token}} markers in record templates. A
// Registry maps each token string to a resolver function; tokens that are not
// registered are left in the output unchanged, so templates can carry markers
// meant for humans or for later tooling.
package placeholder
