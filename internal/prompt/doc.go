// Package prompt asks the operator for a decision topic on the terminal. The
// Prompter interface lets commands be tested without a real terminal.
package prompt
