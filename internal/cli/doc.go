// Package cli defines the Cobra command tree for the decisions CLI. The root
// command carries the --init and --add flags; each other file registers one
// subcommand (init, add, list, config, version) with the root. Commands
// delegate to internal packages for business logic and only handle flag
// parsing, output formatting, and user interaction.
package cli
