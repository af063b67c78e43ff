package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sfkleach/decisions/internal/branding"
	"github.com/sfkleach/decisions/internal/record"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [topic...]",
	Short: "Add a new numbered decision record",
	Long: `Copy the decision template into a new numbered folder and file, filling in the
title, today's date and the record id. Arguments are joined with spaces to form
the topic; without arguments the topic is prompted for.

Examples:
  decisions add "Adopt gRPC"
  decisions add Use Caching`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		if len(args) == 0 {
			var err error
			topic, err = prompter.Topic(cmd.Context())
			if err != nil {
				return fmt.Errorf("reading topic: %w", err)
			}
		}
		return runAdd(cmd, topic)
	},
}

// runAdd creates one record. Missing preconditions are reported to the
// operator and are not treated as command failures.
func runAdd(cmd *cobra.Command, topic string) error {
	out := cmd.OutOrStdout()
	m := newManager(cmd)

	result, err := m.Add(topic)
	switch {
	case errors.Is(err, record.ErrNotInitialized):
		fmt.Fprintf(out, "The directory '%s' does not exist. Please run '%s --init' first.\n",
			displayPath(m.Dir()), branding.CLIName())
		return nil
	case errors.Is(err, record.ErrTemplateMissing):
		fmt.Fprintf(out, "Template file not found at '%s'. Please run '%s --init' first.\n",
			displayPath(m.Store().Path()), branding.CLIName())
		return nil
	case err != nil:
		return fmt.Errorf("adding decision: %w", err)
	}

	fmt.Fprintf(out, "Decision '%s' added at '%s'\n", topic, displayPath(result.File))
	return nil
}
