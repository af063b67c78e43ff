package cli

import (
	"fmt"

	"github.com/sfkleach/decisions/internal/template"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the records directory and decision template",
	Long: `Create the records directory (and any missing parents) and write the decision
template into it. An existing template is overwritten with the default text.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

func runInit(cmd *cobra.Command) error {
	path, err := template.NewStore(fsys, recordsDir).Initialize()
	if err != nil {
		return fmt.Errorf("initializing records: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialization complete: Template file created at '%s'\n", displayPath(path))
	return nil
}
