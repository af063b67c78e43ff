package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create a missing directory or template and remove empty record folders")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the records directory for problems",
	Long: `Run diagnostic checks on the records directory: the template is present,
every numbered folder holds its markdown file, and no id is used twice.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		problems, err := newManager(cmd).Check(out, doctorFix)
		if err != nil {
			return err
		}
		if problems > 0 {
			fmt.Fprintf(out, "\n%d problem(s) found.\n", problems)
		}
		return nil
	},
}
