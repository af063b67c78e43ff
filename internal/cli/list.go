package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/sfkleach/decisions/internal/branding"
	"github.com/sfkleach/decisions/internal/record"
	"github.com/spf13/cobra"
)

var (
	listMatch string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List decision records",
	Long: `List the numbered decision records in the records directory, in id order.

Use --match to filter by folder name with a glob such as "*grpc*" or "00{1,2}?-*".`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only show records whose folder name matches this glob")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	m := newManager(cmd)

	records, err := m.List()
	if errors.Is(err, record.ErrNotInitialized) {
		fmt.Fprintf(out, "The directory '%s' does not exist. Please run '%s --init' first.\n",
			displayPath(m.Dir()), branding.CLIName())
		return nil
	}
	if err != nil {
		return fmt.Errorf("listing decisions: %w", err)
	}

	if listMatch != "" {
		filtered := records[:0]
		for _, r := range records {
			ok, err := r.Match(listMatch)
			if err != nil {
				return err
			}
			if ok {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if listJSON {
		if records == nil {
			records = []record.Record{}
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No decision records found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPATH")
	for _, r := range records {
		title := r.Title
		if r.File == "" {
			title = "(missing " + r.Name + ".md)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, title, displayPath(r.Dir))
	}
	return tw.Flush()
}
