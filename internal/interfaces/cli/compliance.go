package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newComplianceCommand(opts *rootOptions) *cobra.Command {
	var jurisdiction string

	cmd := &cobra.Command{
		Use:   "compliance <file>",
		Short: "Check a legal document against a jurisdiction rule set",
		Long:  "Analyses the document and verifies that the clauses required by the\njurisdiction are present and that no restricted terms appear.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine(opts)
			filename, text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			analysis := eng.Analyze(text, filename)
			report := eng.CheckCompliance(analysis.Clauses, jurisdiction)

			if opts.OutputFormat == "json" {
				return printJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Jurisdiction:     %s\n", report.Jurisdiction)
			fmt.Fprintf(out, "Compliance:       %s (%.1f%%)\n", report.ComplianceLevel, report.ComplianceScore)
			fmt.Fprintf(out, "Checked:          %s\n", strings.Join(report.CheckedProvisions, ", "))
			if len(report.Issues) > 0 {
				fmt.Fprintln(out, "\nIssues:")
				for _, issue := range report.Issues {
					fmt.Fprintf(out, "  - %s\n", issue)
				}
			}
			if len(report.Recommendations) > 0 {
				fmt.Fprintln(out, "\nRecommendations:")
				for _, rec := range report.Recommendations {
					fmt.Fprintf(out, "  * %s\n", rec)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "indian", "jurisdiction to check against (indian, us, eu, uk)")
	return cmd
}
