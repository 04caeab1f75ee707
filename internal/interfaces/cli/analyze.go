package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

func newAnalyzeCommand(opts *rootOptions) *cobra.Command {
	var showEntities bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyse a legal document and print its risk report",
		Long:  "Segments the document into clauses, classifies and scores each one,\nand prints the document-level risk assessment.  Pass '-' to read the\ndocument from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine(opts)
			filename, text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			analysis := eng.Analyze(text, filename)
			if opts.OutputFormat == "json" {
				return printJSON(cmd, analysis)
			}
			printAnalysis(cmd, analysis, showEntities)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEntities, "entities", false, "include extracted entities in the output")
	return cmd
}

func printAnalysis(cmd *cobra.Command, analysis legal.DocumentAnalysis, showEntities bool) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Document type:  %s\n", analysis.DocumentType)
	fmt.Fprintf(out, "Overall risk:   %s (avg %.1f, max %d)\n",
		strings.ToUpper(analysis.OverallRisk.String()),
		analysis.RiskAssessment.RiskScore,
		analysis.RiskAssessment.MaxRiskScore)
	fmt.Fprintf(out, "\n%s\n", analysis.Summary)
	fmt.Fprintf(out, "\n%s\n", analysis.RiskAssessment.RiskSummary)

	if len(analysis.Clauses) > 0 {
		fmt.Fprintf(out, "\nClauses (%d):\n", len(analysis.Clauses))
		for _, clause := range analysis.Clauses {
			fmt.Fprintf(out, "  [%d/10 %-6s] %s\n", clause.RiskScore, clause.RiskLevel, clause.Title)
			fmt.Fprintf(out, "      %s\n", clause.Simplified)
			for _, factor := range clause.RiskFactors {
				fmt.Fprintf(out, "      - %s\n", factor)
			}
		}
	}

	if len(analysis.RiskAssessment.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, rec := range analysis.RiskAssessment.Recommendations {
			fmt.Fprintf(out, "  * %s\n", rec)
		}
	}

	if showEntities && len(analysis.Entities) > 0 {
		fmt.Fprintln(out, "\nEntities:")
		for _, kind := range []string{"parties", "dates", "amounts", "percentages", "obligations", "penalties"} {
			values := analysis.Entities[kind]
			if len(values) == 0 {
				continue
			}
			fmt.Fprintf(out, "  %s: %s\n", kind, strings.Join(values, "; "))
		}
	}
}
