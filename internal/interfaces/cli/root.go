// Package cli implements the legalai command-line tool.  The CLI runs
// the analysis engine in-process over local files, with no server round
// trip, so it works offline and in CI pipelines.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/analyzer"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the global CLI flags.
type rootOptions struct {
	OutputFormat string
	Verbose      bool
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "legalai",
		Short:   "Legal-AI-Analyzer CLI for analysing legal documents",
		Long:    "Analyse legal documents from the command line: clause segmentation,\nrisk scoring, plain-language simplification, entity extraction, and\njurisdiction compliance checks.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(newAnalyzeCommand(opts))
	cmd.AddCommand(newComplianceCommand(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// newEngine builds an analysis engine for one CLI invocation.
func newEngine(opts *rootOptions) *analyzer.Analyzer {
	log := logging.NewNopLogger()
	if opts.Verbose {
		log = logging.NewDefaultLogger()
	}
	return analyzer.New(patterns.Default(), nil, analyzer.DefaultOptions(), log)
}

// readDocument loads the document text from a file argument, or from
// stdin when the argument is "-".
func readDocument(path string) (filename, text string, err error) {
	if path == "-" {
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return path, string(data), nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
