package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/shopgen/internal/check"
	"github.com/roach88/shopgen/internal/csvfile"
)

// VerifySummary is the payload of a verify run.
type VerifySummary struct {
	SourceDir string          `json:"source_dir"`
	Valid     bool            `json:"valid"`
	Findings  []check.Finding `json:"findings,omitempty"`
}

func (s VerifySummary) String() string {
	if s.Valid {
		return fmt.Sprintf("Dataset %s is consistent", s.SourceDir)
	}
	msg := fmt.Sprintf("Dataset %s has %d violations:", s.SourceDir, len(s.Findings))
	for _, f := range s.Findings {
		msg += "\n  " + f.String()
	}
	return msg
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <csv-dir>",
		Short: "Verify the consistency rules of a dataset",
		Long: `Read a dataset directory and check its cross-table consistency
rules: foreign key resolution, item distinctness and bounds, payment
shape per order status, charge amounts, and date ordering.

Exits 0 on a clean dataset and 1 when violations are found.

Example:
  shopgen verify ./data`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runVerify(opts *RootOptions, csvDir string, cmd *cobra.Command) error {
	slog.Info("reading dataset", "dir", csvDir)
	tables, err := csvfile.ReadDir(csvDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read dataset", err)
	}

	findings := check.Dataset(tables)
	slog.Info("verification done", "findings", len(findings))

	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
	summary := VerifySummary{
		SourceDir: csvDir,
		Valid:     len(findings) == 0,
		Findings:  findings,
	}
	if err := formatter.Success(summary); err != nil {
		return err
	}
	if !summary.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d consistency violations", len(findings)))
	}
	return nil
}
