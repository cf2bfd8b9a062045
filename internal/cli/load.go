package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/shopgen/internal/csvfile"
	"github.com/roach88/shopgen/internal/store"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database string
}

// LoadSummary is the success payload of a load run.
type LoadSummary struct {
	RunID      string `json:"run_id"`
	Database   string `json:"database"`
	SourceDir  string `json:"source_dir"`
	Customers  int    `json:"customers"`
	Products   int    `json:"products"`
	Orders     int    `json:"orders"`
	OrderItems int    `json:"order_items"`
	Payments   int    `json:"payments"`
}

func (s LoadSummary) String() string {
	return fmt.Sprintf("Loaded %s into %s (run %s): %d customers, %d products, %d orders, %d order items, %d payments",
		s.SourceDir, s.Database, s.RunID, s.Customers, s.Products, s.Orders, s.OrderItems, s.Payments)
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <csv-dir>",
		Short: "Load a generated dataset into SQLite",
		Long: `Load the five CSV files from a dataset directory into a SQLite
database (creating it if it doesn't exist).

The load runs in a single transaction with foreign keys enforced and
replaces any previously loaded dataset. Each load is recorded in the
load_runs table.

Example:
  shopgen load --db ./shop.db ./data`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *LoadOptions, csvDir string, cmd *cobra.Command) error {
	slog.Info("reading dataset", "dir", csvDir)
	tables, err := csvfile.ReadDir(csvDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read dataset", err)
	}

	slog.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runID, err := st.LoadTables(cmd.Context(), tables, csvDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}
	slog.Info("dataset loaded", "run_id", runID)

	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
	return formatter.Success(LoadSummary{
		RunID:      runID,
		Database:   opts.Database,
		SourceDir:  csvDir,
		Customers:  len(tables.Customers),
		Products:   len(tables.Products),
		Orders:     len(tables.Orders),
		OrderItems: len(tables.OrderItems),
		Payments:   len(tables.Payments),
	})
}
