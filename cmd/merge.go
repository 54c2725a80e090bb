package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/merge"
)

var (
	mergePreview int
	mergeDryRun  bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Run the roster merge",
	Long:  "Reads file1_path and file2_path from the config, merges them and writes updated_path.",
	Args:  cobra.NoArgs,
	RunE:  runMerge,
}

func init() {
	addMergeFlags(mergeCmd)
	rootCmd.AddCommand(mergeCmd)
}

// addMergeFlags registers the merge flags on cmd. The root command and the
// merge subcommand share the same variables.
func addMergeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&mergePreview, "preview", 0, "print the first N rows of each intermediate table")
	cmd.Flags().BoolVar(&mergeDryRun, "dry-run", false, "run every stage but do not write the output file")
}

func runMerge(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	rec, closeRec := openRecorder(ctx)
	defer closeRec()

	p := merge.New(merge.Options{
		PrimaryPath:       cfg.File1Path,
		SecondaryPath:     cfg.File2Path,
		OutputPath:        cfg.UpdatedPath,
		SecondarySkipRows: cfg.Input.SecondarySkipRows,
		DryRun:            mergeDryRun,
		Preview:           mergePreview,
		PreviewOut:        out,
	}, rec)

	res, err := p.Run(ctx)
	if err != nil {
		return err
	}

	if mergeDryRun {
		_, _ = fmt.Fprintf(out, "Dry run: %d rows would be written to %s.\n", res.Stats.OutputRows, cfg.UpdatedPath)
		return nil
	}
	_, _ = fmt.Fprintf(out, "Updated data saved successfully to %s (%d rows).\n", cfg.UpdatedPath, res.Stats.OutputRows)
	return nil
}

// openRecorder opens the run history store when one is configured. Run
// history is best effort: an unavailable store is logged and the merge runs
// without it.
func openRecorder(ctx context.Context) (merge.Recorder, func()) {
	if cfg.Store.Driver == "" {
		return nil, func() {}
	}
	st, err := initStore(ctx)
	if err != nil {
		zap.L().Warn("run history unavailable", zap.String("driver", cfg.Store.Driver), zap.Error(err))
		return nil, func() {}
	}
	if err := st.Migrate(ctx); err != nil {
		zap.L().Warn("run history unavailable", zap.String("driver", cfg.Store.Driver), zap.Error(err))
		_ = st.Close()
		return nil, func() {}
	}
	return st, func() { _ = st.Close() }
}
