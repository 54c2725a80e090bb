package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
	"github.com/RyanSchlenz/CSV-Email-Merger/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect merge run history",
	Long:  "Commands for listing and viewing recorded merge runs. Requires store.driver to be set.",
}

// -- runs list --

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List merge runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")

		runs, err := st.ListRuns(ctx, store.RunFilter{
			Status: model.RunStatus(status),
			Limit:  limit,
		})
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs found.")
			return nil
		}

		formatRunsList(cmd.OutOrStdout(), runs)
		return nil
	},
}

// -- runs show --

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show full details of a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, _ := cmd.Flags().GetString("format")
		if format != "json" && format != "yaml" {
			return eris.Errorf("runs show: unknown format %q (want json or yaml)", format)
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs show")
		}

		return writeRun(cmd.OutOrStdout(), run, format)
	},
}

func init() {
	runsListCmd.Flags().String("status", "", "filter by run status (running, complete, failed)")
	runsListCmd.Flags().Int("limit", 50, "max number of runs to display")

	runsShowCmd.Flags().String("format", "json", "output format (json, yaml)")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

// formatRunsList writes a tabular list of runs to w.
func formatRunsList(out io.Writer, runs []model.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tROWS\tOUTPUT\tERROR\tCREATED\tDURATION")
	_, _ = fmt.Fprintln(w, "--\t------\t----\t------\t-----\t-------\t--------")

	for _, r := range runs {
		dur := r.UpdatedAt.Sub(r.CreatedAt)
		rows := "-"
		if r.Result != nil {
			rows = fmt.Sprintf("%d", r.Result.Stats.OutputRows)
			dur = time.Duration(r.Result.DurationMs) * time.Millisecond
		}

		errKind := ""
		if r.Error != nil {
			errKind = fmt.Sprintf("%s@%s", r.Error.Kind, r.Error.Stage)
		}

		output := r.Input.OutputPath
		if r.Input.DryRun {
			output += " (dry run)"
		}
		if len(output) > 30 {
			output = "..." + output[len(output)-27:]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncateID(r.ID),
			r.Status,
			rows,
			output,
			errKind,
			r.CreatedAt.Format("2006-01-02 15:04"),
			dur.Round(time.Millisecond).String(),
		)
	}
	_ = w.Flush()
}

// writeRun renders a single run as indented JSON or YAML.
func writeRun(out io.Writer, run *model.Run, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(run); err != nil {
			return eris.Wrap(err, "encode run yaml")
		}
		return eris.Wrap(enc.Close(), "close yaml encoder")
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(run), "encode run json")
	default:
		return eris.Errorf("unknown format %q", format)
	}
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
