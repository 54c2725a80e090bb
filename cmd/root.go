package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/config"
	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "roster-merge",
	Short: "Merge a user roster with a directory export",
	Long: "Drops placeholder caller rows from a user roster, joins it to a directory export on email, " +
		"takes organization and external_id from the directory, and writes the updated roster.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runMerge,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.{json,yaml})")
	addMergeFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		zap.L().Error("roster-merge failed", zap.String("kind", string(model.KindOf(err))), zap.Error(err))
		_ = zap.L().Sync()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
