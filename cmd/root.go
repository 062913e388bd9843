package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/stocklens/stocklens/internal/config"
	"github.com/stocklens/stocklens/internal/logging"
	"github.com/stocklens/stocklens/internal/workflow"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "stocklens",
	Short: "stocklens: inventory statistics, vector analytics, and charts",
	Long: `stocklens reads tabular inventory data from CSV or a serialized dataset
file, computes descriptive statistics, group counts, vector algebra, and
probability tables, and renders reports and chart images.

Run without arguments for the interactive menu, or use the subcommands
directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stocklens.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "echo log lines to stderr")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// newWorkflow builds a workflow over the loaded config, plus a cleanup that
// flushes the log file.
func newWorkflow() (*workflow.Workflow, func(), error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("configuration not loaded")
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogFile, debug)
	if err != nil {
		return nil, nil, err
	}
	wf := workflow.New(cfg, logging.Named(log, "workflow"), os.Stdout)
	cleanup := func() { _ = log.Sync() }
	log.Info("stocklens started", zap.String("output_dir", cfg.OutputDir))
	return wf, cleanup, nil
}
