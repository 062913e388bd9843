package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stocklens/stocklens/internal/table"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in sample inputs to the configured paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		for _, p := range []string{cfg.NumericCSV, cfg.CategoricalCSV, cfg.DatasetFile} {
			if dir := filepath.Dir(p); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("mkdir %s: %w", dir, err)
				}
			}
		}
		if err := table.SampleNumeric().WriteCSV(cfg.NumericCSV); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created sample CSV at %s\n", cfg.NumericCSV)
		if err := table.SampleCategorical().WriteCSV(cfg.CategoricalCSV); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created sample CSV at %s\n", cfg.CategoricalCSV)
		if err := table.SampleDataset().SaveDataset(cfg.DatasetFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created sample dataset at %s\n", cfg.DatasetFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
