package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var numericPlots bool

var numericCmd = &cobra.Command{
	Use:   "numeric",
	Short: "Analyze the numeric inventory CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, cleanup, err := newWorkflow()
		if err != nil {
			return err
		}
		defer cleanup()
		if !wf.Numeric(numericPlots) {
			return fmt.Errorf("numeric workflow failed")
		}
		return nil
	},
}

var categoricalCmd = &cobra.Command{
	Use:   "categorical",
	Short: "Analyze the categorical inventory CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, cleanup, err := newWorkflow()
		if err != nil {
			return err
		}
		defer cleanup()
		if !wf.Categorical() {
			return fmt.Errorf("categorical workflow failed")
		}
		return nil
	},
}

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Run vector and probability analytics over the dataset file",
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, cleanup, err := newWorkflow()
		if err != nil {
			return err
		}
		defer cleanup()
		if !wf.Vector() {
			return fmt.Errorf("vector workflow failed")
		}
		return nil
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every workflow in sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		wf, cleanup, err := newWorkflow()
		if err != nil {
			return err
		}
		defer cleanup()
		if !wf.RunAll() {
			return fmt.Errorf("one or more workflows failed")
		}
		return nil
	},
}

func init() {
	numericCmd.Flags().BoolVar(&numericPlots, "plots", true, "save the numeric charts and exports")
	rootCmd.AddCommand(numericCmd, categoricalCmd, vectorCmd, allCmd)
}
