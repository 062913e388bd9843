package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu over the analysis workflows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// runner is the subset of workflow methods the menu drives.
type runner interface {
	Numeric(visualize bool) bool
	Categorical() bool
	Vector() bool
	RunAll() bool
}

func runMenu(cmd *cobra.Command) error {
	wf, cleanup, err := newWorkflow()
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	banner(out)
	if !confirmInputPaths(os.Stdin, out) {
		return nil
	}
	menuLoop(os.Stdin, out, wf)
	return nil
}

func banner(out io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, "\n"+rule)
	fmt.Fprintln(out, center("INVENTORY ANALYTICS", 60))
	fmt.Fprintln(out, rule)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

// confirmInputPaths warns about missing input files and asks whether to
// continue anyway.
func confirmInputPaths(in io.Reader, out io.Writer) bool {
	var missing []string
	for _, p := range []string{cfg.NumericCSV, cfg.CategoricalCSV, cfg.DatasetFile} {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return true
	}
	fmt.Fprintln(out, "\nWARNING: Missing input files (run 'stocklens seed' to create samples):")
	for _, m := range missing {
		fmt.Fprintf(out, "  - %s\n", m)
	}
	fmt.Fprint(out, "Continue anyway? (y/n): ")
	return readYes(bufio.NewScanner(in))
}

// menuLoop drives the MainMenu/Running/Exit state machine: one integer
// selection per display, each workflow running to completion before the menu
// reappears. Invalid input re-prompts.
func menuLoop(in io.Reader, out io.Writer, r runner) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "\nMAIN MENU:")
		fmt.Fprintln(out, "1. Process numeric data")
		fmt.Fprintln(out, "2. Process categorical data")
		fmt.Fprintln(out, "3. Process vector data")
		fmt.Fprintln(out, "4. Run all")
		fmt.Fprintln(out, "5. Exit")
		fmt.Fprint(out, "Enter choice (1-5): ")

		if !sc.Scan() {
			return
		}
		choice, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil || choice < 1 || choice > 5 {
			fmt.Fprintln(out, "Enter a number 1-5.")
			continue
		}
		switch choice {
		case 1:
			fmt.Fprint(out, "Generate visualizations? (y/n): ")
			r.Numeric(readYes(sc))
		case 2:
			r.Categorical()
		case 3:
			r.Vector()
		case 4:
			r.RunAll()
		case 5:
			fmt.Fprintln(out, "Exiting. Goodbye!")
			return
		}
	}
}

func readYes(sc *bufio.Scanner) bool {
	if !sc.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(sc.Text()), "y")
}
