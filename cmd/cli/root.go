// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"csvplot/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	columnColor  = color.New(color.FgBlue)
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "csvplot <csv-path> <x-column> <y-column> [title]",
	Short: "Plot two CSV columns as a PNG line chart",
	Long: `Reads a CSV file with a header row, extracts two named numeric columns
and renders a line-and-marker plot to a PNG image next to the input file.

The optional title argument defaults to the y-column name. The output is
written as <input-stem>_<y-column>.png in the input's directory, replacing
any existing file.`,
	Example: "  csvplot vqe_energy.csv theta energy\n" +
		"  csvplot error_sweep.csv chi error_energy \"Truncation error\"",
	Args:              cobra.RangeArgs(3, 4),
	ValidArgsFunction: columnCompletionFunc,
	SilenceErrors:     true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose)
	},
	RunE: runPlot,
}

func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		// Diagnostics go to standard output, matching the success path.
		errorColor.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log debug detail to the state log file")
}
