// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"time"

	"csvplot/internal/dataset"
	"csvplot/internal/logger"
	"csvplot/internal/render"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// runPlot executes the whole run as one linear pass: validate the input
// path, load the two requested columns, render the figure and save it next
// to the input file.
func runPlot(cmd *cobra.Command, args []string) error {
	// Past argument validation; from here on a failure is a runtime error,
	// not a usage error.
	cmd.SilenceUsage = true

	csvPath := args[0]
	xcol := args[1]
	ycol := args[2]
	title := ycol
	if len(args) > 3 {
		title = args[3]
	}

	logger.Debug("Starting plot run", "csv", csvPath, "x", xcol, "y", ycol, "title", title)

	if _, err := os.Stat(csvPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("CSV not found: %s", csvPath)
		}
		return fmt.Errorf("cannot access %s: %w", csvPath, err)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Color("cyan")
	s.Suffix = fmt.Sprintf(" Reading %s...", csvPath)
	s.Start()

	series, err := dataset.Load(csvPath, xcol, ycol)
	s.Stop()
	if err != nil {
		logger.Error("CSV load failed", "csv", csvPath, "error", err)
		return err
	}

	statusColor.Printf("Loaded %d rows from %s (%s vs %s)\n",
		series.Len(), csvPath, columnColor.Sprint(ycol), columnColor.Sprint(xcol))

	s.Suffix = " Rendering plot..."
	s.Restart()

	fig, err := render.Render(series, render.Options{
		XLabel: xcol,
		YLabel: ycol,
		Title:  title,
	})
	if err != nil {
		s.Stop()
		logger.Error("Render failed", "csv", csvPath, "error", err)
		return err
	}

	outPath := render.OutputPath(csvPath, ycol)
	err = render.Save(fig, outPath)
	s.Stop()
	if err != nil {
		logger.Error("Save failed", "path", outPath, "error", err)
		return err
	}

	logger.Info("Plot written", "path", outPath, "rows", series.Len())
	successColor.Printf("Saved %s\n", outPath)
	return nil
}
