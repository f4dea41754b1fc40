package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gonormal/report"
	"github.com/sartorproj/gonormal/timeseries"
)

type plotFlags struct {
	file   string
	column string
	title  string
	lambda float64
	bins   int
	output string
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(globals *Globals) *cobra.Command {
	flags := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Write a histogram of a CSV column as HTML",
		Long: `Write the relative frequencies of a CSV column as an HTML bar chart.
Count data is binned per value; --lambda overlays the Poisson pmf.`,
		Example: `  gonormal plot --file data/letters.csv --column Letters --lambda 3 --output letters.html`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd, globals, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "CSV file to read")
	cmd.Flags().StringVarP(&flags.column, "column", "c", "", "column to plot")
	cmd.Flags().StringVar(&flags.title, "title", "", "chart title (default: column name)")
	cmd.Flags().Float64Var(&flags.lambda, "lambda", 0, "overlay a Poisson pmf with this mean")
	cmd.Flags().IntVar(&flags.bins, "bins", 0, "number of equal-width bins (0 = automatic)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "histogram.html", "output HTML path")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func runPlot(cmd *cobra.Command, globals *Globals, flags *plotFlags) error {
	if flags.lambda < 0 {
		return errors.Newf("lambda must not be negative, got %v", flags.lambda)
	}

	_, logger, err := globals.setup(cmd)
	if err != nil {
		return err
	}

	series, err := timeseries.LoadCSVColumn(flags.file, flags.column)
	if err != nil {
		return err
	}

	title := flags.title
	if title == "" {
		title = flags.column
	}

	if err := os.MkdirAll(filepath.Dir(flags.output), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	file, err := os.Create(flags.output)
	if err != nil {
		return errors.Wrap(err, "create chart")
	}

	err = report.Histogram(file, series.Values, report.HistogramOptions{
		Title:  title,
		Lambda: flags.lambda,
		Bins:   flags.bins,
	})
	if closeErr := file.Close(); err == nil {
		err = errors.Wrap(closeErr, "close chart")
	}
	if err != nil {
		if removeErr := os.Remove(flags.output); removeErr != nil {
			logger.Warn("could not remove partial chart", "output", flags.output, "error", removeErr)
		}
		return err
	}

	logger.Info("wrote histogram", "column", flags.column, "n", series.Len(), "output", flags.output)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote histogram of %s to %s\n", flags.column, flags.output)

	return nil
}
