package commands

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gonormal/report"
	"github.com/sartorproj/gonormal/timeseries"
)

type describeFlags struct {
	file    string
	columns []string
	where   string
	format  string
	alpha   float64
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(globals *Globals) *cobra.Command {
	flags := &describeFlags{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarise CSV columns and test them for normality",
		Long: `Load numeric columns from a CSV file and print their descriptive statistics,
1/2/3 standard deviation coverage and the Jarque-Bera normality verdict.`,
		Example: `  gonormal describe --file data/letters.csv --column Letters
  gonormal describe --file data/margin.csv --column whitespace_cm2 --where genre=Lyric --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDescribe(cmd, globals, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "CSV file to read")
	cmd.Flags().StringSliceVarP(&flags.columns, "column", "c", nil, "column to describe (repeatable)")
	cmd.Flags().StringVar(&flags.where, "where", "", "keep only rows matching column=value")
	cmd.Flags().StringVar(&flags.format, "format", string(report.FormatTable), "output format: table, json, yaml")
	cmd.Flags().Float64Var(&flags.alpha, "alpha", 0, "significance level (default from config)")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func runDescribe(cmd *cobra.Command, globals *Globals, flags *describeFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, logger, err := globals.setup(cmd)
	if err != nil {
		return err
	}

	alpha := cfg.Report.Alpha
	if cmd.Flags().Changed("alpha") {
		alpha = flags.alpha
	}
	if !(alpha > 0 && alpha < 1) {
		return errors.Newf("alpha must be in (0, 1), got %v", alpha)
	}

	filterColumn, filterValue, err := parseWhere(flags.where)
	if err != nil {
		return err
	}

	opts := timeseries.DefaultCSVOptions()
	opts.FilterColumn = filterColumn
	opts.FilterValue = filterValue

	columns, err := timeseries.LoadCSVColumns(flags.file, flags.columns, opts)
	if err != nil {
		return err
	}

	results := make([]report.Result, len(columns))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, series := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			summary, err := series.Describe()
			if err != nil {
				return err
			}

			results[i] = report.NewResult(series.Name, summary, alpha)
			logger.Debug("described column", "column", series.Name, "n", summary.N, "degenerate", summary.Degenerate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("described columns", "file", flags.file, "columns", len(results), "alpha", alpha)

	return report.Encode(cmd.OutOrStdout(), format, results)
}

func parseWhere(where string) (column, value string, err error) {
	if where == "" {
		return "", "", nil
	}
	column, value, ok := strings.Cut(where, "=")
	if !ok || strings.TrimSpace(column) == "" {
		return "", "", errors.Newf("--where must have the form column=value, got %q", where)
	}
	return strings.TrimSpace(column), strings.TrimSpace(value), nil
}
