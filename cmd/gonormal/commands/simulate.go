package commands

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gonormal/report"
	"github.com/sartorproj/gonormal/simulate"
	"github.com/sartorproj/gonormal/stats"
)

// NewSimulateCommand creates the simulate command group.
func NewSimulateCommand(globals *Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate a synthetic dataset",
	}

	cmd.AddCommand(newLettersCommand(globals))
	cmd.AddCommand(newBooksCommand(globals))

	return cmd
}

type lettersFlags struct {
	lambda float64
	start  string
	end    string
	seed   uint64
	output string
}

func newLettersCommand(globals *Globals) *cobra.Command {
	flags := &lettersFlags{}

	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Simulate daily letter counts",
		Long:  "Simulate the number of letters received per day as Poisson counts and write them as CSV.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLetters(cmd, globals, flags)
		},
	}

	cmd.Flags().Float64Var(&flags.lambda, "lambda", 0, "mean letters per day")
	cmd.Flags().StringVar(&flags.start, "start", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.end, "end", "", "last day, inclusive (YYYY-MM-DD)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output CSV path")

	return cmd
}

func runLetters(cmd *cobra.Command, globals *Globals, flags *lettersFlags) error {
	cfg, logger, err := globals.setup(cmd)
	if err != nil {
		return err
	}

	section := cfg.Letters
	if cmd.Flags().Changed("lambda") {
		section.Lambda = flags.lambda
	}
	if cmd.Flags().Changed("start") {
		section.StartDate = flags.start
	}
	if cmd.Flags().Changed("end") {
		section.EndDate = flags.end
	}
	if cmd.Flags().Changed("seed") {
		section.Seed = flags.seed
	}
	if cmd.Flags().Changed("output") {
		section.Output = flags.output
	}

	params, err := section.Simulation()
	if err != nil {
		return err
	}

	started := time.Now()
	series, err := simulate.Letters(params, simulate.NewSource(section.Seed))
	if err != nil {
		return err
	}
	if err := simulate.SaveLetters(section.Output, series); err != nil {
		return err
	}

	mean, err := stats.Mean(series.Values)
	if err != nil {
		return err
	}

	logger.Info("simulated letters",
		"days", series.Len(),
		"lambda", params.Lambda,
		"seed", section.Seed,
		"output", section.Output,
		"elapsed", time.Since(started))

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s days to %s (mean %.2f letters/day)\n",
		humanize.Comma(int64(series.Len())), section.Output, mean)

	return nil
}

type booksFlags struct {
	count  int
	seed   uint64
	output string
}

func newBooksCommand(globals *Globals) *cobra.Command {
	flags := &booksFlags{}

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Generate the book whitespace dataset",
		Long:  "Generate lyric and prose books with their page whitespace, write them as CSV and print grouped averages.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBooks(cmd, globals, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.count, "count", "n", 0, "number of books")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output CSV path")

	return cmd
}

func runBooks(cmd *cobra.Command, globals *Globals, flags *booksFlags) error {
	cfg, logger, err := globals.setup(cmd)
	if err != nil {
		return err
	}

	section := cfg.Books
	if cmd.Flags().Changed("count") {
		section.Count = flags.count
	}
	if cmd.Flags().Changed("seed") {
		section.Seed = flags.seed
	}
	if cmd.Flags().Changed("output") {
		section.Output = flags.output
	}

	params, err := section.Simulation()
	if err != nil {
		return err
	}

	books, err := simulate.Books(params, simulate.NewSource(section.Seed))
	if err != nil {
		return err
	}
	if err := simulate.SaveBooks(section.Output, books); err != nil {
		return err
	}

	logger.Info("generated books", "count", len(books), "seed", section.Seed, "output", section.Output)

	groups, err := report.Group(books, simulate.FieldWhitespaceCM2)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s books to %s\n\n", humanize.Comma(int64(len(books))), section.Output)
	fmt.Fprintln(out, groups.Table())
	if groups.SimpsonsParadox() {
		fmt.Fprintln(out, "Simpson's paradox: the per-format ordering of genres reverses in aggregate.")
	}

	return nil
}
