package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/logging"
	"github.com/arcanaland/klondike/internal/validator"
)

var (
	trials int
	maxZ   float64
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify deck construction and shuffle uniformity",
	Long: `Check builds a deck and verifies it holds each of the 52 cards once in
construction order, shuffles it and verifies nothing was lost or duplicated,
then shuffles a fresh deck many times and runs a chi-square test on how often
each card lands in each position.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		logger := logging.New(cmd.ErrOrStderr(), verbose)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		failed := 0

		d := deck.New()
		v := validator.NewValidator(&d)
		v.RequireOrder = true
		if !printResults(out, "construction", v.Validate()) {
			failed++
		}

		shuffleDeck(&d, cfg, logger)
		if !printResults(out, "shuffle", validator.NewValidator(&d).Validate()) {
			failed++
		}

		shuffle := uniformityShuffle(cfg)
		logger.Debug("running uniformity trials", logger.Args("trials", trials, "shuffle", cfg.Shuffle))
		report, err := validator.CheckUniformity(trials, shuffle)
		if err != nil {
			return fmt.Errorf("uniformity check: %w", err)
		}
		if report.Uniform(maxZ) {
			fmt.Fprintf(out, "✅ uniformity: chi-square %.1f (mean %.0f, z %.2f) over %d shuffles\n",
				report.Statistic, report.Mean, report.Z, report.Trials)
		} else {
			fmt.Fprintf(out, "❌ uniformity: chi-square %.1f (mean %.0f, z %.2f > %.2f) over %d shuffles, %d broken\n",
				report.Statistic, report.Mean, report.Z, maxZ, report.Trials, report.Broken)
			failed++
		}

		if failed > 0 {
			return fmt.Errorf("validation failed: %d of 3 checks", failed)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&trials, "trials", 100*deck.Size, "Number of shuffles for the uniformity test")
	checkCmd.Flags().Float64Var(&maxZ, "max-z", validator.DefaultMaxZ, "Largest standardized chi-square accepted as uniform")
}

// uniformityShuffle returns the shuffle under test. The once mode seeds a
// single generator for all trials.
func uniformityShuffle(cfg *config.Config) func(*deck.Deck) {
	if cfg.Shuffle == config.ShuffleLegacy {
		return func(d *deck.Deck) {
			deck.ShuffleReseeding(d, timeNow)
		}
	}

	s := cfg.Seed
	if s == 0 {
		s = deck.TimeSeed()
	}
	src := deck.NewSource(s)
	return func(d *deck.Deck) {
		deck.Shuffle(d, src)
	}
}

// printResults writes one section of the report and reports whether it passed
func printResults(out io.Writer, name string, results validator.ValidationResults) bool {
	if results.Valid() {
		fmt.Fprintf(out, "✅ %s: deck is valid\n", name)
	} else {
		fmt.Fprintf(out, "❌ %s: %d errors\n", name, len(results.Errors))
		for i, err := range results.Errors {
			fmt.Fprintf(out, "   %d. %s\n", i+1, err)
		}
	}

	for _, warn := range results.Warnings {
		fmt.Fprintf(out, "   warning: %s\n", warn)
	}
	return results.Valid()
}
