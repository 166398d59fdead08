package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/display"
	"github.com/arcanaland/klondike/internal/logging"
)

var (
	configPath   string
	verbose      bool
	seed         uint64
	legacyReseed bool
	noShuffle    bool
	colorMode    string
)

// timeNow is the clock used by the legacy reseeding shuffle
var timeNow = time.Now

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Shuffle and print a standard 52-card deck",
	Long: `Klondike builds a standard 52-card deck, shuffles it and prints it four
cards to a line. The card model carries the Klondike Solitaire placement
rules for tableau and foundation piles.

Examples:
  klondike
  klondike --seed 42
  klondike --no-shuffle --color never`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		logger := logging.New(cmd.ErrOrStderr(), verbose)

		d := deck.New()
		if noShuffle {
			logger.Debug("printing ordered deck")
		} else {
			shuffleDeck(&d, cfg, logger)
		}

		out := cmd.OutOrStdout()
		printer := display.NewPrinter(useColor(cfg.Color, out))
		return printer.PrintDeck(out, &d)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default $XDG_CONFIG_HOME/klondike/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	RootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed the shuffle; 0 seeds from the clock")
	RootCmd.PersistentFlags().BoolVar(&legacyReseed, "legacy-reseed", false, "Reseed from a one-second clock on every swap (biased, kept for parity)")

	RootCmd.Flags().BoolVar(&noShuffle, "no-shuffle", false, "Print the deck in construction order")
	RootCmd.Flags().StringVar(&colorMode, "color", "", "Color output: auto, always or never")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings reads the config file and applies flag overrides
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if legacyReseed {
		cfg.Shuffle = config.ShuffleLegacy
	}
	if colorMode != "" {
		cfg.Color = colorMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// shuffleDeck shuffles d the way cfg asks for
func shuffleDeck(d *deck.Deck, cfg *config.Config, logger *pterm.Logger) {
	if cfg.Shuffle == config.ShuffleLegacy {
		logger.Warn("legacy reseeding shuffle is biased and repeats within the same second")
		deck.ShuffleReseeding(d, timeNow)
		return
	}

	s := cfg.Seed
	if s == 0 {
		s = deck.TimeSeed()
	}
	logger.Debug("shuffling deck", logger.Args("seed", s))
	deck.Shuffle(d, deck.NewSource(s))
}

// useColor resolves the color mode for the given output
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
