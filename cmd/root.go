/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/BurritoBandit28/Memory-Game/config"
	"github.com/BurritoBandit28/Memory-Game/deck"
	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/history"
)

var (
	envFile  string
	logLevel string
	deckPath string
	cfg      config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memory-game",
	Short: "Two-player memory matching card game",
	Long: `Memory is a two-player pairs game: players take turns flipping two
cards, keep the turn while they find pairs, and win by finding more of the
nine pairs than their opponent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			cfg.LogLevel = lvl
		}
		if deckPath != "" {
			cfg.Deck = deckPath
		}
		setupLogging(cfg.LogLevel)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "optional env file to load")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", "", "deck file (overrides MEMORY_DECK)")
}

func setupLogging(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func viewSize() image.Point {
	return image.Pt(cfg.Width, cfg.Height)
}

func newRand() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newSession loads the configured deck and builds a session that records
// finished matches when a ledger is configured. The returned close func
// flushes pending writes and releases the ledger.
func newSession(opts game.Options) (*game.Session, *deck.Deck, func(), error) {
	d, err := deck.Load(cfg.Deck)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := log.Logger
	opts.Logger = &logger
	opts.ClickMode = cfg.ClickMode
	if opts.Rand == nil {
		opts.Rand = newRand()
	}
	s := game.New(d.Cards, opts)
	if cfg.HistoryDB == "" {
		return s, d, func() {}, nil
	}
	repo, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return nil, nil, nil, err
	}
	rec := history.NewRecorder(repo, log.Logger)
	s.AddListener(rec)
	closer := func() {
		rec.Close()
		repo.Close()
	}
	return s, d, closer, nil
}
