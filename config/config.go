package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/BurritoBandit28/Memory-Game/game"
)

type Config struct {
	LogLevel     zerolog.Level
	Scale        int
	Width        int
	Height       int
	Deck         string
	Assets       string
	HistoryDB    string
	SpectateAddr string
	ClickMode    game.ClickMode
	Seed         int64
}

func Default() Config {
	return Config{
		LogLevel:  zerolog.InfoLevel,
		Scale:     4,
		Width:     480,
		Height:    270,
		Assets:    "assets",
		ClickMode: game.ClickAll,
	}
}

// Load reads envFile into the environment when it exists, then builds the
// configuration from the environment over the defaults. Variables already
// set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from a variable lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}
	atoi := func(key string, dst *int) {
		if v, ok := get(key); ok && err == nil {
			n, perr := strconv.Atoi(v)
			if perr != nil || n <= 0 {
				err = fmt.Errorf("%s: expected a positive integer, got %q", key, v)
				return
			}
			*dst = n
		}
	}

	if v, ok := get("LOG_LEVEL"); ok {
		lvl, perr := zerolog.ParseLevel(v)
		if perr != nil {
			return c, fmt.Errorf("LOG_LEVEL: %w", perr)
		}
		c.LogLevel = lvl
	}
	atoi("MEMORY_SCALE", &c.Scale)
	atoi("MEMORY_WIDTH", &c.Width)
	atoi("MEMORY_HEIGHT", &c.Height)
	if err != nil {
		return c, err
	}
	if v, ok := get("MEMORY_DECK"); ok {
		c.Deck = v
	}
	if v, ok := get("MEMORY_ASSETS"); ok {
		c.Assets = v
	}
	if v, ok := get("MEMORY_HISTORY_DB"); ok {
		c.HistoryDB = v
	}
	if v, ok := get("MEMORY_SPECTATE_ADDR"); ok {
		c.SpectateAddr = v
	}
	if v, ok := get("MEMORY_CLICK_MODE"); ok {
		mode, valid := game.ParseClickMode(v)
		if !valid {
			return c, fmt.Errorf("MEMORY_CLICK_MODE: unknown mode %q", v)
		}
		c.ClickMode = mode
	}
	if v, ok := get("MEMORY_SEED"); ok {
		seed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return c, fmt.Errorf("MEMORY_SEED: %w", perr)
		}
		c.Seed = seed
	}
	return c, nil
}
