package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BurritoBandit28/Memory-Game/game"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(Config) bool
		wantErr bool
	}{
		{name: "defaults", env: nil, check: func(c Config) bool { return c == Default() }},
		{
			name: "all",
			env: map[string]string{
				"LOG_LEVEL":            "debug",
				"MEMORY_SCALE":         "2",
				"MEMORY_WIDTH":         "320",
				"MEMORY_HEIGHT":        "180",
				"MEMORY_DECK":          "my.deck",
				"MEMORY_ASSETS":        "/srv/assets",
				"MEMORY_HISTORY_DB":    "history.db",
				"MEMORY_SPECTATE_ADDR": ":8080",
				"MEMORY_CLICK_MODE":    "first",
				"MEMORY_SEED":          "42",
			},
			check: func(c Config) bool {
				return c == Config{
					LogLevel:     zerolog.DebugLevel,
					Scale:        2,
					Width:        320,
					Height:       180,
					Deck:         "my.deck",
					Assets:       "/srv/assets",
					HistoryDB:    "history.db",
					SpectateAddr: ":8080",
					ClickMode:    game.ClickFirst,
					Seed:         42,
				}
			},
		},
		{name: "empty values keep defaults", env: map[string]string{"MEMORY_SCALE": "", "MEMORY_ASSETS": ""}, check: func(c Config) bool { return c == Default() }},
		{name: "bad scale", env: map[string]string{"MEMORY_SCALE": "big"}, wantErr: true},
		{name: "zero width", env: map[string]string{"MEMORY_WIDTH": "0"}, wantErr: true},
		{name: "bad level", env: map[string]string{"LOG_LEVEL": "loud"}, wantErr: true},
		{name: "bad click mode", env: map[string]string{"MEMORY_CLICK_MODE": "double"}, wantErr: true},
		{name: "bad seed", env: map[string]string{"MEMORY_SEED": "x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromEnv(lookup(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %+v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(c) {
				t.Errorf("unexpected config %+v", c)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MEMORY_SEED=7\nMEMORY_CLICK_MODE=first\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MEMORY_CLICK_MODE", "all")
	// godotenv sets variables for the whole process.
	t.Setenv("MEMORY_SEED", "")
	os.Unsetenv("MEMORY_SEED")

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Seed != 7 {
		t.Errorf("expected seed from the file, got %d", c.Seed)
	}
	if c.ClickMode != game.ClickAll {
		t.Error("environment must win over the file")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("a missing env file is not an error: %v", err)
	}
}
