package config

import (
	"os"

	sdkmath "cosmossdk.io/math"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokervm/internal/util"
	"pokervm/pkg/playable/poker/texasholdem"
)

// Config provides configuration for the poker VM server
type Config struct {
	loaded         bool
	Addr           string `yaml:"addr" envconfig:"addr"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	// TickInterval is how often, in milliseconds, tables are checked for timed out players
	TickInterval int `yaml:"tickInterval" envconfig:"tick_interval"`
	// RandomSeeds makes the server pick the shuffle seed of every new hand. The seed is
	// written to the action log so replays stay deterministic.
	RandomSeeds bool `yaml:"randomSeeds" envconfig:"random_seeds"`
	Log         struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" split_words:"true"`
	}
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" split_words:"true"`
	}
	DefaultGameOptions GameOptions `yaml:"defaultGameOptions" split_words:"true"`
}

// GameOptions are the table options used when a table is created without any
type GameOptions struct {
	MinBuyIn   uint64 `yaml:"minBuyIn" split_words:"true"`
	MaxBuyIn   uint64 `yaml:"maxBuyIn" split_words:"true"`
	MinPlayers int    `yaml:"minPlayers" split_words:"true"`
	MaxPlayers int    `yaml:"maxPlayers" split_words:"true"`
	SmallBlind uint64 `yaml:"smallBlind" split_words:"true"`
	BigBlind   uint64 `yaml:"bigBlind" split_words:"true"`
	Timeout    int    `yaml:"timeout"`
	Type       string `yaml:"type"`
}

// Options converts the configured values into table options
func (g GameOptions) Options() (texasholdem.Options, error) {
	gameType, err := texasholdem.GameTypeFromString(g.Type)
	if err != nil {
		return texasholdem.Options{}, err
	}

	return texasholdem.Options{
		MinBuyIn:   sdkmath.NewUint(g.MinBuyIn),
		MaxBuyIn:   sdkmath.NewUint(g.MaxBuyIn),
		MinPlayers: g.MinPlayers,
		MaxPlayers: g.MaxPlayers,
		SmallBlind: sdkmath.NewUint(g.SmallBlind),
		BigBlind:   sdkmath.NewUint(g.BigBlind),
		Timeout:    g.Timeout,
		Type:       gameType,
	}, nil
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:           ":5000",
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "./sql",
		TickInterval:   1000,
		DefaultGameOptions: GameOptions{
			MinBuyIn:   100,
			MaxBuyIn:   1000,
			MinPlayers: 2,
			MaxPlayers: 9,
			SmallBlind: 1,
			BigBlind:   2,
			Timeout:    30,
			Type:       "cash",
		},
	}

	cfg.Log.Level = "info"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and the environment are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERVM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return err
	}

	if err := envconfig.Process("pokervm", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
