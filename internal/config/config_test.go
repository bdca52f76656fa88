package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokervm/internal/util"
	"pokervm/pkg/playable/poker/texasholdem"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("POKERVM_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("POKERVM_TICK_INTERVAL", "500")()
	defer util.SetEnv("POKERVM_DEFAULT_GAME_OPTIONS_MAX_PLAYERS", "8")()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":6000", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(500, cfg.TickInterval)
	a.Equal("./sql", cfg.MigrationsPath, "defaults survive the file")
	a.Equal(uint64(200), cfg.DefaultGameOptions.MinBuyIn)
	a.Equal(uint64(10), cfg.DefaultGameOptions.BigBlind)
	a.Equal(8, cfg.DefaultGameOptions.MaxPlayers)
	a.Equal("sit-and-go", cfg.DefaultGameOptions.Type)

	// ensure that it's only loaded once
	defer util.SetEnv("POKERVM_TICK_INTERVAL", "750")()
	// ensure we aren't using a pointer
	cfg.TickInterval = 1
	cfg = Instance()
	a.Equal(500, cfg.TickInterval)
}

func TestLoad_missingFile(t *testing.T) {
	defer util.SetEnv("POKERVM_CONFIG_FILE", "testdata/does-not-exist.yaml")()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(DefaultConfig().Addr, cfg.Addr)
	a.Equal(DefaultConfig().DefaultGameOptions, cfg.DefaultGameOptions)
}

func TestLoad_badFile(t *testing.T) {
	defer util.SetEnv("POKERVM_CONFIG_FILE", "testdata")()
	assert.Error(t, Load())
}

func TestGameOptions_Options(t *testing.T) {
	a := assert.New(t)

	opts, err := DefaultConfig().DefaultGameOptions.Options()
	a.NoError(err)
	a.Equal("100", opts.MinBuyIn.String())
	a.Equal("1000", opts.MaxBuyIn.String())
	a.Equal("1", opts.SmallBlind.String())
	a.Equal("2", opts.BigBlind.String())
	a.Equal(9, opts.MaxPlayers)
	a.Equal(texasholdem.GameTypeCash, opts.Type)

	bad := DefaultConfig().DefaultGameOptions
	bad.Type = "omaha"
	_, err = bad.Options()
	a.EqualError(err, "unknown game type: omaha")
}
