package replay

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"pokervm/internal/config"
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/texasholdem"
)

const defaultTable = "replay"

// Log is an action log that can be replayed against an empty table
type Log struct {
	Table   string             `yaml:"table"`
	Options config.GameOptions `yaml:"options"`
	Actions []Entry            `yaml:"actions"`
}

// Entry is a single submitted action
type Entry struct {
	Address string `yaml:"address"`
	Action  string `yaml:"action"`
	// Index defaults to one more than the last accepted index
	Index  int    `yaml:"index"`
	Amount string `yaml:"amount"`
	Data   string `yaml:"data"`
	// Timestamp defaults to the timestamp of the previous entry
	Timestamp int64 `yaml:"timestamp"`
}

// Load decodes a YAML (or JSON) log. Options that are not in the log use the defaults.
func Load(r io.Reader) (*Log, error) {
	l := &Log{
		Table:   defaultTable,
		Options: config.DefaultConfig().DefaultGameOptions,
	}

	if err := yaml.NewDecoder(r).Decode(l); err != nil {
		return nil, err
	}

	if l.Table == "" {
		l.Table = defaultTable
	}

	return l, nil
}

// Run applies every entry to a new table and returns it.
// The error names the entry that could not be applied.
func Run(logger logrus.FieldLogger, l *Log) (*texasholdem.Game, error) {
	opts, err := l.Options.Options()
	if err != nil {
		return nil, err
	}

	game, err := texasholdem.NewGame(logger, l.Table, opts)
	if err != nil {
		return nil, err
	}

	var last int64
	game.SetClock(func() time.Time {
		return time.Unix(last, 0)
	})

	for i, entry := range l.Actions {
		if entry.Timestamp != 0 {
			last = entry.Timestamp
		}

		req, err := texasholdem.RequestFromPayload(entry.Address, &playable.PayloadIn{
			Action: entry.Action,
			Index:  entry.Index,
			Amount: entry.Amount,
			Data:   entry.Data,
		})
		if err != nil {
			return game, fmt.Errorf("action #%d: %w", i+1, err)
		}

		if req.Index == 0 {
			req.Index = game.LastIndex() + 1
		}

		req.Timestamp = last
		if err := game.Apply(req); err != nil {
			return game, fmt.Errorf("action #%d (%s): %w", i+1, req, err)
		}
	}

	return game, nil
}

// Verify replays the log twice and returns the state hash if both runs agree
func Verify(logger logrus.FieldLogger, l *Log) (string, error) {
	hashes := make([]string, 2)
	for i := range hashes {
		game, err := Run(logger, l)
		if err != nil {
			return "", err
		}

		if hashes[i], err = game.State().Hash(); err != nil {
			return "", err
		}
	}

	if hashes[0] != hashes[1] {
		return "", fmt.Errorf("replays diverged: %s != %s", hashes[0], hashes[1])
	}

	return hashes[0], nil
}
