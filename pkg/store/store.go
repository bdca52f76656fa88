package store

import (
	"context"
	"errors"
	"time"

	"pokervm/pkg/playable/poker/texasholdem"
)

// ErrDuplicateAction happens when an action index was already recorded for the table
var ErrDuplicateAction = errors.New("duplicate action index")

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// Table is a row in the tables table
type Table struct {
	UUID    string              `json:"uuid"`
	Name    string              `json:"name"`
	Options texasholdem.Options `json:"options"`
	Created time.Time           `json:"created"`
}

// Hand is the recorded outcome of a concluded hand
type Hand struct {
	TableUUID  string               `json:"tableUuid"`
	HandNumber int                  `json:"handNumber"`
	Results    []texasholdem.Result `json:"results"`
	Created    time.Time            `json:"created"`
}

// Store persists tables, their action logs, and the latest exported state.
// Lookups of unknown tables return sql.ErrNoRows.
type Store interface {
	CreateTable(ctx context.Context, name string, opts texasholdem.Options) (*Table, error)
	GetTableByUUID(ctx context.Context, uuid string) (*Table, error)
	GetTables(ctx context.Context, offset int64, limit int) ([]*Table, error)

	// SaveAction appends turn to the action log and replaces the saved state in one step
	SaveAction(ctx context.Context, tableUUID string, turn texasholdem.Turn, state *texasholdem.GameState) error
	// LoadState returns the last saved state. It returns sql.ErrNoRows if no action was saved yet.
	LoadState(ctx context.Context, tableUUID string) (*texasholdem.GameState, error)
	// GetActions returns every logged turn with an index greater than since, oldest first
	GetActions(ctx context.Context, tableUUID string, since int) ([]texasholdem.Turn, error)

	RecordHand(ctx context.Context, tableUUID string, handNumber int, results []texasholdem.Result) error
	GetHands(ctx context.Context, tableUUID string) ([]*Hand, error)
}

func validateTableName(name string) error {
	if name == "" {
		return UserError("table name is required")
	}

	if len(name) > 64 {
		return UserError("table name cannot be longer than 64 characters")
	}

	return nil
}
