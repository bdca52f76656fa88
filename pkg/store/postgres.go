package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"pokervm/pkg/db"
	"pokervm/pkg/playable/poker/action"
	"pokervm/pkg/playable/poker/texasholdem"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

const tableColumns = `
tables.uuid,
tables.name,
tables.options,
tables.created`

const actionColumns = `
actions.idx,
actions.player_address,
actions.action,
actions.amount,
actions.seat,
actions.round,
actions.data,
actions.ts`

var _ Store = (*Postgres)(nil)

// Postgres is a Store backed by PostgreSQL
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a Store that uses dbh
func NewPostgres(dbh *sql.DB) *Postgres {
	return &Postgres{db: dbh}
}

func getTableByRow(row db.Scanner) (*Table, error) {
	var t Table
	var options []byte
	if err := row.Scan(&t.UUID, &t.Name, &options, &t.Created); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(options, &t.Options); err != nil {
		return nil, err
	}

	return &t, nil
}

// CreateTable creates a new table
func (p *Postgres) CreateTable(ctx context.Context, name string, opts texasholdem.Options) (*Table, error) {
	if err := validateTableName(name); err != nil {
		return nil, err
	}

	options, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}

	u := uuid.New().String()
	const query = `
INSERT INTO tables (uuid, name, options)
VALUES ($1, $2, $3)
RETURNING created`

	var created time.Time
	if err := p.db.QueryRowContext(ctx, query, u, name, options).Scan(&created); err != nil {
		return nil, err
	}

	return &Table{
		UUID:    u,
		Name:    name,
		Options: opts,
		Created: created,
	}, nil
}

// GetTableByUUID returns a table by its UUID
func (p *Postgres) GetTableByUUID(ctx context.Context, tableUUID string) (*Table, error) {
	if _, err := uuid.Parse(tableUUID); err != nil {
		return nil, sql.ErrNoRows
	}

	const query = `
SELECT ` + tableColumns + `
FROM tables
WHERE uuid = $1`

	return getTableByRow(p.db.QueryRowContext(ctx, query, tableUUID))
}

// GetTables returns the tables, newest first
func (p *Postgres) GetTables(ctx context.Context, offset int64, limit int) ([]*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
ORDER BY created DESC, uuid
LIMIT $1 OFFSET $2`

	rows, err := p.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]*Table, 0)
	for rows.Next() {
		t, err := getTableByRow(rows)
		if err != nil {
			return nil, err
		}

		tables = append(tables, t)
	}

	return tables, rows.Err()
}

// SaveAction logs the turn and saves the state in a single transaction
func (p *Postgres) SaveAction(ctx context.Context, tableUUID string, turn texasholdem.Turn, state *texasholdem.GameState) error {
	hash, err := state.Hash()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(state)
	if err != nil {
		return err
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const insertAction = `
INSERT INTO actions (table_uuid, idx, hand_number, player_address, action, amount, seat, round, data, ts)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.ExecContext(ctx, insertAction, tableUUID, turn.Index, state.HandNumber, turn.PlayerID,
		string(turn.Action), turn.Amount.String(), turn.Seat, int(turn.Round), turn.Data, turn.Timestamp); err != nil {
		rollback(tx)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateAction
		}

		return err
	}

	const upsertState = `
INSERT INTO table_states (table_uuid, hand_number, last_index, hash, state)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (table_uuid) DO UPDATE
SET hand_number = excluded.hand_number,
    last_index = excluded.last_index,
    hash = excluded.hash,
    state = excluded.state,
    updated = (NOW() AT TIME ZONE 'UTC')`
	if _, err := tx.ExecContext(ctx, upsertState, tableUUID, state.HandNumber, state.LastIndex, hash, encoded); err != nil {
		rollback(tx)
		return err
	}

	return tx.Commit()
}

// LoadState returns the saved state for the table
func (p *Postgres) LoadState(ctx context.Context, tableUUID string) (*texasholdem.GameState, error) {
	const query = `
SELECT state
FROM table_states
WHERE table_uuid = $1`

	var encoded []byte
	if err := p.db.QueryRowContext(ctx, query, tableUUID).Scan(&encoded); err != nil {
		return nil, err
	}

	var state texasholdem.GameState
	if err := json.Unmarshal(encoded, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// GetActions returns the logged turns after since
func (p *Postgres) GetActions(ctx context.Context, tableUUID string, since int) ([]texasholdem.Turn, error) {
	const query = `
SELECT ` + actionColumns + `
FROM actions
WHERE table_uuid = $1
  AND idx > $2
ORDER BY idx`

	rows, err := p.db.QueryContext(ctx, query, tableUUID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	turns := make([]texasholdem.Turn, 0)
	for rows.Next() {
		var t texasholdem.Turn
		var kind, amount string
		var round int
		if err := rows.Scan(&t.Index, &t.PlayerID, &kind, &amount, &t.Seat, &round, &t.Data, &t.Timestamp); err != nil {
			return nil, err
		}

		t.Action = action.Action(kind)
		t.Round = texasholdem.Round(round)
		if t.Amount, err = sdkmath.ParseUint(amount); err != nil {
			return nil, err
		}

		turns = append(turns, t)
	}

	return turns, rows.Err()
}

// RecordHand saves the results of a concluded hand
func (p *Postgres) RecordHand(ctx context.Context, tableUUID string, handNumber int, results []texasholdem.Result) error {
	encoded, err := json.Marshal(results)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO hands (table_uuid, hand_number, results)
VALUES ($1, $2, $3)
ON CONFLICT (table_uuid, hand_number) DO UPDATE
SET results = excluded.results`

	_, err = p.db.ExecContext(ctx, query, tableUUID, handNumber, encoded)
	return err
}

// GetHands returns the recorded hands of the table, oldest first
func (p *Postgres) GetHands(ctx context.Context, tableUUID string) ([]*Hand, error) {
	const query = `
SELECT table_uuid, hand_number, results, created
FROM hands
WHERE table_uuid = $1
ORDER BY hand_number`

	rows, err := p.db.QueryContext(ctx, query, tableUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hands := make([]*Hand, 0)
	for rows.Next() {
		var h Hand
		var results []byte
		if err := rows.Scan(&h.TableUUID, &h.HandNumber, &results, &h.Created); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(results, &h.Results); err != nil {
			return nil, err
		}

		hands = append(hands, &h)
	}

	return hands, rows.Err()
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
