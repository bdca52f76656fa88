package store

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"pokervm/pkg/playable/poker/texasholdem"
)

var _ Store = (*Memory)(nil)

// Memory is a Store that keeps everything in process memory.
// It is used when no database is configured and in tests.
type Memory struct {
	lock    sync.RWMutex
	tables  map[string]*Table
	states  map[string]*texasholdem.GameState
	actions map[string][]texasholdem.Turn
	hands   map[string]map[int]*Hand
	now     func() time.Time
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		tables:  make(map[string]*Table),
		states:  make(map[string]*texasholdem.GameState),
		actions: make(map[string][]texasholdem.Turn),
		hands:   make(map[string]map[int]*Hand),
		now:     time.Now,
	}
}

// CreateTable creates a new table
func (m *Memory) CreateTable(_ context.Context, name string, opts texasholdem.Options) (*Table, error) {
	if err := validateTableName(name); err != nil {
		return nil, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	t := &Table{
		UUID:    uuid.New().String(),
		Name:    name,
		Options: opts,
		Created: m.now().UTC(),
	}

	m.tables[t.UUID] = t
	cp := *t
	return &cp, nil
}

// GetTableByUUID returns a table by its UUID
func (m *Memory) GetTableByUUID(_ context.Context, tableUUID string) (*Table, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	t, ok := m.tables[tableUUID]
	if !ok {
		return nil, sql.ErrNoRows
	}

	cp := *t
	return &cp, nil
}

// GetTables returns the tables, newest first
func (m *Memory) GetTables(_ context.Context, offset int64, limit int) ([]*Table, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	tables := make([]*Table, 0, len(m.tables))
	for _, t := range m.tables {
		cp := *t
		tables = append(tables, &cp)
	}

	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Created.Equal(tables[j].Created) {
			return tables[i].UUID < tables[j].UUID
		}

		return tables[i].Created.After(tables[j].Created)
	})

	if offset >= int64(len(tables)) {
		return []*Table{}, nil
	}

	tables = tables[offset:]
	if len(tables) > limit {
		tables = tables[:limit]
	}

	return tables, nil
}

// SaveAction logs the turn and replaces the saved state
func (m *Memory) SaveAction(_ context.Context, tableUUID string, turn texasholdem.Turn, state *texasholdem.GameState) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.tables[tableUUID]; !ok {
		return sql.ErrNoRows
	}

	for _, t := range m.actions[tableUUID] {
		if t.Index == turn.Index {
			return ErrDuplicateAction
		}
	}

	m.actions[tableUUID] = append(m.actions[tableUUID], turn)
	m.states[tableUUID] = state
	return nil
}

// LoadState returns the saved state for the table
func (m *Memory) LoadState(_ context.Context, tableUUID string) (*texasholdem.GameState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	state, ok := m.states[tableUUID]
	if !ok {
		return nil, sql.ErrNoRows
	}

	return state, nil
}

// GetActions returns the logged turns after since
func (m *Memory) GetActions(_ context.Context, tableUUID string, since int) ([]texasholdem.Turn, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	turns := make([]texasholdem.Turn, 0)
	for _, t := range m.actions[tableUUID] {
		if t.Index > since {
			turns = append(turns, t)
		}
	}

	sort.Slice(turns, func(i, j int) bool {
		return turns[i].Index < turns[j].Index
	})

	return turns, nil
}

// RecordHand saves the results of a concluded hand
func (m *Memory) RecordHand(_ context.Context, tableUUID string, handNumber int, results []texasholdem.Result) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.tables[tableUUID]; !ok {
		return sql.ErrNoRows
	}

	if m.hands[tableUUID] == nil {
		m.hands[tableUUID] = make(map[int]*Hand)
	}

	m.hands[tableUUID][handNumber] = &Hand{
		TableUUID:  tableUUID,
		HandNumber: handNumber,
		Results:    append([]texasholdem.Result{}, results...),
		Created:    m.now().UTC(),
	}

	return nil
}

// GetHands returns the recorded hands of the table, oldest first
func (m *Memory) GetHands(_ context.Context, tableUUID string) ([]*Hand, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	hands := make([]*Hand, 0, len(m.hands[tableUUID]))
	for _, h := range m.hands[tableUUID] {
		cp := *h
		hands = append(hands, &cp)
	}

	sort.Slice(hands, func(i, j int) bool {
		return hands[i].HandNumber < hands[j].HandNumber
	})

	return hands, nil
}
