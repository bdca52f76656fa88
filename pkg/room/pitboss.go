package room

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"pokervm/internal/rng"
	"pokervm/pkg/playable/poker/texasholdem"
	"pokervm/pkg/store"
)

// DealerOptions configures every dealer a PitBoss opens
type DealerOptions struct {
	// TickInterval is how often tables are checked for timed out players. Zero disables the check.
	TickInterval time.Duration
	// Seeds picks the shuffle seed of every new hand that does not name one.
	// When nil, the seed is derived from the table and the hand number.
	Seeds rng.Generator
}

// PitBoss is responsible for dispatching players and requests to tables
type PitBoss struct {
	logger  logrus.FieldLogger
	store   store.Store
	options DealerOptions

	lock    sync.Mutex
	dealers map[string]*Dealer

	connect    chan *Client
	disconnect chan *Client
	close      chan bool
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, st store.Store, opts DealerOptions) *PitBoss {
	return &PitBoss{
		logger:     logger,
		store:      st,
		options:    opts,
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		close:      make(chan bool),
	}
}

// Store returns the store tables are persisted to
func (p *PitBoss) Store() store.Store {
	return p.store
}

// OpenTables returns how many dealers are currently running
func (p *PitBoss) OpenTables() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.dealers)
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// EndShift stops the run loop and every dealer
func (p *PitBoss) EndShift() {
	close(p.close)

	p.lock.Lock()
	defer p.lock.Unlock()
	for uuid, dealer := range p.dealers {
		dealer.EndShift()
		delete(p.dealers, uuid)
	}
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			p.logger.WithField("client", client.String()).Debug("client connected")
			dealer, err := p.Dealer(context.Background(), client.tableUUID)
			if err != nil {
				p.logger.WithError(err).WithField("uuid", client.tableUUID).Error("could not find dealer")
				client.Send(newErrorResponse("", err))
				continue
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			p.logger.WithField("client", client.String()).Debug("client disconnected")
			p.lock.Lock()
			dealer, found := p.dealers[client.tableUUID]
			p.lock.Unlock()
			if !found {
				p.logger.WithField("uuid", client.tableUUID).WithField("type", "exception").Error("table not found")
				continue
			}

			dealer.RemoveClient(client)
		case <-p.close:
			return
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}

// CreateTable saves a new table and opens a dealer for it
func (p *PitBoss) CreateTable(ctx context.Context, name string, opts texasholdem.Options) (*Dealer, error) {
	if err := opts.Validate(); err != nil {
		return nil, store.UserError(err.Error())
	}

	tbl, err := p.store.CreateTable(ctx, name, opts)
	if err != nil {
		return nil, err
	}

	game, err := texasholdem.NewGame(p.logger, tbl.UUID, tbl.Options)
	if err != nil {
		return nil, err
	}

	p.lock.Lock()
	defer p.lock.Unlock()
	return p.open(tbl, game), nil
}

// Dealer returns the dealer of the table, resuming the table from the store if it isn't open.
// It returns sql.ErrNoRows if the table does not exist.
func (p *PitBoss) Dealer(ctx context.Context, tableUUID string) (*Dealer, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if dealer, ok := p.dealers[tableUUID]; ok {
		return dealer, nil
	}

	tbl, err := p.store.GetTableByUUID(ctx, tableUUID)
	if err != nil {
		return nil, err
	}

	var game *texasholdem.Game
	state, err := p.store.LoadState(ctx, tbl.UUID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		game, err = texasholdem.NewGame(p.logger, tbl.UUID, tbl.Options)
	case err == nil:
		game, err = texasholdem.FromState(p.logger, state, tbl.Options)
	}

	if err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"uuid":      tbl.UUID,
		"lastIndex": game.LastIndex(),
	}).Info("resumed table")

	return p.open(tbl, game), nil
}

// NOTE: p.lock must be held
func (p *PitBoss) open(tbl *store.Table, game *texasholdem.Game) *Dealer {
	dealer := NewDealer(p.logger, tbl, p.store, game, p.options)
	dealer.StartShift()
	p.dealers[tbl.UUID] = dealer
	return dealer
}
