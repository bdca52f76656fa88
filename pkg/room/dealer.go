package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"pokervm/internal/rng"
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/action"
	"pokervm/pkg/playable/poker/texasholdem"
	"pokervm/pkg/store"
)

// ErrDealerClosed is returned for requests made after the dealer ended its shift
var ErrDealerClosed = errors.New("the table is closed")

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Dealer owns a single table. Every request is applied from its run loop, one at a time.
type Dealer struct {
	logger  logrus.FieldLogger
	table   *store.Table
	store   store.Store
	game    *texasholdem.Game
	seeds   rng.Generator
	tick    time.Duration
	clock   playable.Tickable
	clients map[*Client]bool
	lock    sync.RWMutex

	// logMessages must only be accessed from the run loop
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, tbl *store.Table, st store.Store, game *texasholdem.Game, opts DealerOptions) *Dealer {
	return &Dealer{
		logger: logger.WithFields(logrus.Fields{
			"uuid": tbl.UUID,
			"name": tbl.Name,
		}),
		table:         tbl,
		store:         st,
		game:          game,
		clock:         game,
		seeds:         opts.Seeds,
		tick:          opts.TickInterval,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Table returns the table the dealer runs
func (d *Dealer) Table() *store.Table {
	return d.table
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	var tick <-chan time.Time
	if d.tick > 0 {
		ticker := time.NewTicker(d.tick)
		defer ticker.Stop()
		tick = ticker.C
	}

	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendPlayerData()
			case stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case now := <-tick:
			d.checkTimeout(now)
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec runs fn in the run loop and waits for it to finish
func (d *Dealer) exec(ctx context.Context, fn func()) error {
	done := make(chan bool)
	task := func() {
		fn()
		close(done)
	}

	select {
	case d.execInRunLoop <- task:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Perform applies the request and returns the state as seen by the acting player.
// A zero index is replaced with the next index.
func (d *Dealer) Perform(ctx context.Context, req texasholdem.ActionRequest) (*texasholdem.GameState, error) {
	var gs *texasholdem.GameState
	var applyErr error
	if err := d.exec(ctx, func() {
		if applyErr = d.apply(req); applyErr == nil {
			gs = d.game.State().ForPlayer(req.Address)
		}
	}); err != nil {
		return nil, err
	}

	return gs, applyErr
}

// State returns the state of the table as seen by address
func (d *Dealer) State(ctx context.Context, address string) (*texasholdem.GameState, error) {
	var gs *texasholdem.GameState
	if err := d.exec(ctx, func() {
		gs = d.game.State().ForPlayer(address)
	}); err != nil {
		return nil, err
	}

	return gs, nil
}

// LegalActions returns what address may do right now
func (d *Dealer) LegalActions(ctx context.Context, address string) ([]texasholdem.LegalAction, error) {
	var legal []texasholdem.LegalAction
	if err := d.exec(ctx, func() {
		legal = d.game.LegalActions(address)
	}); err != nil {
		return nil, err
	}

	return legal, nil
}

// LogMessages returns the most recent log messages
func (d *Dealer) LogMessages(ctx context.Context) ([]*playable.LogMessage, error) {
	var msgs []*playable.LogMessage
	if err := d.exec(ctx, func() {
		msgs = append([]*playable.LogMessage{}, d.logMessages...)
	}); err != nil {
		return nil, err
	}

	return msgs, nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) apply(req texasholdem.ActionRequest) error {
	if req.Index == 0 {
		req.Index = d.game.LastIndex() + 1
	}

	if req.Action == action.NewHand && req.Data == "" && d.seeds != nil {
		req.Data = fmt.Sprintf("seed=%d", d.seeds.Int63())
	}

	round := d.game.Round()
	if err := d.game.Apply(req); err != nil {
		return err
	}

	d.committed(round)
	return nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) checkTimeout(now time.Time) {
	round := d.game.Round()
	changed, err := d.clock.Tick(now)
	if err != nil {
		d.logger.WithError(err).Error("could not apply timeout")
		return
	}

	if changed {
		d.committed(round)
	}
}

// committed persists the last accepted turn and notifies the clients
// NOTE: must only be called from the run loop
func (d *Dealer) committed(before texasholdem.Round) {
	gs := d.game.State()
	turn := gs.Actions[len(gs.Actions)-1]

	ctx := context.Background()
	if err := d.store.SaveAction(ctx, d.table.UUID, turn, gs); err != nil {
		d.logger.WithError(err).WithField("index", turn.Index).Error("could not save action")
	}

	d.addLogMessages(texasholdem.LogMessages([]texasholdem.Turn{turn}))

	if before != texasholdem.RoundEnd && gs.Round == texasholdem.RoundEnd {
		if err := d.store.RecordHand(ctx, d.table.UUID, gs.HandNumber, gs.Results); err != nil {
			d.logger.WithError(err).WithField("hand", gs.HandNumber).Error("could not record hand")
		}

		d.addLogMessages(d.game.ResultLogMessages())
	}

	d.stateChanged <- stateGameEvent
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		client.Send(d.gameResponse(d.game.State(), client.address))
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	req, err := texasholdem.RequestFromPayload(c.address, msg)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	d.execInRunLoop <- func() {
		if err := d.apply(req); err != nil {
			d.logger.WithError(err).WithField("client", c.String()).Warn("could not perform action")
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(playable.OK(msg.Context))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) gameResponse(gs *texasholdem.GameState, address string) *playable.Response {
	return &playable.Response{
		Key: "game",
		Data: &clientGameState{
			State:        gs.ForPlayer(address),
			LegalActions: d.game.LegalActions(address),
			Log:          append([]*playable.LogMessage{}, d.logMessages...),
		},
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	gs := d.game.State()
	for _, client := range d.Clients() {
		if !client.Send(d.gameResponse(gs, client.address)) {
			d.logger.WithField("client", client.String()).Warn("client send buffer is full")
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendPlayerData() {
	players := make(map[string]*clientStatePlayer)
	for _, p := range d.game.Players() {
		players[p.Address] = &clientStatePlayer{
			Address:  p.Address,
			Seat:     p.Seat,
			IsSeated: true,
		}
	}

	for _, client := range d.Clients() {
		if p, ok := players[client.address]; ok {
			p.IsConnected = true
			continue
		}

		players[client.address] = &clientStatePlayer{
			Address:     client.address,
			IsConnected: true,
		}
	}

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  "clientState",
			Data: players,
		})
	}
}
