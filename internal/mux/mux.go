package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"pokervm/pkg/playable/poker/texasholdem"
	"pokervm/pkg/room"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version        string
	pitBoss        *room.PitBoss
	defaultOptions texasholdem.Options
}

// NewMux returns a new HTTP mux
// Tables created without options use defaultOptions.
func NewMux(version string, pitBoss *room.PitBoss, defaultOptions texasholdem.Options) *Mux {
	this := &Mux{
		Router:         gmux.NewRouter(),
		version:        version,
		pitBoss:        pitBoss,
		defaultOptions: defaultOptions,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodGet).Path("/actions").Handler(this.getTableUUIDActions())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
	tr.Methods(http.MethodGet).Path("/log").Handler(this.getTableUUIDLog())
	tr.Methods(http.MethodGet).Path("/hands").Handler(this.getTableUUIDHands())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}
