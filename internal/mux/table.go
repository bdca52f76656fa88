package mux

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"pokervm/internal/util"
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/texasholdem"
	"pokervm/pkg/room"
	"pokervm/pkg/store"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		tables, err := m.pitBoss.Store().GetTables(r.Context(), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, tables)
	}
}

type postTablePayload struct {
	Name string `json:"name"`
	// Options override the defaults field by field
	Options json.RawMessage `json:"options,omitempty"`
}

func (m *Mux) postTable() http.HandlerFunc {
	var wordChar = regexp.MustCompile(`\w`)
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Name == "" {
			pp.Name = util.GetRandomName()
		}

		if !wordChar.MatchString(pp.Name) || len(pp.Name) < 3 || len(pp.Name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 3-40 characters"))
			return
		}

		opts := m.defaultOptions
		if len(pp.Options) > 0 {
			if err := json.Unmarshal(pp.Options, &opts); err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}
		}

		dealer, err := m.pitBoss.CreateTable(r.Context(), pp.Name, opts)
		if err != nil {
			var ue store.UserError
			if errors.As(err, &ue) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, dealer.Table())
	}
}

type getTableUUIDResponse struct {
	*store.Table
	State *texasholdem.GameState `json:"state"`
}

func (m *Mux) getTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		gs, err := dealer.State(r.Context(), r.FormValue("address"))
		if err != nil {
			writeActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, getTableUUIDResponse{
			Table: dealer.Table(),
			State: gs,
		})
	})
}

func (m *Mux) getTableUUIDActions() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := r.FormValue("address")
		if address == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("address is required"))
			return
		}

		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		legal, err := dealer.LegalActions(r.Context(), address)
		if err != nil {
			writeActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, legal)
	})
}

type postActionPayload struct {
	Address string `json:"address"`
	playable.PayloadIn
}

func (m *Mux) postTableUUIDAction() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pp postActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Address == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("address is required"))
			return
		}

		req, err := texasholdem.RequestFromPayload(pp.Address, &pp.PayloadIn)
		if err != nil {
			writeActionError(w, err)
			return
		}

		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		gs, err := dealer.Perform(r.Context(), req)
		if err != nil {
			writeActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, gs)
	})
}

func (m *Mux) getTableUUIDLog() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		since := 0
		if s := r.FormValue("since"); s != "" {
			val, err := strconv.Atoi(s)
			if err != nil || val < 0 {
				writeJSONError(w, http.StatusBadRequest, errors.New("since must be a non-negative integer"))
				return
			}

			since = val
		}

		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		turns, err := m.pitBoss.Store().GetActions(r.Context(), dealer.Table().UUID, since)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, turns)
	})
}

func (m *Mux) getTableUUIDHands() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
		hands, err := m.pitBoss.Store().GetHands(r.Context(), dealer.Table().UUID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, hands)
	})
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := strings.ToLower(mux.Vars(r)["uuid"])
		dealer, err := m.pitBoss.Dealer(r.Context(), uuid)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
