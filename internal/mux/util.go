package mux

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"pokervm/pkg/playable/poker/texasholdem"
	"pokervm/pkg/room"
)

const maxRows = 100
const defaultRows = 100

func parsePaginationOptions(r *http.Request) (int64, int, error) {
	start := int64(0)
	rows := defaultRows

	if startStr := r.FormValue("start"); startStr != "" {
		val, err := strconv.ParseInt(startStr, 10, 64)
		if err != nil {
			return 0, 0, err
		}

		if val < 0 {
			return 0, 0, errors.New("start cannot be less than zero")
		}

		start = val
	}

	if rowsStr := r.FormValue("rows"); rowsStr != "" {
		val, err := strconv.Atoi(rowsStr)
		if err != nil {
			return 0, 0, err
		}

		if val <= 0 {
			return 0, 0, errors.New("rows must be greater than zero")
		}

		if val > maxRows {
			return 0, 0, fmt.Errorf("rows cannot be greater than %d", maxRows)
		}

		rows = val
	}

	return start, rows, nil
}

func remoteAddr(r *http.Request) string {
	parts := strings.Split(r.RemoteAddr, ":")
	if len(parts) == 1 {
		return parts[0]
	}

	return strings.Join(parts[0:len(parts)-1], ":")
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// if err is sql.ErrNoRows, treat as 404, otherwise treat as a 500
func writeMaybeNotFoundError(w http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONError(w, http.StatusNotFound, nil)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

type actionErrorResponse struct {
	errorResponse
	Action   string               `json:"action"`
	Category texasholdem.Category `json:"category"`
}

// writeActionError maps illegal actions to a 400 for bad input or a 409 when the request
// conflicts with the state of the table
func writeActionError(w http.ResponseWriter, err error) {
	var iae *texasholdem.IllegalActionError
	if errors.As(err, &iae) {
		statusCode := http.StatusBadRequest
		switch iae.Category {
		case texasholdem.CategorySequencing, texasholdem.CategoryIntegrity:
			statusCode = http.StatusConflict
		}

		writeJSON(w, statusCode, actionErrorResponse{
			errorResponse: errorResponse{
				Message:    iae.Error(),
				StatusCode: statusCode,
			},
			Action:   string(iae.Action),
			Category: iae.Category,
		})
		return
	}

	if errors.Is(err, room.ErrDealerClosed) {
		writeJSONError(w, http.StatusServiceUnavailable, nil)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}
