package mux

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokervm/pkg/playable/poker/texasholdem"
)

func TestHealthHandler(t *testing.T) {
	ts, pitBoss := newTestServer(t)

	var resp healthResponse
	assertGet(t, ts, "/health", &resp, 200)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "v1.2.3", resp.Version)
	assert.Equal(t, 0, resp.OpenTables)

	_, err := pitBoss.CreateTable(context.Background(), "Health Check", texasholdem.DefaultOptions())
	require.NoError(t, err)

	assertGet(t, ts, "/health", &resp, 200)
	assert.Equal(t, 1, resp.OpenTables)
}
