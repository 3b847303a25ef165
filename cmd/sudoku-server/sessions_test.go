package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore()
	game := newTestState(t)
	session := &GameSession{
		State:     *game,
		StartedAt: time.Now().UTC(),
	}

	require.NoError(t, store.Create(session))
	require.NotEmpty(t, session.SessionId)

	var loaded GameSession
	require.NoError(t, store.Get(session.SessionId, &loaded))
	assert.Equal(t, session.SessionId, loaded.SessionId)
	assert.Equal(t, game.Cells, loaded.State.Cells)
	assert.Equal(t, game.Given, loaded.State.Given)

	// stored blob is a snapshot: mutating the loaded copy must not leak back
	x, y := anyMutableCell(t, &loaded.State)
	require.NoError(t, loaded.State.WriteCell(x, y, 1))
	var fresh GameSession
	require.NoError(t, store.Get(session.SessionId, &fresh))
	assert.Equal(t, game.Cells, fresh.State.Cells)

	require.NoError(t, store.Set(session.SessionId, &loaded))
	require.NoError(t, store.Get(session.SessionId, &fresh))
	assert.Equal(t, loaded.State.Cells, fresh.State.Cells)

	store.Delete(session.SessionId)
	assert.ErrorIs(t, store.Get(session.SessionId, &fresh), ErrNotFound)
}

func TestSessionStoreMissing(t *testing.T) {
	store := NewSessionStore()
	var session GameSession
	assert.ErrorIs(t, store.Get("nope", &session), ErrNotFound)
}
