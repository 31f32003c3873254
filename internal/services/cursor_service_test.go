package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socketCanvas/internal/models"
	"socketCanvas/internal/store"
)

func TestCursorConnectCreatesDefaultCursor(t *testing.T) {
	cs := NewCursorService(store.NewMemoryStore())
	now := time.Now()

	cursor, outcome, err := cs.Connect("alice", now)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)
	assert.Equal(t, "alice", cursor.Identity)
	assert.Equal(t, 0.0, cursor.X)
	assert.Equal(t, 0.0, cursor.Y)
	assert.Equal(t, models.DefaultCursorColor, cursor.Color)
	assert.Equal(t, models.DefaultCursorSize, cursor.Size)
	assert.Equal(t, now, cursor.LastUpdated)

	cursors, err := cs.GetCursors()
	require.NoError(t, err)
	assert.Len(t, cursors, 1)
}

func TestCursorConnectTwiceIsRejected(t *testing.T) {
	cs := NewCursorService(store.NewMemoryStore())

	_, outcome, err := cs.Connect("alice", time.Now())
	require.NoError(t, err)
	require.Equal(t, models.OutcomeOK, outcome)

	_, outcome, err = cs.Connect("alice", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAlreadyExists, outcome)

	cursors, err := cs.GetCursors()
	require.NoError(t, err)
	assert.Len(t, cursors, 1)
}

func TestCursorDisconnectRemovesRowAndIsIdempotent(t *testing.T) {
	cs := NewCursorService(store.NewMemoryStore())

	_, _, err := cs.Connect("alice", time.Now())
	require.NoError(t, err)

	outcome, err := cs.Disconnect("alice")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)

	cursors, err := cs.GetCursors()
	require.NoError(t, err)
	assert.Empty(t, cursors)

	outcome, err = cs.Disconnect("alice")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotFound, outcome)
}

func TestUpdateCursorOverwritesAllFields(t *testing.T) {
	cs := NewCursorService(store.NewMemoryStore())

	_, _, err := cs.Connect("alice", time.Now())
	require.NoError(t, err)

	now := time.Now()
	cursor, outcome, err := cs.UpdateCursor("alice", 12.5, -4, "#ff0000", 7.5, now)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)
	assert.Equal(t, 12.5, cursor.X)
	assert.Equal(t, -4.0, cursor.Y)
	assert.Equal(t, "#ff0000", cursor.Color)
	assert.Equal(t, 7.5, cursor.Size)
	assert.Equal(t, now, cursor.LastUpdated)
}

func TestUpdateCursorOnDisconnectedIdentityIsNoop(t *testing.T) {
	cs := NewCursorService(store.NewMemoryStore())

	cursor, outcome, err := cs.UpdateCursor("ghost", 1, 2, "#00ff00", 5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotFound, outcome)
	assert.Nil(t, cursor)

	cursors, err := cs.GetCursors()
	require.NoError(t, err)
	assert.Empty(t, cursors)
}
