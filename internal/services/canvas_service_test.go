package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socketCanvas/internal/store"
)

func TestAddPointAssignsIncreasingIds(t *testing.T) {
	cs := NewCanvasService(store.NewMemoryStore())

	first, err := cs.AddPoint("alice", 1, 2, "#000000", 3, time.Now())
	require.NoError(t, err)
	second, err := cs.AddPoint("bob", 3, 4, "#ffffff", 1, time.Now())
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)

	points, err := cs.GetPoints()
	require.NoError(t, err)
	assert.Len(t, points, 2)
	assert.Equal(t, "alice", points[0].Owner)
}

func TestEraseUsesCombinedRadius(t *testing.T) {
	cs := NewCanvasService(store.NewMemoryStore())

	// Equality case: zero-radius eraser centered on a size-2 point removes it
	hit, err := cs.AddPoint("alice", 10, 10, "#000000", 2, time.Now())
	require.NoError(t, err)
	// Distance 3 > radius 2 + size 0: stays
	miss, err := cs.AddPoint("alice", 13, 10, "#000000", 0, time.Now())
	require.NoError(t, err)

	erased, err := cs.Erase(10, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{hit.ID}, erased)

	erased, err = cs.Erase(10, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, erased)

	points, err := cs.GetPoints()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, miss.ID, points[0].ID)
}

func TestEraseBoundaryIsInclusive(t *testing.T) {
	cs := NewCanvasService(store.NewMemoryStore())

	// Distance 5 equals radius 3 + size 2 exactly
	point, err := cs.AddPoint("alice", 3, 4, "#000000", 2, time.Now())
	require.NoError(t, err)

	erased, err := cs.Erase(0, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{point.ID}, erased)
}

func TestEraseRemovesAllQualifyingPointsInOnePass(t *testing.T) {
	cs := NewCanvasService(store.NewMemoryStore())

	for i := 0; i < 5; i++ {
		_, err := cs.AddPoint("alice", float64(i), 0, "#000000", 0, time.Now())
		require.NoError(t, err)
	}
	_, err := cs.AddPoint("alice", 100, 100, "#000000", 0, time.Now())
	require.NoError(t, err)

	erased, err := cs.Erase(2, 0, 2)
	require.NoError(t, err)
	assert.Len(t, erased, 5)

	points, err := cs.GetPoints()
	require.NoError(t, err)
	assert.Len(t, points, 1)
}

func TestClearIsIdempotent(t *testing.T) {
	cs := NewCanvasService(store.NewMemoryStore())

	_, err := cs.AddPoint("alice", 1, 1, "#000000", 1, time.Now())
	require.NoError(t, err)

	require.NoError(t, cs.Clear())
	points, err := cs.GetPoints()
	require.NoError(t, err)
	assert.Empty(t, points)

	// Clearing an empty canvas is fine
	require.NoError(t, cs.Clear())
}
