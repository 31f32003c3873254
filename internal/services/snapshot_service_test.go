package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socketCanvas/internal/models"
	"socketCanvas/internal/store"
)

func newSnapshotFixture() (*CanvasService, *SnapshotService) {
	ms := store.NewMemoryStore()
	return NewCanvasService(ms), NewSnapshotService(ms)
}

func TestSaveClearLoadRoundTrip(t *testing.T) {
	canvasService, snapshotService := newSnapshotFixture()

	drawn := []struct {
		x, y  float64
		color string
		size  float64
	}{
		{1, 2, "#ff0000", 3},
		{4, 5, "#00ff00", 1.5},
		{-7, 0.5, "#0000ff", 8},
	}
	for _, d := range drawn {
		_, err := canvasService.AddPoint("artist", d.x, d.y, d.color, d.size, time.Now())
		require.NoError(t, err)
	}

	state, copied, err := snapshotService.Save("masterpiece", "artist", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, copied)
	assert.Equal(t, "masterpiece", state.Name)
	assert.Equal(t, "artist", state.CreatedBy)

	require.NoError(t, canvasService.Clear())

	restored, outcome, err := snapshotService.Load(state.ID, "viewer", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)
	require.Len(t, restored, 3)

	for i, point := range restored {
		assert.Equal(t, drawn[i].x, point.X)
		assert.Equal(t, drawn[i].y, point.Y)
		assert.Equal(t, drawn[i].color, point.Color)
		assert.Equal(t, drawn[i].size, point.Size)
		// The loader becomes the owner of every restored point
		assert.Equal(t, "viewer", point.Owner)
	}
}

func TestSaveIsAFullCopyNotAReference(t *testing.T) {
	canvasService, snapshotService := newSnapshotFixture()

	_, err := canvasService.AddPoint("artist", 1, 1, "#000000", 2, time.Now())
	require.NoError(t, err)

	state, _, err := snapshotService.Save("before", "artist", time.Now())
	require.NoError(t, err)

	// Mutate the live canvas after saving
	_, err = canvasService.AddPoint("artist", 9, 9, "#ffffff", 1, time.Now())
	require.NoError(t, err)
	_, err = canvasService.Erase(1, 1, 10)
	require.NoError(t, err)

	restored, outcome, err := snapshotService.Load(state.ID, "artist", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)
	require.Len(t, restored, 1)
	assert.Equal(t, 1.0, restored[0].X)
}

func TestLoadAssignsFreshPointIds(t *testing.T) {
	canvasService, snapshotService := newSnapshotFixture()

	original, err := canvasService.AddPoint("artist", 1, 1, "#000000", 2, time.Now())
	require.NoError(t, err)

	state, _, err := snapshotService.Save("v1", "artist", time.Now())
	require.NoError(t, err)

	restored, _, err := snapshotService.Load(state.ID, "artist", time.Now())
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Greater(t, restored[0].ID, original.ID)
}

func TestLoadUnknownStateStillClearsCanvas(t *testing.T) {
	canvasService, snapshotService := newSnapshotFixture()

	_, err := canvasService.AddPoint("artist", 1, 1, "#000000", 2, time.Now())
	require.NoError(t, err)

	restored, outcome, err := snapshotService.Load(999, "artist", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotFound, outcome)
	assert.Empty(t, restored)

	points, err := canvasService.GetPoints()
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestSaveAndLoadEmptyCanvas(t *testing.T) {
	canvasService, snapshotService := newSnapshotFixture()

	state, copied, err := snapshotService.Save("empty", "artist", time.Now())
	require.NoError(t, err)
	assert.Zero(t, copied)

	restored, outcome, err := snapshotService.Load(state.ID, "artist", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)
	assert.Empty(t, restored)

	points, err := canvasService.GetPoints()
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDeleteByNonCreatorLeavesEverything(t *testing.T) {
	canvasService, snapshotService := newSnapshotFixture()

	_, err := canvasService.AddPoint("artist", 1, 1, "#000000", 2, time.Now())
	require.NoError(t, err)
	state, _, err := snapshotService.Save("mine", "artist", time.Now())
	require.NoError(t, err)

	outcome, err := snapshotService.Delete(state.ID, "intruder")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeForbidden, outcome)

	// State and its saved points are untouched
	got, points, outcome, err := snapshotService.GetStateWithPoints(state.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)
	assert.Equal(t, state.ID, got.ID)
	assert.Len(t, points, 1)
}

func TestDeleteByCreatorRemovesStateAndPoints(t *testing.T) {
	canvasService, snapshotService := newSnapshotFixture()

	_, err := canvasService.AddPoint("artist", 1, 1, "#000000", 2, time.Now())
	require.NoError(t, err)
	state, _, err := snapshotService.Save("mine", "artist", time.Now())
	require.NoError(t, err)

	outcome, err := snapshotService.Delete(state.ID, "artist")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, outcome)

	_, _, outcome, err = snapshotService.GetStateWithPoints(state.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotFound, outcome)

	states, err := snapshotService.GetStates()
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestDeleteUnknownStateIsNoop(t *testing.T) {
	_, snapshotService := newSnapshotFixture()

	outcome, err := snapshotService.Delete(42, "anyone")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotFound, outcome)
}

func TestStateIdsNeverReused(t *testing.T) {
	_, snapshotService := newSnapshotFixture()

	var last uint64
	for i := 0; i < 5; i++ {
		state, _, err := snapshotService.Save("cycle", "artist", time.Now())
		require.NoError(t, err)
		assert.Greater(t, state.ID, last)
		last = state.ID

		outcome, err := snapshotService.Delete(state.ID, "artist")
		require.NoError(t, err)
		require.Equal(t, models.OutcomeOK, outcome)
	}
}
