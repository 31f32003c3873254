package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socketCanvas/internal/models"
)

func TestRenderStatePDF(t *testing.T) {
	state := &models.CanvasState{
		ID:        1,
		Name:      "doodle",
		CreatedBy: "artist",
		CreatedAt: time.Now(),
	}
	points := []models.SavedCanvasPoint{
		{StateID: 1, X: 10, Y: 20, Color: "#ff0000", Size: 3},
		{StateID: 1, X: 50, Y: 60, Color: "not-a-color", Size: 1},
	}

	var buffer bytes.Buffer
	err := RenderStatePDF(state, points, &buffer)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buffer.Bytes(), []byte("%PDF")))
}
