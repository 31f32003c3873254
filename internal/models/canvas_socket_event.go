package models

import (
	"encoding/json"
)

type CanvasSocketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Payloads sent by clients.

type UpdateCursorPayload struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

type AddPointPayload struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

type ErasePayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type SaveCanvasPayload struct {
	Name string `json:"name"`
}

type LoadCanvasPayload struct {
	StateID uint64 `json:"state_id"`
}

type DeleteStatePayload struct {
	StateID uint64 `json:"state_id"`
}

// Payloads broadcast to all subscribed clients after a commit.

type CursorRemovedPayload struct {
	Identity string `json:"identity"`
}

type PointsErasedPayload struct {
	PointIDs []uint64 `json:"point_ids"`
}

type CanvasClearedPayload struct {
	ClearedBy string `json:"cleared_by"`
}

type CanvasSavedPayload struct {
	State      CanvasState `json:"state"`
	PointCount int         `json:"point_count"`
}

type CanvasLoadedPayload struct {
	StateID  uint64        `json:"state_id"`
	LoadedBy string        `json:"loaded_by"`
	Points   []CanvasPoint `json:"points"`
}

type StateDeletedPayload struct {
	StateID uint64 `json:"state_id"`
}
