package models

import "time"

// CanvasState is the metadata row of one saved snapshot.
// Its points live in SavedCanvasPoint rows tagged with StateID.
type CanvasState struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
