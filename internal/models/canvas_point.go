package models

import "time"

// CanvasPoint is one drawn dot on the live canvas.
// Ids are assigned by the store and never reused, even after erase/clear.
type CanvasPoint struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Owner     string    `gorm:"index" json:"owner"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Color     string    `json:"color"`
	Size      float64   `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}
