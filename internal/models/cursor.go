package models

import "time"

const (
	DefaultCursorColor = "#000000"
	DefaultCursorSize  = 3.0
)

// Cursor is the live pointer of one connected user.
// Exactly one row exists per connected identity.
type Cursor struct {
	Identity    string    `gorm:"primaryKey" json:"identity"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Color       string    `json:"color"`
	Size        float64   `json:"size"`
	LastUpdated time.Time `json:"last_updated"`
}
