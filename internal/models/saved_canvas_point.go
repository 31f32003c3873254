package models

// SavedCanvasPoint is a frozen copy of one CanvasPoint inside a snapshot.
// StateID is a plain back-reference, not a database-enforced foreign key;
// the snapshot service deletes these rows itself when the state goes away.
// Owner and timestamp are intentionally not copied from the live point.
type SavedCanvasPoint struct {
	ID      uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	StateID uint64  `gorm:"index" json:"state_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Color   string  `json:"color"`
	Size    float64 `json:"size"`
}
