package store

import (
	"socketCanvas/internal/models"
)

// Tx is one consistent view of the four canvas tables. Every read sees the
// state as of transaction start, every write lands together on commit.
type Tx interface {
	GetCursor(identity string) (*models.Cursor, bool, error)
	ScanCursors() ([]models.Cursor, error)
	InsertCursor(cursor *models.Cursor) error
	UpdateCursor(cursor *models.Cursor) error
	DeleteCursor(identity string) error

	ScanPoints() ([]models.CanvasPoint, error)
	InsertPoint(point *models.CanvasPoint) error
	DeletePoints(ids []uint64) error
	ClearPoints() error

	GetState(id uint64) (*models.CanvasState, bool, error)
	ScanStates() ([]models.CanvasState, error)
	InsertState(state *models.CanvasState) error
	DeleteState(id uint64) error

	ScanSavedPoints(stateID uint64) ([]models.SavedCanvasPoint, error)
	InsertSavedPoint(point *models.SavedCanvasPoint) error
	DeleteSavedPoints(stateID uint64) error
}

// Store runs fn as one serializable transaction. If fn returns an error the
// whole batch is rolled back; otherwise every row change commits at once.
// Insert* methods assign the row id before commit and never reuse ids.
type Store interface {
	Atomically(fn func(tx Tx) error) error
}
