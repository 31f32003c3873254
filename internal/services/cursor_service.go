package services

import (
	"time"

	"socketCanvas/internal/models"
	"socketCanvas/internal/store"
)

// CursorService tracks one live cursor row per connected identity.
type CursorService struct {
	store store.Store
}

func NewCursorService(store store.Store) *CursorService {
	return &CursorService{
		store: store,
	}
}

// Connect inserts the default cursor for a newly connected identity. A leftover
// row for the same identity means a connect without a matching disconnect; the
// insert is skipped and the caller gets OutcomeAlreadyExists to log.
func (cs *CursorService) Connect(identity string, now time.Time) (*models.Cursor, models.Outcome, error) {
	var cursor *models.Cursor
	outcome := models.OutcomeOK
	err := cs.store.Atomically(func(tx store.Tx) error {
		_, found, err := tx.GetCursor(identity)
		if err != nil {
			return err
		}
		if found {
			outcome = models.OutcomeAlreadyExists
			return nil
		}
		cursor = &models.Cursor{
			Identity:    identity,
			X:           0,
			Y:           0,
			Color:       models.DefaultCursorColor,
			Size:        models.DefaultCursorSize,
			LastUpdated: now,
		}
		return tx.InsertCursor(cursor)
	})
	if err != nil {
		return nil, outcome, err
	}
	return cursor, outcome, nil
}

// Disconnect removes the identity's cursor row. Disconnecting an identity that
// has no row is fine; the operation is idempotent.
func (cs *CursorService) Disconnect(identity string) (models.Outcome, error) {
	outcome := models.OutcomeOK
	err := cs.store.Atomically(func(tx store.Tx) error {
		_, found, err := tx.GetCursor(identity)
		if err != nil {
			return err
		}
		if !found {
			outcome = models.OutcomeNotFound
			return nil
		}
		return tx.DeleteCursor(identity)
	})
	return outcome, err
}

// UpdateCursor overwrites the identity's position, color, size and timestamp.
// Values are taken as sent; there is no range check on color or size. A missing
// row (client raced its own disconnect) is a no-op.
func (cs *CursorService) UpdateCursor(identity string, x, y float64, color string, size float64, now time.Time) (*models.Cursor, models.Outcome, error) {
	var cursor *models.Cursor
	outcome := models.OutcomeOK
	err := cs.store.Atomically(func(tx store.Tx) error {
		_, found, err := tx.GetCursor(identity)
		if err != nil {
			return err
		}
		if !found {
			outcome = models.OutcomeNotFound
			return nil
		}
		cursor = &models.Cursor{
			Identity:    identity,
			X:           x,
			Y:           y,
			Color:       color,
			Size:        size,
			LastUpdated: now,
		}
		return tx.UpdateCursor(cursor)
	})
	if err != nil {
		return nil, outcome, err
	}
	return cursor, outcome, nil
}

// GetCursors returns every live cursor, for the initial sync of a new client.
func (cs *CursorService) GetCursors() ([]models.Cursor, error) {
	var cursors []models.Cursor
	err := cs.store.Atomically(func(tx store.Tx) error {
		var scanErr error
		cursors, scanErr = tx.ScanCursors()
		return scanErr
	})
	if err != nil {
		return nil, err
	}
	return cursors, nil
}
