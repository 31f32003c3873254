package services

import (
	"time"

	"socketCanvas/internal/models"
	"socketCanvas/internal/store"
)

// CanvasService mutates the live point set: draw, erase, clear.
type CanvasService struct {
	store store.Store
}

func NewCanvasService(store store.Store) *CanvasService {
	return &CanvasService{
		store: store,
	}
}

// AddPoint appends one drawn dot to the live canvas and returns the stored row
// with its assigned id. The live set is unbounded.
func (cs *CanvasService) AddPoint(identity string, x, y float64, color string, size float64, now time.Time) (*models.CanvasPoint, error) {
	point := &models.CanvasPoint{
		Owner:     identity,
		X:         x,
		Y:         y,
		Color:     color,
		Size:      size,
		Timestamp: now,
	}
	err := cs.store.Atomically(func(tx store.Tx) error {
		return tx.InsertPoint(point)
	})
	if err != nil {
		return nil, err
	}
	return point, nil
}

// Erase deletes every point whose own brush circle overlaps the eraser circle:
// (px-x)² + (py-y)² ≤ (radius+size)². The qualifying set is computed against
// the table state at transaction start, then deleted in one batch, so the
// result does not depend on deletion order. Returns the deleted point ids.
func (cs *CanvasService) Erase(x, y, radius float64) ([]uint64, error) {
	var erased []uint64
	err := cs.store.Atomically(func(tx store.Tx) error {
		points, err := tx.ScanPoints()
		if err != nil {
			return err
		}
		for _, point := range points {
			dx := point.X - x
			dy := point.Y - y
			reach := radius + point.Size
			if dx*dx+dy*dy <= reach*reach {
				erased = append(erased, point.ID)
			}
		}
		return tx.DeletePoints(erased)
	})
	if err != nil {
		return nil, err
	}
	return erased, nil
}

// Clear wipes the live canvas. Clearing an empty canvas is a no-op.
func (cs *CanvasService) Clear() error {
	return cs.store.Atomically(func(tx store.Tx) error {
		return tx.ClearPoints()
	})
}

// GetPoints returns the whole live canvas, for the initial sync of a new client.
func (cs *CanvasService) GetPoints() ([]models.CanvasPoint, error) {
	var points []models.CanvasPoint
	err := cs.store.Atomically(func(tx store.Tx) error {
		var scanErr error
		points, scanErr = tx.ScanPoints()
		return scanErr
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}
