package services

import (
	"log"
	"time"

	"socketCanvas/internal/models"
	"socketCanvas/internal/store"
)

// SnapshotService saves the live canvas into named states and restores or
// discards them later. Saves are full copies: mutating the live canvas after
// a save never touches the saved rows.
type SnapshotService struct {
	store store.Store
}

func NewSnapshotService(store store.Store) *SnapshotService {
	return &SnapshotService{
		store: store,
	}
}

// Save creates a state row and copies every live point into a SavedCanvasPoint
// tagged with the new state id. Owner and timestamp are dropped in the copy.
// Returns the state and how many points it holds.
func (ss *SnapshotService) Save(name, identity string, now time.Time) (*models.CanvasState, int, error) {
	state := &models.CanvasState{
		Name:      name,
		CreatedBy: identity,
		CreatedAt: now,
	}
	copied := 0
	err := ss.store.Atomically(func(tx store.Tx) error {
		if err := tx.InsertState(state); err != nil {
			return err
		}
		points, err := tx.ScanPoints()
		if err != nil {
			return err
		}
		for _, point := range points {
			saved := &models.SavedCanvasPoint{
				StateID: state.ID,
				X:       point.X,
				Y:       point.Y,
				Color:   point.Color,
				Size:    point.Size,
			}
			if err := tx.InsertSavedPoint(saved); err != nil {
				return err
			}
			copied++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return state, copied, nil
}

// Load wipes the live canvas and repopulates it from the saved state. Every
// restored point gets a fresh id, the loading identity as its owner, and now
// as its timestamp; the original artists are not preserved. Loading an unknown
// state id still clears the canvas and restores nothing, which the caller can
// tell apart through OutcomeNotFound.
func (ss *SnapshotService) Load(stateID uint64, identity string, now time.Time) ([]models.CanvasPoint, models.Outcome, error) {
	var restored []models.CanvasPoint
	outcome := models.OutcomeOK
	err := ss.store.Atomically(func(tx store.Tx) error {
		if err := tx.ClearPoints(); err != nil {
			return err
		}
		_, found, err := tx.GetState(stateID)
		if err != nil {
			return err
		}
		if !found {
			outcome = models.OutcomeNotFound
			return nil
		}
		savedPoints, err := tx.ScanSavedPoints(stateID)
		if err != nil {
			return err
		}
		for _, saved := range savedPoints {
			point := &models.CanvasPoint{
				Owner:     identity,
				X:         saved.X,
				Y:         saved.Y,
				Color:     saved.Color,
				Size:      saved.Size,
				Timestamp: now,
			}
			if err := tx.InsertPoint(point); err != nil {
				return err
			}
			restored = append(restored, *point)
		}
		return nil
	})
	if err != nil {
		return nil, outcome, err
	}
	if outcome == models.OutcomeOK {
		log.Printf("Identity %v loaded canvas state %v, restored %v points", identity, stateID, len(restored))
	}
	return restored, outcome, nil
}

// Delete removes a saved state and all its points. Only the creator may delete;
// an unknown state or a non-creator caller leaves everything untouched. The
// saved points go first since nothing cascades for us.
func (ss *SnapshotService) Delete(stateID uint64, identity string) (models.Outcome, error) {
	outcome := models.OutcomeOK
	err := ss.store.Atomically(func(tx store.Tx) error {
		state, found, err := tx.GetState(stateID)
		if err != nil {
			return err
		}
		if !found {
			outcome = models.OutcomeNotFound
			return nil
		}
		if state.CreatedBy != identity {
			outcome = models.OutcomeForbidden
			return nil
		}
		if err := tx.DeleteSavedPoints(stateID); err != nil {
			return err
		}
		return tx.DeleteState(stateID)
	})
	return outcome, err
}

// GetStates lists every saved state's metadata.
func (ss *SnapshotService) GetStates() ([]models.CanvasState, error) {
	var states []models.CanvasState
	err := ss.store.Atomically(func(tx store.Tx) error {
		var scanErr error
		states, scanErr = tx.ScanStates()
		return scanErr
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}

// GetStateWithPoints returns one state's metadata and its saved points,
// without touching the live canvas.
func (ss *SnapshotService) GetStateWithPoints(stateID uint64) (*models.CanvasState, []models.SavedCanvasPoint, models.Outcome, error) {
	var state *models.CanvasState
	var points []models.SavedCanvasPoint
	outcome := models.OutcomeOK
	err := ss.store.Atomically(func(tx store.Tx) error {
		found := false
		var getErr error
		state, found, getErr = tx.GetState(stateID)
		if getErr != nil {
			return getErr
		}
		if !found {
			outcome = models.OutcomeNotFound
			return nil
		}
		points, getErr = tx.ScanSavedPoints(stateID)
		return getErr
	})
	if err != nil {
		return nil, nil, outcome, err
	}
	return state, points, outcome, nil
}
