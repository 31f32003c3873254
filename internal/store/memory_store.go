package store

import (
	"sort"
	"sync"

	"socketCanvas/internal/models"
)

// MemoryStore keeps the four tables in maps guarded by one mutex, which makes
// every transaction trivially serializable. It backs the unit tests and can
// run a single-node server without postgres.
type MemoryStore struct {
	mu sync.Mutex

	cursors     map[string]models.Cursor
	points      map[uint64]models.CanvasPoint
	states      map[uint64]models.CanvasState
	savedPoints map[uint64]models.SavedCanvasPoint

	nextPointID      uint64
	nextStateID      uint64
	nextSavedPointID uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cursors:          make(map[string]models.Cursor),
		points:           make(map[uint64]models.CanvasPoint),
		states:           make(map[uint64]models.CanvasState),
		savedPoints:      make(map[uint64]models.SavedCanvasPoint),
		nextPointID:      1,
		nextStateID:      1,
		nextSavedPointID: 1,
	}
}

func (ms *MemoryStore) Atomically(fn func(tx Tx) error) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	backup := ms.clone()
	if err := fn(&memoryTx{store: ms}); err != nil {
		ms.restore(backup)
		return err
	}
	return nil
}

type memorySnapshot struct {
	cursors     map[string]models.Cursor
	points      map[uint64]models.CanvasPoint
	states      map[uint64]models.CanvasState
	savedPoints map[uint64]models.SavedCanvasPoint

	nextPointID      uint64
	nextStateID      uint64
	nextSavedPointID uint64
}

func (ms *MemoryStore) clone() *memorySnapshot {
	snap := &memorySnapshot{
		cursors:          make(map[string]models.Cursor, len(ms.cursors)),
		points:           make(map[uint64]models.CanvasPoint, len(ms.points)),
		states:           make(map[uint64]models.CanvasState, len(ms.states)),
		savedPoints:      make(map[uint64]models.SavedCanvasPoint, len(ms.savedPoints)),
		nextPointID:      ms.nextPointID,
		nextStateID:      ms.nextStateID,
		nextSavedPointID: ms.nextSavedPointID,
	}
	for k, v := range ms.cursors {
		snap.cursors[k] = v
	}
	for k, v := range ms.points {
		snap.points[k] = v
	}
	for k, v := range ms.states {
		snap.states[k] = v
	}
	for k, v := range ms.savedPoints {
		snap.savedPoints[k] = v
	}
	return snap
}

func (ms *MemoryStore) restore(snap *memorySnapshot) {
	ms.cursors = snap.cursors
	ms.points = snap.points
	ms.states = snap.states
	ms.savedPoints = snap.savedPoints
	ms.nextPointID = snap.nextPointID
	ms.nextStateID = snap.nextStateID
	ms.nextSavedPointID = snap.nextSavedPointID
}

// memoryTx mutates the store directly; Atomically already holds the lock and
// restores the pre-transaction snapshot when the callback fails.
type memoryTx struct {
	store *MemoryStore
}

func (tx *memoryTx) GetCursor(identity string) (*models.Cursor, bool, error) {
	cursor, ok := tx.store.cursors[identity]
	if !ok {
		return nil, false, nil
	}
	return &cursor, true, nil
}

func (tx *memoryTx) ScanCursors() ([]models.Cursor, error) {
	cursors := make([]models.Cursor, 0, len(tx.store.cursors))
	for _, cursor := range tx.store.cursors {
		cursors = append(cursors, cursor)
	}
	sort.Slice(cursors, func(i, j int) bool { return cursors[i].Identity < cursors[j].Identity })
	return cursors, nil
}

func (tx *memoryTx) InsertCursor(cursor *models.Cursor) error {
	tx.store.cursors[cursor.Identity] = *cursor
	return nil
}

func (tx *memoryTx) UpdateCursor(cursor *models.Cursor) error {
	tx.store.cursors[cursor.Identity] = *cursor
	return nil
}

func (tx *memoryTx) DeleteCursor(identity string) error {
	delete(tx.store.cursors, identity)
	return nil
}

func (tx *memoryTx) ScanPoints() ([]models.CanvasPoint, error) {
	points := make([]models.CanvasPoint, 0, len(tx.store.points))
	for _, point := range tx.store.points {
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })
	return points, nil
}

func (tx *memoryTx) InsertPoint(point *models.CanvasPoint) error {
	point.ID = tx.store.nextPointID
	tx.store.nextPointID++
	tx.store.points[point.ID] = *point
	return nil
}

func (tx *memoryTx) DeletePoints(ids []uint64) error {
	for _, id := range ids {
		delete(tx.store.points, id)
	}
	return nil
}

func (tx *memoryTx) ClearPoints() error {
	tx.store.points = make(map[uint64]models.CanvasPoint)
	return nil
}

func (tx *memoryTx) GetState(id uint64) (*models.CanvasState, bool, error) {
	state, ok := tx.store.states[id]
	if !ok {
		return nil, false, nil
	}
	return &state, true, nil
}

func (tx *memoryTx) ScanStates() ([]models.CanvasState, error) {
	states := make([]models.CanvasState, 0, len(tx.store.states))
	for _, state := range tx.store.states {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	return states, nil
}

func (tx *memoryTx) InsertState(state *models.CanvasState) error {
	state.ID = tx.store.nextStateID
	tx.store.nextStateID++
	tx.store.states[state.ID] = *state
	return nil
}

func (tx *memoryTx) DeleteState(id uint64) error {
	delete(tx.store.states, id)
	return nil
}

func (tx *memoryTx) ScanSavedPoints(stateID uint64) ([]models.SavedCanvasPoint, error) {
	points := make([]models.SavedCanvasPoint, 0)
	for _, point := range tx.store.savedPoints {
		if point.StateID == stateID {
			points = append(points, point)
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })
	return points, nil
}

func (tx *memoryTx) InsertSavedPoint(point *models.SavedCanvasPoint) error {
	point.ID = tx.store.nextSavedPointID
	tx.store.nextSavedPointID++
	tx.store.savedPoints[point.ID] = *point
	return nil
}

func (tx *memoryTx) DeleteSavedPoints(stateID uint64) error {
	for id, point := range tx.store.savedPoints {
		if point.StateID == stateID {
			delete(tx.store.savedPoints, id)
		}
	}
	return nil
}
