package postgres

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"socketCanvas/internal/models"
	"socketCanvas/internal/store"
)

// PostgresStore implements the store abstraction over gorm. Every operation
// runs inside one serializable database transaction; row ids come from the
// tables' bigserial sequences, which never hand out a value twice.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (ps *PostgresStore) Atomically(fn func(tx store.Tx) error) error {
	return ps.db.Transaction(func(tx *gorm.DB) error {
		return fn(&postgresTx{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

type postgresTx struct {
	db *gorm.DB
}

func (tx *postgresTx) GetCursor(identity string) (*models.Cursor, bool, error) {
	var cursor models.Cursor
	err := tx.db.First(&cursor, "identity = ?", identity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &cursor, true, nil
}

func (tx *postgresTx) ScanCursors() ([]models.Cursor, error) {
	var cursors []models.Cursor
	if err := tx.db.Order("identity").Find(&cursors).Error; err != nil {
		return nil, err
	}
	return cursors, nil
}

func (tx *postgresTx) InsertCursor(cursor *models.Cursor) error {
	return tx.db.Create(cursor).Error
}

func (tx *postgresTx) UpdateCursor(cursor *models.Cursor) error {
	return tx.db.Save(cursor).Error
}

func (tx *postgresTx) DeleteCursor(identity string) error {
	return tx.db.Delete(&models.Cursor{}, "identity = ?", identity).Error
}

func (tx *postgresTx) ScanPoints() ([]models.CanvasPoint, error) {
	var points []models.CanvasPoint
	if err := tx.db.Order("id").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (tx *postgresTx) InsertPoint(point *models.CanvasPoint) error {
	return tx.db.Create(point).Error
}

func (tx *postgresTx) DeletePoints(ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.db.Delete(&models.CanvasPoint{}, "id IN ?", ids).Error
}

func (tx *postgresTx) ClearPoints() error {
	return tx.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CanvasPoint{}).Error
}

func (tx *postgresTx) GetState(id uint64) (*models.CanvasState, bool, error) {
	var state models.CanvasState
	err := tx.db.First(&state, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &state, true, nil
}

func (tx *postgresTx) ScanStates() ([]models.CanvasState, error) {
	var states []models.CanvasState
	if err := tx.db.Order("id").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (tx *postgresTx) InsertState(state *models.CanvasState) error {
	return tx.db.Create(state).Error
}

func (tx *postgresTx) DeleteState(id uint64) error {
	return tx.db.Delete(&models.CanvasState{}, "id = ?", id).Error
}

func (tx *postgresTx) ScanSavedPoints(stateID uint64) ([]models.SavedCanvasPoint, error) {
	var points []models.SavedCanvasPoint
	if err := tx.db.Order("id").Find(&points, "state_id = ?", stateID).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (tx *postgresTx) InsertSavedPoint(point *models.SavedCanvasPoint) error {
	return tx.db.Create(point).Error
}

func (tx *postgresTx) DeleteSavedPoints(stateID uint64) error {
	return tx.db.Delete(&models.SavedCanvasPoint{}, "state_id = ?", stateID).Error
}
