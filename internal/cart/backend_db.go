package cart

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartBlob is the persisted row for one session's serialized cart.
type CartBlob struct {
	SessionID string    `gorm:"column:session_id;primaryKey"`
	Blob      string    `gorm:"column:blob;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName maps the model onto the carts table.
func (CartBlob) TableName() string {
	return "carts"
}

// DBBackend stores cart blobs in the carts table via GORM.
type DBBackend struct {
	db *gorm.DB
}

// NewDBBackend wraps an established GORM connection.
func NewDBBackend(db *gorm.DB) (*DBBackend, error) {
	if db == nil {
		return nil, errors.New("db connection is required")
	}
	return &DBBackend{db: db}, nil
}

func (d *DBBackend) Load(ctx context.Context, sessionID string) ([]byte, bool, error) {
	var row CartBlob
	err := d.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(row.Blob), true, nil
}

func (d *DBBackend) Save(ctx context.Context, sessionID string, data []byte) error {
	row := CartBlob{
		SessionID: sessionID,
		Blob:      string(data),
		UpdatedAt: time.Now().UTC(),
	}
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
		}).
		Create(&row).Error
}
