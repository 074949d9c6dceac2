package storage

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is a raw JSON collection stored in a jsonb column.
type Document []byte

func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

func (d *Document) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	*d = append((*d)[:0], b...)
	return nil
}

type collectionRow struct {
	Key  string   `gorm:"primaryKey;column:key"`
	Data Document `gorm:"type:jsonb;not null"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// GormStore keeps each collection as a single jsonb row, preserving the
// one-document-per-key, last-write-wins contract of the file store.
type GormStore struct {
	db *gorm.DB
}

func OpenGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, &PersistenceError{Op: "open", Key: "collections", Err: err}
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, &PersistenceError{Op: "migrate", Key: "collections", Err: err}
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(key string, dst interface{}) error {
	var row collectionRow
	err := s.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "load", Key: key, Err: err}
	}
	if err := json.Unmarshal(row.Data, dst); err != nil {
		return &PersistenceError{Op: "load", Key: key, Err: err}
	}
	return nil
}

func (s *GormStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	row := collectionRow{Key: key, Data: data}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&row).Error
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	return nil
}
