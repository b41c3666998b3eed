package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// document is the gorm model backing the sqlite driver. One row per
// (user, collection, key).
type document struct {
	UserID     string `gorm:"primaryKey"`
	Collection string `gorm:"primaryKey"`
	Key        string `gorm:"primaryKey"`
	Data       []byte
	UpdatedAt  time.Time
}

// SQLite is a Store backed by an embedded sqlite database.
type SQLite struct {
	db *gorm.DB
}

var _ Store = &SQLite{}

// OpenSQLite connects to the sqlite database at path and migrates the
// document table.
func OpenSQLite(path string) (*SQLite, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(document{})
	if err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the database connection.
func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLite) All(ctx context.Context, userID, collection string) ([]Document, error) {
	var rows []document
	err := s.db.WithContext(ctx).
		Where(&document{UserID: userID, Collection: collection}).
		Order("key ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	documents := make([]Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, Document{Key: row.Key, Data: row.Data})
	}

	return documents, nil
}

func (s *SQLite) Get(ctx context.Context, userID, collection, key string) (json.RawMessage, error) {
	var row document
	err := s.db.WithContext(ctx).
		Where(&document{UserID: userID, Collection: collection, Key: key}).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return row.Data, nil
}

func (s *SQLite) Set(ctx context.Context, userID, collection, key string, data json.RawMessage) error {
	row := document{
		UserID:     userID,
		Collection: collection,
		Key:        key,
		Data:       data,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "collection"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *SQLite) Delete(ctx context.Context, userID, collection, key string) error {
	return s.db.WithContext(ctx).
		Where(&document{UserID: userID, Collection: collection, Key: key}).
		Delete(&document{}).Error
}

func (s *SQLite) Keys(ctx context.Context, userID, collection, pattern string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&document{}).
		Where(&document{UserID: userID, Collection: collection}).
		Order("key ASC").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0, len(keys))
	for _, key := range keys {
		if glob.Glob(pattern, key) {
			matched = append(matched, key)
		}
	}

	return matched, nil
}
