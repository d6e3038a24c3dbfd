package infra

import (
	"context"
	"errors"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageBlob is the single table the postgres backend needs: one row per
// storage key holding the serialized collection.
type StorageBlob struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (StorageBlob) TableName() string { return "storage_blobs" }

func InitPostgresql(dsn string) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

type PostgresBlobStore struct {
	db *gorm.DB
}

func NewPostgresBlobStore(db *gorm.DB) (*PostgresBlobStore, error) {
	if err := db.AutoMigrate(&StorageBlob{}); err != nil {
		return nil, err
	}
	return &PostgresBlobStore{db: db}, nil
}

func (s *PostgresBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob StorageBlob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return blob.Value, true, nil
}

func (s *PostgresBlobStore) Put(ctx context.Context, key string, value []byte) error {
	blob := StorageBlob{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&blob).Error
}

func (s *PostgresBlobStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&StorageBlob{}, "key = ?", key).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
