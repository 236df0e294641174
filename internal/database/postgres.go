package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ledgerSnapshotID: tablo tek satır tutar
const ledgerSnapshotID = 1

// LedgerSnapshot: Ledger'ın son hali, jsonb olarak
type LedgerSnapshot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Data      string    `gorm:"type:jsonb;not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostgresStore struct {
	db *gorm.DB
}

func OpenPostgresStore(dsn string, logger *logrus.Logger) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}
	store, err := NewPostgresStore(db)
	if err != nil {
		return nil, err
	}
	logger.Info("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
	return store, nil
}

// NewPostgresStore hazır bir gorm bağlantısı üzerinde tabloyu migrate eder.
func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&LedgerSnapshot{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate hatası: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]byte, error) {
	var snap LedgerSnapshot
	err := s.db.WithContext(ctx).First(&snap, "id = ?", ledgerSnapshotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger okunamadı: %w", err)
	}
	return []byte(snap.Data), nil
}

// Save tek satırı upsert eder: INSERT ... ON CONFLICT (id) DO UPDATE.
func (s *PostgresStore) Save(ctx context.Context, data []byte) error {
	snap := LedgerSnapshot{ID: ledgerSnapshotID, Data: string(data)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("ledger kaydedilemedi: %w", err)
	}
	return nil
}
