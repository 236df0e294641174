package database

import (
	"context"
	"fmt"

	"warda-panel/internal/config"

	"github.com/sirupsen/logrus"
)

// Store: Ledger'ın ham JSON halini okuyup yazan kalıcı katman.
// Load hiç kayıt yoksa (nil, nil) döner.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Open LEDGER_BACKEND ayarına göre store'u kurar.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Store, error) {
	switch cfg.LedgerBackend {
	case config.BackendFile, "":
		logger.Infof("Ledger dosyası kullanılıyor: %s", cfg.LedgerFile)
		return NewFileStore(cfg.LedgerFile), nil
	case config.BackendPostgres:
		s, err := OpenPostgresStore(cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendRedis:
		s, err := OpenRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendMemory:
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("bilinmeyen ledger backend: %s", cfg.LedgerBackend)
	}
}
