package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// LedgerKey: Ledger'ın tutulduğu tek anahtar
const LedgerKey = "warda:ledger"

type RedisStore struct {
	client *redis.Client
	key    string
}

func OpenRedisStore(ctx context.Context, addr, password string, logger *logrus.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis'e bağlanılamadı (%s): %w", addr, err)
	}
	logger.Infof("Redis bağlantısı başarılı: %s", addr)
	return NewRedisStore(client), nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: LedgerKey}
}

func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger redis'ten okunamadı: %w", err)
	}
	return data, nil
}

// Save süresiz yazar; Ledger cache değil, asıl kayıttır.
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("ledger redis'e yazılamadı: %w", err)
	}
	return nil
}
