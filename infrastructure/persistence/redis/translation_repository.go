package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"games-backend/application/ports"
	"games-backend/domain/core/entities"
	pkgerrors "games-backend/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultKeyPrefix = "games:translation:"

// Config holds configuration for the Redis translation store
type Config struct {
	URL       string // e.g. "redis://localhost:6379/0"
	TTL       int    // seconds, 0 keeps entries forever
	KeyPrefix string
}

// TranslationRepository stores translation entries as JSON strings in Redis
type TranslationRepository struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
}

// NewTranslationRepository connects to Redis and verifies the connection
func NewTranslationRepository(ctx context.Context, cfg Config, logger *zap.Logger) (*TranslationRepository, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewTranslationRepositoryFromClient(client, cfg.TTL, cfg.KeyPrefix, logger), nil
}

// NewTranslationRepositoryFromClient wraps an existing client
func NewTranslationRepositoryFromClient(client *redis.Client, ttlSeconds int, keyPrefix string, logger *zap.Logger) *TranslationRepository {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}

	return &TranslationRepository{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

var _ ports.TranslationRepository = (*TranslationRepository)(nil)

func (r *TranslationRepository) key(key entities.TranslationKey) string {
	return r.keyPrefix + key.Language + ":" + key.Title
}

// Get returns the cached translation, or nil on a miss
func (r *TranslationRepository) Get(ctx context.Context, key entities.TranslationKey) (*entities.TranslationEntry, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get translation",
			zap.String("title", key.Title),
			zap.String("language", key.Language),
			zap.Error(err),
		)
		return nil, pkgerrors.NewStoreFailureError("get translation", err)
	}

	var entry entities.TranslationEntry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, pkgerrors.NewStoreFailureError("decode translation", err)
	}

	return &entry, nil
}

// Put overwrites whatever entry is stored under the same key
func (r *TranslationRepository) Put(ctx context.Context, entry *entities.TranslationEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode translation: %w", err)
	}

	if err := r.client.Set(ctx, r.key(entry.Key()), string(data), r.ttl).Err(); err != nil {
		r.logger.Error("Failed to put translation",
			zap.String("title", entry.SourceTitle),
			zap.String("language", entry.Language),
			zap.Error(err),
		)
		return pkgerrors.NewStoreFailureError("put translation", err)
	}

	return nil
}

// Ping checks the connection
func (r *TranslationRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *TranslationRepository) Close() error {
	return r.client.Close()
}
