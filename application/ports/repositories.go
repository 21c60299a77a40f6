package ports

import (
	"context"
	"time"

	"games-backend/domain/core/entities"
	"games-backend/domain/events"
)

// GameRepository defines the interface for catalog persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type GameRepository interface {
	// QueryByID returns every record sharing the partition key id
	QueryByID(ctx context.Context, id int) ([]*entities.Game, error)

	// QueryByKey returns the record matching (id, title), as a zero or one element slice
	QueryByKey(ctx context.Context, id int, title string) ([]*entities.Game, error)

	// GetByKey returns the record matching (id, title), or nil if none exists
	GetByKey(ctx context.Context, key entities.GameKey) (*entities.Game, error)

	// Create stores a new record and fails with a conflict if the key is taken
	Create(ctx context.Context, game *entities.Game) error

	// UpdateFields overwrites the mutable fields of the record identified by the
	// game's key, leaving id, title and ownerId as stored. Missing records are created.
	UpdateFields(ctx context.Context, game *entities.Game) (*entities.Game, error)
}

// TranslationRepository stores translated renderings keyed by (title, language)
type TranslationRepository interface {
	// Get returns the entry for key, or nil on a miss
	Get(ctx context.Context, key entities.TranslationKey) (*entities.TranslationEntry, error)

	// Put unconditionally overwrites the entry for its key
	Put(ctx context.Context, entry *entities.TranslationEntry) error
}

// Translator translates a single piece of text
type Translator interface {
	TranslateText(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error)
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// Metrics records translation cache behaviour
type Metrics interface {
	RecordCacheHit(ctx context.Context, language string)
	RecordCacheMiss(ctx context.Context, language string)
	RecordTranslatorCall(ctx context.Context, language string, latency time.Duration, err error)
}
