package services

import (
	"context"
	"fmt"
	"time"

	"games-backend/application/ports"
	"games-backend/domain/core/entities"
	"games-backend/domain/events"
	pkgerrors "games-backend/pkg/errors"
	"games-backend/pkg/observability"

	"go.uber.org/zap"
)

// TranslationCache returns translated renderings of catalog records, computing
// and storing them on first request. Entries are keyed by (title, language) and
// written unconditionally: two concurrent misses both translate and the last
// write wins, which is acceptable because both writers hold equivalent content.
type TranslationCache struct {
	store          ports.TranslationRepository
	translator     ports.Translator
	sourceLanguage string
	metrics        ports.Metrics
	publisher      ports.EventPublisher
	tracer         *observability.Tracer
	logger         *zap.Logger
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache(
	store ports.TranslationRepository,
	translator ports.Translator,
	sourceLanguage string,
	metrics ports.Metrics,
	publisher ports.EventPublisher,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *TranslationCache {
	if metrics == nil {
		metrics = observability.NopMetrics{}
	}
	return &TranslationCache{
		store:          store,
		translator:     translator,
		sourceLanguage: sourceLanguage,
		metrics:        metrics,
		publisher:      publisher,
		tracer:         tracer,
		logger:         logger,
	}
}

// GetOrCreate returns the translation of game into language. On a hit the
// stored entry is returned as-is and the translator is not called. On a miss
// every text field is translated, and the entry is stored only once all of
// them succeeded.
func (c *TranslationCache) GetOrCreate(ctx context.Context, game *entities.Game, language string) (*entities.TranslationEntry, error) {
	key := entities.TranslationKey{Title: game.Title, Language: language}

	var entry *entities.TranslationEntry
	err := c.tracer.TraceFunction(ctx, "TranslationCache.GetOrCreate", func(ctx context.Context) error {
		c.tracer.AddAnnotation(ctx, "language", language)

		cached, err := c.store.Get(ctx, key)
		if err != nil {
			return err
		}
		if cached != nil {
			c.metrics.RecordCacheHit(ctx, language)
			c.logger.Debug("Translation cache hit",
				zap.String("title", key.Title),
				zap.String("language", key.Language),
			)
			entry = cached
			return nil
		}

		c.metrics.RecordCacheMiss(ctx, language)

		translated, err := c.translate(ctx, game, language)
		if err != nil {
			return err
		}

		if err := c.store.Put(ctx, translated); err != nil {
			return err
		}

		c.logger.Info("Translation stored",
			zap.Int("game_id", game.ID),
			zap.String("title", key.Title),
			zap.String("language", key.Language),
		)
		c.publish(ctx, events.NewTranslationCreated(game.ID, game.Title, language, time.Now()))

		entry = translated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// translate builds the translated entry without touching the store. Text
// fields go through the translator one at a time; everything else is copied.
func (c *TranslationCache) translate(ctx context.Context, game *entities.Game, language string) (*entities.TranslationEntry, error) {
	entry := &entities.TranslationEntry{
		Game:        *game.Clone(),
		SourceTitle: game.Title,
		Language:    language,
	}

	for _, field := range entry.TextFields() {
		if *field == "" {
			continue
		}

		start := time.Now()
		out, err := c.translator.TranslateText(ctx, *field, c.sourceLanguage, language)
		c.metrics.RecordTranslatorCall(ctx, language, time.Since(start), err)
		if err != nil {
			c.logger.Warn("Translator call failed",
				zap.Int("game_id", game.ID),
				zap.String("language", language),
				zap.Error(err),
			)
			if pkgerrors.IsTranslationFailure(err) {
				return nil, err
			}
			return nil, pkgerrors.NewTranslationFailureError(
				fmt.Sprintf("failed to translate '%s' into %s", game.Title, language), err)
		}

		*field = out
	}

	return entry, nil
}

func (c *TranslationCache) publish(ctx context.Context, event events.DomainEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("Failed to publish event",
			zap.String("event_type", event.GetEventType()),
			zap.Error(err),
		)
	}
}
