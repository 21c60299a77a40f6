// Package mocks provides testify mocks of the application ports.
package mocks

import (
	"context"
	"time"

	"games-backend/domain/core/entities"
	"games-backend/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockGameRepository mocks ports.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) QueryByID(ctx context.Context, id int) ([]*entities.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Game), args.Error(1)
}

func (m *MockGameRepository) QueryByKey(ctx context.Context, id int, title string) ([]*entities.Game, error) {
	args := m.Called(ctx, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Game), args.Error(1)
}

func (m *MockGameRepository) GetByKey(ctx context.Context, key entities.GameKey) (*entities.Game, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Game), args.Error(1)
}

func (m *MockGameRepository) Create(ctx context.Context, game *entities.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) UpdateFields(ctx context.Context, game *entities.Game) (*entities.Game, error) {
	args := m.Called(ctx, game)
	if fn, ok := args.Get(0).(func(context.Context, *entities.Game) *entities.Game); ok {
		return fn(ctx, game), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Game), args.Error(1)
}

// MockTranslationRepository mocks ports.TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Get(ctx context.Context, key entities.TranslationKey) (*entities.TranslationEntry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TranslationEntry), args.Error(1)
}

func (m *MockTranslationRepository) Put(ctx context.Context, entry *entities.TranslationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockTranslator mocks ports.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) TranslateText(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, sourceLanguage, targetLanguage)
	return args.String(0), args.Error(1)
}

// MockEventPublisher mocks ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockMetrics mocks ports.Metrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordCacheHit(ctx context.Context, language string) {
	m.Called(ctx, language)
}

func (m *MockMetrics) RecordCacheMiss(ctx context.Context, language string) {
	m.Called(ctx, language)
}

func (m *MockMetrics) RecordTranslatorCall(ctx context.Context, language string, latency time.Duration, err error) {
	m.Called(ctx, language, latency, err)
}
