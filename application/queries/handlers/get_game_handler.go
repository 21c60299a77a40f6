package handlers

import (
	"context"
	"fmt"

	"games-backend/application/ports"
	"games-backend/application/queries"
	"games-backend/application/queries/bus"
	"games-backend/domain/core/entities"

	"go.uber.org/zap"
)

// Translations is the part of the translation cache the lookup depends on
type Translations interface {
	GetOrCreate(ctx context.Context, game *entities.Game, language string) (*entities.TranslationEntry, error)
}

// GetGameHandler resolves catalog lookups
type GetGameHandler struct {
	gameRepo     ports.GameRepository
	translations Translations
	logger       *zap.Logger
}

// NewGetGameHandler creates a new get game handler
func NewGetGameHandler(
	gameRepo ports.GameRepository,
	translations Translations,
	logger *zap.Logger,
) *GetGameHandler {
	return &GetGameHandler{
		gameRepo:     gameRepo,
		translations: translations,
		logger:       logger,
	}
}

// Handle implements bus.QueryHandler
func (h *GetGameHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetGameQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}
	return h.Lookup(ctx, q)
}

// Lookup returns every record sharing the id, or the single (id, title)
// record when a title is given. With both a title and a language, a lone
// match is replaced by its translation.
func (h *GetGameHandler) Lookup(ctx context.Context, q queries.GetGameQuery) (*queries.GetGameResult, error) {
	var (
		games []*entities.Game
		err   error
	)

	if q.Title != "" {
		games, err = h.gameRepo.QueryByKey(ctx, q.ID, q.Title)
	} else {
		games, err = h.gameRepo.QueryByID(ctx, q.ID)
	}
	if err != nil {
		return nil, err
	}

	if games == nil {
		games = []*entities.Game{}
	}

	if !q.Translates() || len(games) != 1 {
		if q.Language != "" {
			h.logger.Debug("Translation skipped",
				zap.Int("game_id", q.ID),
				zap.String("language", q.Language),
				zap.Int("matches", len(games)),
			)
		}
		return &queries.GetGameResult{Games: games}, nil
	}

	entry, err := h.translations.GetOrCreate(ctx, games[0], q.Language)
	if err != nil {
		return nil, err
	}

	return &queries.GetGameResult{Translation: entry}, nil
}
