package handlers

import (
	"context"
	"fmt"
	"time"

	"games-backend/application/commands"
	"games-backend/application/commands/bus"
	"games-backend/application/ports"
	"games-backend/domain/core/entities"
	"games-backend/domain/core/validators"
	"games-backend/domain/events"

	"go.uber.org/zap"
)

// CreateGameHandler handles new catalog records
type CreateGameHandler struct {
	gameRepo  ports.GameRepository
	validator *validators.GameValidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewCreateGameHandler creates a new create game handler
func NewCreateGameHandler(
	gameRepo ports.GameRepository,
	validator *validators.GameValidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *CreateGameHandler {
	return &CreateGameHandler{
		gameRepo:  gameRepo,
		validator: validator,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle implements bus.CommandHandler
func (h *CreateGameHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.CreateGameCommand)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", cmd)
	}
	return h.Create(ctx, c)
}

// Create stores the game with the caller as its owner. The store rejects the
// write with a conflict when the (id, title) pair is already taken.
func (h *CreateGameHandler) Create(ctx context.Context, cmd commands.CreateGameCommand) (*entities.Game, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	game := cmd.Game.Clone()
	game.OwnerID = cmd.CallerID

	if err := h.validator.ValidateGame(game); err != nil {
		return nil, err
	}

	if err := h.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}

	h.logger.Info("Game created",
		zap.Int("game_id", game.ID),
		zap.String("title", game.Title),
		zap.String("owner_id", game.OwnerID),
	)

	if h.publisher != nil {
		event := events.NewGameCreated(game.ID, game.Title, game.OwnerID, time.Now())
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("Failed to publish event",
				zap.String("event_type", event.GetEventType()),
				zap.Error(err),
			)
		}
	}

	return game, nil
}
