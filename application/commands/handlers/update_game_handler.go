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
	pkgerrors "games-backend/pkg/errors"

	"go.uber.org/zap"
)

// UpdateGameHandler handles ownership-gated partial updates
type UpdateGameHandler struct {
	gameRepo  ports.GameRepository
	validator *validators.GameValidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewUpdateGameHandler creates a new update game handler
func NewUpdateGameHandler(
	gameRepo ports.GameRepository,
	validator *validators.GameValidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *UpdateGameHandler {
	return &UpdateGameHandler{
		gameRepo:  gameRepo,
		validator: validator,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle implements bus.CommandHandler
func (h *UpdateGameHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	c, ok := cmd.(commands.UpdateGameCommand)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", cmd)
	}
	return h.Update(ctx, c)
}

// Update fetches the current record, checks that the caller owns it, merges
// the patch over it and persists the result. A missing record is merged
// against an empty base and created without an owner.
func (h *UpdateGameHandler) Update(ctx context.Context, cmd commands.UpdateGameCommand) (*entities.Game, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.validator.ValidatePatch(cmd.Patch); err != nil {
		return nil, err
	}

	key := cmd.Key()

	existing, err := h.gameRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := entities.CheckOwnership(existing, cmd.CallerID); err != nil {
		h.logger.Warn("Update rejected",
			zap.Int("game_id", key.ID),
			zap.String("title", key.Title),
			zap.String("caller_id", cmd.CallerID),
		)
		return nil, pkgerrors.NewForbiddenError(err.Error())
	}

	if cmd.Patch.IsEmpty() {
		h.logger.Debug("Update carries no field changes",
			zap.Int("game_id", key.ID),
			zap.String("title", key.Title),
		)
	}

	base := existing
	if base == nil {
		base = &entities.Game{ID: key.ID, Title: key.Title}
	}
	merged := cmd.Patch.ApplyTo(base)

	stored, err := h.gameRepo.UpdateFields(ctx, merged)
	if err != nil {
		return nil, err
	}

	h.logger.Info("Game updated",
		zap.Int("game_id", key.ID),
		zap.String("title", key.Title),
		zap.Bool("created", existing == nil),
		zap.Strings("fields", cmd.Patch.SetFields()),
	)

	if h.publisher != nil {
		event := events.NewGameUpdated(key.ID, key.Title, cmd.CallerID, cmd.Patch.SetFields(), time.Now())
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("Failed to publish event",
				zap.String("event_type", event.GetEventType()),
				zap.Error(err),
			)
		}
	}

	return stored, nil
}
