package commands

import (
	"games-backend/domain/core/entities"
	pkgerrors "games-backend/pkg/errors"
)

// CreateGameCommand adds a new record owned by CallerID
type CreateGameCommand struct {
	Game     entities.Game
	CallerID string
}

// Validate validates the CreateGameCommand
func (c CreateGameCommand) Validate() error {
	if c.Game.Title == "" {
		return pkgerrors.NewInvalidRequestError("id and title are required")
	}
	if c.CallerID == "" {
		return pkgerrors.NewUnauthorizedError("caller identity is required")
	}
	return nil
}
