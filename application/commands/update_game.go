package commands

import (
	"games-backend/domain/core/entities"
	pkgerrors "games-backend/pkg/errors"
)

// UpdateGameCommand merges a partial update into the record identified by
// (ID, Title) on behalf of CallerID.
type UpdateGameCommand struct {
	ID       *int
	Title    string
	Patch    entities.GamePatch
	CallerID string
}

// Validate validates the UpdateGameCommand
func (c UpdateGameCommand) Validate() error {
	if c.ID == nil || c.Title == "" {
		return pkgerrors.NewInvalidRequestError("id and title are required")
	}
	if c.CallerID == "" {
		return pkgerrors.NewUnauthorizedError("caller identity is required")
	}
	return nil
}

// Key returns the key of the targeted record. Only valid after Validate.
func (c UpdateGameCommand) Key() entities.GameKey {
	return entities.GameKey{ID: *c.ID, Title: c.Title}
}
