package handlers

import (
	"games-backend/domain/core/entities"
)

// GameQueryParams are the accepted query string parameters of GET /games/{gameId}
type GameQueryParams struct {
	Title    string `query:"title" validate:"omitempty,min=1,max=255"`
	Language string `query:"language" validate:"omitempty,bcp47_language_tag"`
}

// UpdateGameRequest represents the request body for updating a game
type UpdateGameRequest struct {
	ID          *int     `json:"id"`
	Title       string   `json:"title"`
	Version     *float64 `json:"version,omitempty" validate:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	Developer   *string  `json:"developer,omitempty" validate:"omitempty,max=255"`
	Genre       *string  `json:"genre,omitempty" validate:"omitempty,max=255"`
	Adult       *bool    `json:"adult,omitempty"`
}

// Patch returns the mutable fields the request sets
func (r UpdateGameRequest) Patch() entities.GamePatch {
	return entities.GamePatch{
		Version:     r.Version,
		Description: r.Description,
		Rating:      r.Rating,
		Developer:   r.Developer,
		Genre:       r.Genre,
		Adult:       r.Adult,
	}
}

// CreateGameRequest represents the request body for adding a game
type CreateGameRequest struct {
	ID          *int    `json:"id"`
	Title       string  `json:"title"`
	Version     float64 `json:"version" validate:"gte=0"`
	Description string  `json:"description" validate:"max=5000"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	Genre       string  `json:"genre" validate:"max=255"`
	Developer   string  `json:"developer" validate:"max=255"`
	Adult       bool    `json:"adult"`
}

// Game converts the request into an unowned record
func (r CreateGameRequest) Game() entities.Game {
	game := entities.Game{
		Title:       r.Title,
		Version:     r.Version,
		Description: r.Description,
		Rating:      r.Rating,
		Genre:       r.Genre,
		Developer:   r.Developer,
		Adult:       r.Adult,
	}
	if r.ID != nil {
		game.ID = *r.ID
	}
	return game
}
