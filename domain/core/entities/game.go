package entities

import (
	"errors"
)

// ErrNotOwner is returned when a caller tries to modify a game created by someone else.
var ErrNotOwner = errors.New("not the owner")

// Game is one version of one catalog title. A game is uniquely identified
// by the (ID, Title) pair; several titles may share the same ID.
type Game struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Version     float64 `json:"version"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Genre       string  `json:"genre"`
	Developer   string  `json:"developer"`
	Adult       bool    `json:"adult"`
	OwnerID     string  `json:"ownerId,omitempty"`
}

// GameKey is the primary key of a catalog record.
type GameKey struct {
	ID    int
	Title string
}

// Key returns the primary key of the game
func (g *Game) Key() GameKey {
	return GameKey{ID: g.ID, Title: g.Title}
}

// HasOwner reports whether the record carries an owner. Legacy records don't.
func (g *Game) HasOwner() bool {
	return g.OwnerID != ""
}

// CheckOwnership decides whether callerID may mutate the existing record.
// A missing record or a record without an owner accepts any caller.
func CheckOwnership(existing *Game, callerID string) error {
	if existing == nil || !existing.HasOwner() {
		return nil
	}
	if existing.OwnerID != callerID {
		return ErrNotOwner
	}
	return nil
}

// Clone returns a copy of the game
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// TextFields returns pointers to the user-facing string attributes of the game,
// in a stable order. OwnerID is an identity, not content, and is excluded.
func (g *Game) TextFields() []*string {
	return []*string{&g.Title, &g.Description, &g.Genre, &g.Developer}
}
