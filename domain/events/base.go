package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SourceGamesBackend is the EventBridge source used for all catalog events
const SourceGamesBackend = "games.backend"

// Event types
const (
	EventTypeGameCreated        = "game.created"
	EventTypeGameUpdated        = "game.updated"
	EventTypeTranslationCreated = "translation.created"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

func newBaseEvent(aggregateID, eventType string, timestamp time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New().String(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Timestamp:   timestamp,
		Version:     1,
	}
}

// GameAggregateID builds the aggregate id of a catalog record
func GameAggregateID(id int, title string) string {
	return fmt.Sprintf("GAME#%d#%s", id, title)
}

// GameCreated is raised when a new game is added to the catalog
type GameCreated struct {
	BaseEvent
	GameID  int    `json:"game_id"`
	Title   string `json:"title"`
	OwnerID string `json:"owner_id"`
}

// NewGameCreated creates a GameCreated event
func NewGameCreated(gameID int, title, ownerID string, timestamp time.Time) GameCreated {
	return GameCreated{
		BaseEvent: newBaseEvent(GameAggregateID(gameID, title), EventTypeGameCreated, timestamp),
		GameID:    gameID,
		Title:     title,
		OwnerID:   ownerID,
	}
}

// GameUpdated is raised when a partial update is merged into a game
type GameUpdated struct {
	BaseEvent
	GameID        int      `json:"game_id"`
	Title         string   `json:"title"`
	UpdatedBy     string   `json:"updated_by"`
	ChangedFields []string `json:"changed_fields"`
}

// NewGameUpdated creates a GameUpdated event
func NewGameUpdated(gameID int, title, updatedBy string, changedFields []string, timestamp time.Time) GameUpdated {
	return GameUpdated{
		BaseEvent:     newBaseEvent(GameAggregateID(gameID, title), EventTypeGameUpdated, timestamp),
		GameID:        gameID,
		Title:         title,
		UpdatedBy:     updatedBy,
		ChangedFields: changedFields,
	}
}

// TranslationCreated is raised when a translation is computed and stored
type TranslationCreated struct {
	BaseEvent
	GameID   int    `json:"game_id"`
	Title    string `json:"title"`
	Language string `json:"language"`
}

// NewTranslationCreated creates a TranslationCreated event
func NewTranslationCreated(gameID int, title, language string, timestamp time.Time) TranslationCreated {
	return TranslationCreated{
		BaseEvent: newBaseEvent(fmt.Sprintf("TRANSLATION#%s#%s", title, language), EventTypeTranslationCreated, timestamp),
		GameID:    gameID,
		Title:     title,
		Language:  language,
	}
}
