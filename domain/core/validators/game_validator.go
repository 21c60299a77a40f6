package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"games-backend/domain/config"
	"games-backend/domain/core/entities"
	"games-backend/pkg/errors"
)

// GameValidator validates catalog domain rules that hold regardless of transport
type GameValidator struct {
	titleMaxLength       int
	descriptionMaxLength int
	minRating            float64
	maxRating            float64
	allowNegativeVersion bool
}

// NewGameValidator creates a new game validator with default rules
func NewGameValidator() *GameValidator {
	return NewGameValidatorWithConfig(config.DefaultDomainConfig())
}

// NewGameValidatorWithConfig creates a game validator enforcing cfg
func NewGameValidatorWithConfig(cfg *config.DomainConfig) *GameValidator {
	return &GameValidator{
		titleMaxLength:       cfg.MaxTitleLength,
		descriptionMaxLength: cfg.MaxDescriptionLength,
		minRating:            cfg.MinRating,
		maxRating:            cfg.MaxRating,
		allowNegativeVersion: cfg.AllowNegativeVersion,
	}
}

// ValidateGame validates a complete record before it is created
func (v *GameValidator) ValidateGame(game *entities.Game) error {
	var problems []string

	if msg := v.validateTitle(game.Title); msg != "" {
		problems = append(problems, msg)
	}
	if utf8.RuneCountInString(game.Description) > v.descriptionMaxLength {
		problems = append(problems, fmt.Sprintf("description must be at most %d characters", v.descriptionMaxLength))
	}
	if msg := v.validateRating(game.Rating); msg != "" {
		problems = append(problems, msg)
	}
	if game.Version < 0 && !v.allowNegativeVersion {
		problems = append(problems, "version must not be negative")
	}

	return v.result(problems)
}

// ValidatePatch validates only the fields a patch sets
func (v *GameValidator) ValidatePatch(patch entities.GamePatch) error {
	var problems []string

	if patch.Description != nil && utf8.RuneCountInString(*patch.Description) > v.descriptionMaxLength {
		problems = append(problems, fmt.Sprintf("description must be at most %d characters", v.descriptionMaxLength))
	}
	if patch.Rating != nil {
		if msg := v.validateRating(*patch.Rating); msg != "" {
			problems = append(problems, msg)
		}
	}
	if patch.Version != nil && *patch.Version < 0 && !v.allowNegativeVersion {
		problems = append(problems, "version must not be negative")
	}

	return v.result(problems)
}

func (v *GameValidator) validateTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > v.titleMaxLength {
		return fmt.Sprintf("title must be at most %d characters", v.titleMaxLength)
	}
	return ""
}

func (v *GameValidator) validateRating(rating float64) string {
	if rating < v.minRating || rating > v.maxRating {
		return fmt.Sprintf("rating must be between %g and %g", v.minRating, v.maxRating)
	}
	return ""
}

func (v *GameValidator) result(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return errors.NewInvalidRequestError(strings.Join(problems, "; ")).
		WithDetail("problems", problems)
}
