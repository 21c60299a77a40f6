package queries

import (
	"games-backend/domain/core/entities"
)

// GetGameQuery looks up catalog records by id, optionally narrowed to one
// title and rendered into a target language.
type GetGameQuery struct {
	ID       int
	Title    string
	Language string
}

// Validate validates the GetGameQuery. Any parsed id is a valid lookup key;
// ids with no records yield an empty result.
func (q GetGameQuery) Validate() error {
	return nil
}

// Translates reports whether the lookup should go through the translation cache
func (q GetGameQuery) Translates() bool {
	return q.Title != "" && q.Language != ""
}

// GetGameResult holds either the raw records or a single translated entry
type GetGameResult struct {
	Games       []*entities.Game
	Translation *entities.TranslationEntry
}

// Translated reports whether the result carries a translation
func (r *GetGameResult) Translated() bool {
	return r.Translation != nil
}
