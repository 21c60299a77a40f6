package entities

// TranslationKey addresses a cached translation by the human-readable source
// title and the target language, independently of the catalog key.
type TranslationKey struct {
	Title    string
	Language string
}

// TranslationEntry is a game rendered into one target language. The embedded
// Game holds the translated text fields; numbers and booleans are copied as-is.
type TranslationEntry struct {
	Game
	SourceTitle string `json:"sourceTitle"`
	Language    string `json:"language"`
}

// Key returns the cache key of the entry
func (t *TranslationEntry) Key() TranslationKey {
	return TranslationKey{Title: t.SourceTitle, Language: t.Language}
}
