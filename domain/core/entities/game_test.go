package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOwnership(t *testing.T) {
	tests := []struct {
		name     string
		existing *Game
		caller   string
		wantErr  error
	}{
		{name: "owner", existing: &Game{OwnerID: "u1"}, caller: "u1"},
		{name: "someone else", existing: &Game{OwnerID: "u1"}, caller: "u2", wantErr: ErrNotOwner},
		{name: "legacy record", existing: &Game{}, caller: "u2"},
		{name: "missing record", existing: nil, caller: "u2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, CheckOwnership(tt.existing, tt.caller))
		})
	}
}

func TestGamePatch_ApplyTo(t *testing.T) {
	rating := 9.7
	adult := false
	base := &Game{
		ID:          1,
		Title:       "Dark Souls",
		Version:     1,
		Description: "Dark fantasy action RPG",
		Rating:      9.5,
		Genre:       "Action RPG",
		Developer:   "FromSoftware",
		Adult:       true,
		OwnerID:     "u1",
	}

	merged := GamePatch{Rating: &rating, Adult: &adult}.ApplyTo(base)

	assert.Equal(t, 9.7, merged.Rating)
	assert.False(t, merged.Adult)
	assert.Equal(t, "FromSoftware", merged.Developer)
	assert.Equal(t, "Dark fantasy action RPG", merged.Description)
	assert.Equal(t, "u1", merged.OwnerID)
	assert.Equal(t, base.Key(), merged.Key())

	// base is left untouched
	assert.Equal(t, 9.5, base.Rating)
	assert.True(t, base.Adult)
}

func TestGamePatch_SetFields(t *testing.T) {
	genre := "Soulslike"
	version := 2.0

	p := GamePatch{Genre: &genre, Version: &version}

	assert.False(t, p.IsEmpty())
	assert.Equal(t, []string{"version", "genre"}, p.SetFields())
	assert.True(t, GamePatch{}.IsEmpty())
}

func TestGame_TextFields(t *testing.T) {
	g := &Game{Title: "a", Description: "b", Genre: "c", Developer: "d", OwnerID: "u1"}

	for _, f := range g.TextFields() {
		*f = "x"
	}

	assert.Equal(t, Game{Title: "x", Description: "x", Genre: "x", Developer: "x", OwnerID: "u1"}, *g)
}

func TestTranslationEntry_Key(t *testing.T) {
	e := TranslationEntry{Game: Game{Title: "Âmes sombres"}, SourceTitle: "Dark Souls", Language: "fr"}

	assert.Equal(t, TranslationKey{Title: "Dark Souls", Language: "fr"}, e.Key())
}
