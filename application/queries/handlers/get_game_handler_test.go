package handlers

import (
	"context"
	"errors"
	"testing"

	"games-backend/application/ports/mocks"
	"games-backend/application/queries"
	"games-backend/domain/core/entities"
	pkgerrors "games-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockTranslations struct {
	mock.Mock
}

func (m *mockTranslations) GetOrCreate(ctx context.Context, game *entities.Game, language string) (*entities.TranslationEntry, error) {
	args := m.Called(ctx, game, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TranslationEntry), args.Error(1)
}

func TestGetGameHandler_Lookup_ByID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	translations := new(mockTranslations)

	games := []*entities.Game{
		{ID: 1, Title: "Dark Souls"},
		{ID: 1, Title: "Dark Souls Remastered"},
	}
	repo.On("QueryByID", ctx, 1).Return(games, nil)

	handler := NewGetGameHandler(repo, translations, zap.NewNop())

	// Act
	result, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 1})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Translated())
	assert.Len(t, result.Games, 2)
	repo.AssertNotCalled(t, "QueryByKey", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetGameHandler_Lookup_NoMatchesIsEmptyList(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	repo.On("QueryByID", ctx, 404).Return(nil, nil)

	handler := NewGetGameHandler(repo, new(mockTranslations), zap.NewNop())

	// Act
	result, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 404})

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, result.Games)
	assert.Empty(t, result.Games)
}

func TestGetGameHandler_Lookup_ByKeyWithoutLanguage(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	translations := new(mockTranslations)

	repo.On("QueryByKey", ctx, 1, "Dark Souls").Return([]*entities.Game{{ID: 1, Title: "Dark Souls"}}, nil)

	handler := NewGetGameHandler(repo, translations, zap.NewNop())

	// Act
	result, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 1, Title: "Dark Souls"})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Games, 1)
	translations.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetGameHandler_Lookup_LanguageWithoutTitleIsIgnored(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	translations := new(mockTranslations)

	repo.On("QueryByID", ctx, 1).Return([]*entities.Game{{ID: 1, Title: "Dark Souls"}}, nil)

	handler := NewGetGameHandler(repo, translations, zap.NewNop())

	// Act
	result, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 1, Language: "fr"})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Translated())
	translations.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetGameHandler_Lookup_Translated(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	translations := new(mockTranslations)

	game := &entities.Game{ID: 1, Title: "Dark Souls"}
	entry := &entities.TranslationEntry{
		Game:        entities.Game{ID: 1, Title: "Âmes sombres"},
		SourceTitle: "Dark Souls",
		Language:    "fr",
	}
	repo.On("QueryByKey", ctx, 1, "Dark Souls").Return([]*entities.Game{game}, nil)
	translations.On("GetOrCreate", ctx, game, "fr").Return(entry, nil)

	handler := NewGetGameHandler(repo, translations, zap.NewNop())

	// Act
	result, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 1, Title: "Dark Souls", Language: "fr"})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Translated())
	assert.Equal(t, "Âmes sombres", result.Translation.Title)
	translations.AssertExpectations(t)
}

func TestGetGameHandler_Lookup_NoMatchSkipsTranslation(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	translations := new(mockTranslations)

	repo.On("QueryByKey", ctx, 9, "Unknown").Return([]*entities.Game{}, nil)

	handler := NewGetGameHandler(repo, translations, zap.NewNop())

	// Act
	result, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 9, Title: "Unknown", Language: "fr"})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Games)
	translations.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetGameHandler_Lookup_TranslationFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	translations := new(mockTranslations)

	game := &entities.Game{ID: 1, Title: "Dark Souls"}
	repo.On("QueryByKey", ctx, 1, "Dark Souls").Return([]*entities.Game{game}, nil)
	translations.On("GetOrCreate", ctx, game, "xx").
		Return(nil, pkgerrors.NewTranslationFailureError("failed to translate 'Dark Souls' into xx", errors.New("unsupported")))

	handler := NewGetGameHandler(repo, translations, zap.NewNop())

	// Act
	result, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 1, Title: "Dark Souls", Language: "xx"})

	// Assert
	assert.Nil(t, result)
	assert.True(t, pkgerrors.IsTranslationFailure(err))
}

func TestGetGameHandler_Lookup_StoreFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	repo.On("QueryByID", ctx, 1).Return(nil, pkgerrors.NewStoreFailureError("query games", errors.New("timeout")))

	handler := NewGetGameHandler(repo, new(mockTranslations), zap.NewNop())

	// Act
	_, err := handler.Lookup(ctx, queries.GetGameQuery{ID: 1})

	// Assert
	assert.True(t, pkgerrors.IsStoreFailure(err))
}
