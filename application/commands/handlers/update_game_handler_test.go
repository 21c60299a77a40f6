package handlers

import (
	"context"
	"errors"
	"testing"

	"games-backend/application/commands"
	"games-backend/application/ports/mocks"
	"games-backend/domain/core/entities"
	"games-backend/domain/core/validators"
	pkgerrors "games-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Helper function to create int pointer
func intPtr(i int) *int {
	return &i
}

// Helper function to create float64 pointer
func floatPtr(f float64) *float64 {
	return &f
}

// Helper function to create string pointer
func strPtr(s string) *string {
	return &s
}

func storedDarkSouls() *entities.Game {
	return &entities.Game{
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
}

func TestUpdateGameHandler_Update_OwnerMergesPatch(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	publisher := new(mocks.MockEventPublisher)
	key := entities.GameKey{ID: 1, Title: "Dark Souls"}

	repo.On("GetByKey", ctx, key).Return(storedDarkSouls(), nil)
	repo.On("UpdateFields", ctx, mock.MatchedBy(func(g *entities.Game) bool {
		return g.Rating == 9.7 && g.Developer == "FromSoftware" && g.OwnerID == "u1" && g.Version == 1
	})).Return(func(_ context.Context, g *entities.Game) *entities.Game { return g }, nil)
	publisher.On("Publish", ctx, mock.Anything).Return(nil)

	handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), publisher, zap.NewNop())
	cmd := commands.UpdateGameCommand{
		ID:       intPtr(1),
		Title:    "Dark Souls",
		Patch:    entities.GamePatch{Rating: floatPtr(9.7)},
		CallerID: "u1",
	}

	// Act
	game, err := handler.Update(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9.7, game.Rating)
	assert.Equal(t, "FromSoftware", game.Developer)
	assert.Equal(t, "Dark fantasy action RPG", game.Description)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateGameHandler_Update_EmptyPatchRewritesStoredRecord(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	key := entities.GameKey{ID: 1, Title: "Dark Souls"}
	core, logs := observer.New(zapcore.DebugLevel)

	repo.On("GetByKey", ctx, key).Return(storedDarkSouls(), nil)
	repo.On("UpdateFields", ctx, mock.MatchedBy(func(g *entities.Game) bool {
		return assert.ObjectsAreEqual(storedDarkSouls(), g)
	})).Return(func(_ context.Context, g *entities.Game) *entities.Game { return g }, nil)

	handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), nil, zap.New(core))
	cmd := commands.UpdateGameCommand{ID: intPtr(1), Title: "Dark Souls", CallerID: "u1"}

	// Act
	game, err := handler.Update(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "FromSoftware", game.Developer)
	assert.Equal(t, 1, logs.FilterMessage("Update carries no field changes").Len())
	repo.AssertExpectations(t)
}

func TestUpdateGameHandler_Update_NonOwnerIsForbidden(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	key := entities.GameKey{ID: 1, Title: "Dark Souls"}

	repo.On("GetByKey", ctx, key).Return(storedDarkSouls(), nil)

	handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), nil, zap.NewNop())
	cmd := commands.UpdateGameCommand{
		ID:       intPtr(1),
		Title:    "Dark Souls",
		Patch:    entities.GamePatch{Rating: floatPtr(1)},
		CallerID: "u2",
	}

	// Act
	game, err := handler.Update(ctx, cmd)

	// Assert
	assert.Nil(t, game)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsForbidden(err))
	assert.Equal(t, "not the owner", pkgerrors.GetAppError(err).Message)
	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestUpdateGameHandler_Update_LegacyRecordAcceptsAnyCaller(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	legacy := storedDarkSouls()
	legacy.OwnerID = ""

	repo.On("GetByKey", ctx, legacy.Key()).Return(legacy, nil)
	repo.On("UpdateFields", ctx, mock.AnythingOfType("*entities.Game")).
		Return(func(_ context.Context, g *entities.Game) *entities.Game { return g }, nil)

	handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), nil, zap.NewNop())
	cmd := commands.UpdateGameCommand{
		ID:       intPtr(1),
		Title:    "Dark Souls",
		Patch:    entities.GamePatch{Genre: strPtr("Soulslike")},
		CallerID: "anyone",
	}

	// Act
	game, err := handler.Update(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Soulslike", game.Genre)
	assert.Empty(t, game.OwnerID)
	repo.AssertExpectations(t)
}

func TestUpdateGameHandler_Update_MissingRecordIsCreatedWithoutOwner(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	key := entities.GameKey{ID: 42, Title: "Outer Wilds"}

	repo.On("GetByKey", ctx, key).Return(nil, nil)
	repo.On("UpdateFields", ctx, mock.MatchedBy(func(g *entities.Game) bool {
		return g.ID == 42 && g.Title == "Outer Wilds" && g.Rating == 9 && g.OwnerID == "" && g.Developer == ""
	})).Return(func(_ context.Context, g *entities.Game) *entities.Game { return g }, nil)

	handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), nil, zap.NewNop())
	cmd := commands.UpdateGameCommand{
		ID:       intPtr(42),
		Title:    "Outer Wilds",
		Patch:    entities.GamePatch{Rating: floatPtr(9)},
		CallerID: "u1",
	}

	// Act
	game, err := handler.Update(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9.0, game.Rating)
	repo.AssertExpectations(t)
}

func TestUpdateGameHandler_Update_MissingKey(t *testing.T) {
	tests := []struct {
		name string
		cmd  commands.UpdateGameCommand
	}{
		{
			name: "missing id",
			cmd:  commands.UpdateGameCommand{Title: "Dark Souls", CallerID: "u1"},
		},
		{
			name: "missing title",
			cmd:  commands.UpdateGameCommand{ID: intPtr(1), CallerID: "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockGameRepository)
			handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), nil, zap.NewNop())

			_, err := handler.Update(context.Background(), tt.cmd)

			assert.True(t, pkgerrors.IsInvalidRequest(err))
			repo.AssertNotCalled(t, "GetByKey", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateGameHandler_Update_RejectsOutOfRangeRating(t *testing.T) {
	// Arrange
	repo := new(mocks.MockGameRepository)
	handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), nil, zap.NewNop())
	cmd := commands.UpdateGameCommand{
		ID:       intPtr(1),
		Title:    "Dark Souls",
		Patch:    entities.GamePatch{Rating: floatPtr(11)},
		CallerID: "u1",
	}

	// Act
	_, err := handler.Update(context.Background(), cmd)

	// Assert
	assert.True(t, pkgerrors.IsInvalidRequest(err))
	repo.AssertNotCalled(t, "GetByKey", mock.Anything, mock.Anything)
}

func TestUpdateGameHandler_Update_StoreFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.MockGameRepository)
	storeErr := pkgerrors.NewStoreFailureError("get game", errors.New("timeout"))
	repo.On("GetByKey", ctx, mock.Anything).Return(nil, storeErr)

	handler := NewUpdateGameHandler(repo, validators.NewGameValidator(), nil, zap.NewNop())
	cmd := commands.UpdateGameCommand{
		ID:       intPtr(1),
		Title:    "Dark Souls",
		Patch:    entities.GamePatch{Rating: floatPtr(5)},
		CallerID: "u1",
	}

	// Act
	_, err := handler.Update(ctx, cmd)

	// Assert
	assert.True(t, pkgerrors.IsStoreFailure(err))
	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestUpdateGameHandler_Handle_WrongCommandType(t *testing.T) {
	handler := NewUpdateGameHandler(new(mocks.MockGameRepository), validators.NewGameValidator(), nil, zap.NewNop())

	_, err := handler.Handle(context.Background(), commands.CreateGameCommand{})

	assert.Error(t, err)
}
