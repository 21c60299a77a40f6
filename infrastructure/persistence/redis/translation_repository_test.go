package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"games-backend/domain/core/entities"
	pkgerrors "games-backend/pkg/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func frenchDarkSouls() *entities.TranslationEntry {
	return &entities.TranslationEntry{
		Game: entities.Game{
			ID:          1,
			Title:       "Âmes sombres",
			Description: "RPG d'action dark fantasy",
			Rating:      9.5,
			Developer:   "FromSoftware",
			Adult:       true,
		},
		SourceTitle: "Dark Souls",
		Language:    "fr",
	}
}

func TestTranslationRepository_Get_Hit(t *testing.T) {
	// Arrange
	client, mock := redismock.NewClientMock()
	repo := NewTranslationRepositoryFromClient(client, 0, "", zap.NewNop())

	entry := frenchDarkSouls()
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	mock.ExpectGet("games:translation:fr:Dark Souls").SetVal(string(data))

	// Act
	got, err := repo.Get(context.Background(), entities.TranslationKey{Title: "Dark Souls", Language: "fr"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entry, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationRepository_Get_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewTranslationRepositoryFromClient(client, 0, "test:", zap.NewNop())

	mock.ExpectGet("test:de:Dark Souls").RedisNil()

	got, err := repo.Get(context.Background(), entities.TranslationKey{Title: "Dark Souls", Language: "de"})

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationRepository_Get_Failure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewTranslationRepositoryFromClient(client, 0, "", zap.NewNop())

	mock.ExpectGet("games:translation:fr:Dark Souls").SetErr(errors.New("connection refused"))

	_, err := repo.Get(context.Background(), entities.TranslationKey{Title: "Dark Souls", Language: "fr"})

	assert.True(t, pkgerrors.IsStoreFailure(err))
}

func TestTranslationRepository_Get_CorruptedValue(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewTranslationRepositoryFromClient(client, 0, "test:", zap.NewNop())

	mock.ExpectGet("test:fr:Dark Souls").SetVal("{not json")

	got, err := repo.Get(context.Background(), entities.TranslationKey{Title: "Dark Souls", Language: "fr"})

	assert.Nil(t, got)
	assert.True(t, pkgerrors.IsStoreFailure(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationRepository_Put(t *testing.T) {
	// Arrange
	client, mock := redismock.NewClientMock()
	repo := NewTranslationRepositoryFromClient(client, 3600, "", zap.NewNop())

	entry := frenchDarkSouls()
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	mock.ExpectSet("games:translation:fr:Dark Souls", string(data), time.Hour).SetVal("OK")

	// Act
	err = repo.Put(context.Background(), entry)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationRepository_Put_Failure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewTranslationRepositoryFromClient(client, 0, "", zap.NewNop())

	entry := frenchDarkSouls()
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	mock.ExpectSet("games:translation:fr:Dark Souls", string(data), 0).SetErr(errors.New("READONLY"))

	err = repo.Put(context.Background(), entry)

	assert.True(t, pkgerrors.IsStoreFailure(err))
}
