package dynamodb

import (
	"context"
	"fmt"

	"games-backend/application/ports"
	"games-backend/domain/core/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// translationItem is keyed by the source title and the target language. The
// translated title lives in its own attribute since title is the key.
type translationItem struct {
	Title           string  `dynamodbav:"title"`
	Language        string  `dynamodbav:"language"`
	ID              int     `dynamodbav:"id"`
	TranslatedTitle string  `dynamodbav:"translatedTitle"`
	Version         float64 `dynamodbav:"version"`
	Description     string  `dynamodbav:"description"`
	Rating          float64 `dynamodbav:"rating"`
	Genre           string  `dynamodbav:"genre"`
	Developer       string  `dynamodbav:"developer"`
	Adult           bool    `dynamodbav:"adult"`
	OwnerID         string  `dynamodbav:"ownerId,omitempty"`
}

func toTranslationItem(e *entities.TranslationEntry) translationItem {
	return translationItem{
		Title:           e.SourceTitle,
		Language:        e.Language,
		ID:              e.ID,
		TranslatedTitle: e.Title,
		Version:         e.Version,
		Description:     e.Description,
		Rating:          e.Rating,
		Genre:           e.Genre,
		Developer:       e.Developer,
		Adult:           e.Adult,
		OwnerID:         e.OwnerID,
	}
}

func (i translationItem) toEntity() *entities.TranslationEntry {
	return &entities.TranslationEntry{
		Game: entities.Game{
			ID:          i.ID,
			Title:       i.TranslatedTitle,
			Version:     i.Version,
			Description: i.Description,
			Rating:      i.Rating,
			Genre:       i.Genre,
			Developer:   i.Developer,
			Adult:       i.Adult,
			OwnerID:     i.OwnerID,
		},
		SourceTitle: i.Title,
		Language:    i.Language,
	}
}

// TranslationRepository implements ports.TranslationRepository on a table
// keyed by partition key title (S) and sort key language (S)
type TranslationRepository struct {
	client    API
	tableName string
	logger    *zap.Logger
}

// NewTranslationRepository creates a new TranslationRepository
func NewTranslationRepository(client API, tableName string, logger *zap.Logger) *TranslationRepository {
	return &TranslationRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

var _ ports.TranslationRepository = (*TranslationRepository)(nil)

// Get returns the cached translation, or nil on a miss
func (r *TranslationRepository) Get(ctx context.Context, key entities.TranslationKey) (*entities.TranslationEntry, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"title":    &types.AttributeValueMemberS{Value: key.Title},
			"language": &types.AttributeValueMemberS{Value: key.Language},
		},
	})
	if err != nil {
		r.logger.Error("Failed to get translation",
			zap.String("title", key.Title),
			zap.String("language", key.Language),
			zap.Error(err),
		)
		return nil, storeError("get translation", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var item translationItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, storeError("decode translation", err)
	}

	return item.toEntity(), nil
}

// Put overwrites whatever entry is stored under the same key
func (r *TranslationRepository) Put(ctx context.Context, entry *entities.TranslationEntry) error {
	av, err := attributevalue.MarshalMap(toTranslationItem(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal translation: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to put translation",
			zap.String("title", entry.SourceTitle),
			zap.String("language", entry.Language),
			zap.Error(err),
		)
		return storeError("put translation", err)
	}

	return nil
}
