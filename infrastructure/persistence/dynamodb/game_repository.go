package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"games-backend/application/ports"
	"games-backend/domain/core/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// gameItem represents the DynamoDB item structure for a catalog record
type gameItem struct {
	ID          int     `dynamodbav:"id"`
	Title       string  `dynamodbav:"title"`
	Version     float64 `dynamodbav:"version"`
	Description string  `dynamodbav:"description"`
	Rating      float64 `dynamodbav:"rating"`
	Genre       string  `dynamodbav:"genre"`
	Developer   string  `dynamodbav:"developer"`
	Adult       bool    `dynamodbav:"adult"`
	OwnerID     string  `dynamodbav:"ownerId,omitempty"`
}

func toGameItem(g *entities.Game) gameItem {
	return gameItem{
		ID:          g.ID,
		Title:       g.Title,
		Version:     g.Version,
		Description: g.Description,
		Rating:      g.Rating,
		Genre:       g.Genre,
		Developer:   g.Developer,
		Adult:       g.Adult,
		OwnerID:     g.OwnerID,
	}
}

func (i gameItem) toEntity() *entities.Game {
	return &entities.Game{
		ID:          i.ID,
		Title:       i.Title,
		Version:     i.Version,
		Description: i.Description,
		Rating:      i.Rating,
		Genre:       i.Genre,
		Developer:   i.Developer,
		Adult:       i.Adult,
		OwnerID:     i.OwnerID,
	}
}

// GameRepository implements ports.GameRepository on a table keyed by
// partition key id (N) and sort key title (S)
type GameRepository struct {
	client    API
	tableName string
	logger    *zap.Logger
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(client API, tableName string, logger *zap.Logger) *GameRepository {
	return &GameRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

var _ ports.GameRepository = (*GameRepository)(nil)

func gameKey(key entities.GameKey) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberN{Value: strconv.Itoa(key.ID)},
		"title": &types.AttributeValueMemberS{Value: key.Title},
	}
}

// QueryByID returns every record with the given id
func (r *GameRepository) QueryByID(ctx context.Context, id int) ([]*entities.Game, error) {
	return r.query(ctx, expression.Key("id").Equal(expression.Value(id)))
}

// QueryByKey returns the record matching (id, title), if any
func (r *GameRepository) QueryByKey(ctx context.Context, id int, title string) ([]*entities.Game, error) {
	keyCond := expression.Key("id").Equal(expression.Value(id)).
		And(expression.Key("title").Equal(expression.Value(title)))
	return r.query(ctx, keyCond)
}

func (r *GameRepository) query(ctx context.Context, keyCond expression.KeyConditionBuilder) ([]*entities.Game, error) {
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	games := []*entities.Game{}
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			r.logger.Error("Failed to query games", zap.String("table", r.tableName), zap.Error(err))
			return nil, storeError("query", err)
		}

		var items []gameItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, storeError("decode games", err)
		}
		for _, item := range items {
			games = append(games, item.toEntity())
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return games, nil
}

// GetByKey returns the record with the given key, or nil when none exists
func (r *GameRepository) GetByKey(ctx context.Context, key entities.GameKey) (*entities.Game, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            gameKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		r.logger.Error("Failed to get game",
			zap.Int("game_id", key.ID),
			zap.String("title", key.Title),
			zap.Error(err),
		)
		return nil, storeError("get", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var item gameItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, storeError("decode game", err)
	}

	return item.toEntity(), nil
}

// Create puts the record if no record with the same key exists
func (r *GameRepository) Create(ctx context.Context, game *entities.Game) error {
	av, err := attributevalue.MarshalMap(toGameItem(game))
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build condition expression: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return storeError("create", err)
	}

	return nil
}

// UpdateFields sets the six mutable attributes of the record identified by
// the game's key and returns the stored record. The key attributes and
// ownerId are never part of the update expression.
func (r *GameRepository) UpdateFields(ctx context.Context, game *entities.Game) (*entities.Game, error) {
	update := expression.
		Set(expression.Name("version"), expression.Value(game.Version)).
		Set(expression.Name("description"), expression.Value(game.Description)).
		Set(expression.Name("rating"), expression.Value(game.Rating)).
		Set(expression.Name("developer"), expression.Value(game.Developer)).
		Set(expression.Name("genre"), expression.Value(game.Genre)).
		Set(expression.Name("adult"), expression.Value(game.Adult))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       gameKey(game.Key()),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		r.logger.Error("Failed to update game",
			zap.Int("game_id", game.ID),
			zap.String("title", game.Title),
			zap.Error(err),
		)
		return nil, storeError("update", err)
	}

	if len(out.Attributes) == 0 {
		return game.Clone(), nil
	}

	var item gameItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, storeError("decode game", err)
	}

	return item.toEntity(), nil
}
