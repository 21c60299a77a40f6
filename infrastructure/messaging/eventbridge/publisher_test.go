package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"games-backend/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPI struct {
	input *eventbridge.PutEventsInput
	out   *eventbridge.PutEventsOutput
	err   error
}

func (f *fakeAPI) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	f.input = params
	return f.out, f.err
}

func TestPublisher_Publish(t *testing.T) {
	// Arrange
	api := &fakeAPI{out: &eventbridge.PutEventsOutput{}}
	publisher := NewPublisher(api, "games-bus", zap.NewNop())
	event := events.NewGameUpdated(1, "Dark Souls", "u1", []string{"rating"}, time.Now())

	// Act
	err := publisher.Publish(context.Background(), event)

	// Assert
	require.NoError(t, err)
	require.Len(t, api.input.Entries, 1)
	entry := api.input.Entries[0]
	assert.Equal(t, "games-bus", aws.ToString(entry.EventBusName))
	assert.Equal(t, events.SourceGamesBackend, aws.ToString(entry.Source))
	assert.Equal(t, events.EventTypeGameUpdated, aws.ToString(entry.DetailType))
	assert.Equal(t, []string{"GAME#1#Dark Souls"}, entry.Resources)

	var detail events.GameUpdated
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Detail)), &detail))
	assert.Equal(t, "u1", detail.UpdatedBy)
	assert.Equal(t, []string{"rating"}, detail.ChangedFields)
}

func TestPublisher_Publish_RejectedEntry(t *testing.T) {
	api := &fakeAPI{out: &eventbridge.PutEventsOutput{
		FailedEntryCount: 1,
		Entries: []types.PutEventsResultEntry{
			{ErrorCode: aws.String("InternalFailure"), ErrorMessage: aws.String("try again")},
		},
	}}
	publisher := NewPublisher(api, "games-bus", zap.NewNop())

	err := publisher.Publish(context.Background(), events.NewGameCreated(1, "Dark Souls", "u1", time.Now()))

	assert.Error(t, err)
}

func TestPublisher_Publish_ClientError(t *testing.T) {
	api := &fakeAPI{err: errors.New("no route to host")}
	publisher := NewPublisher(api, "games-bus", zap.NewNop())

	err := publisher.Publish(context.Background(), events.NewTranslationCreated(1, "Dark Souls", "fr", time.Now()))

	assert.Error(t, err)
}
