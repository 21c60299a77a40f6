package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testCommand struct {
	valid bool
}

func (c testCommand) Validate() error {
	if !c.valid {
		return errors.New("invalid command")
	}
	return nil
}

type otherCommand struct{}

func (otherCommand) Validate() error { return nil }

func TestCommandBus_Send(t *testing.T) {
	b := NewCommandBus(LoggingMiddleware(zap.NewNop()))
	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return "done", nil
	})))

	result, err := b.Send(context.Background(), testCommand{valid: true})

	require.NoError(t, err)
	assert.Equal(t, "done", result)
}

func TestCommandBus_Send_ValidationFails(t *testing.T) {
	called := false
	b := NewCommandBus()
	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		called = true
		return nil, nil
	})))

	_, err := b.Send(context.Background(), testCommand{})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestCommandBus_Send_HandlerErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("boom")
	b := NewCommandBus()
	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return nil, sentinel
	})))

	_, err := b.Send(context.Background(), testCommand{valid: true})

	assert.ErrorIs(t, err, sentinel)
}

func TestCommandBus_Send_NoHandler(t *testing.T) {
	b := NewCommandBus()

	_, err := b.Send(context.Background(), otherCommand{})

	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestCommandBus_Register_Duplicate(t *testing.T) {
	b := NewCommandBus()
	h := CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) { return nil, nil })

	require.NoError(t, b.Register(testCommand{}, h))
	assert.Error(t, b.Register(testCommand{}, h))
}

func TestPipeline_Execute_Order(t *testing.T) {
	var order []string
	trace := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
				order = append(order, name)
				return next.Handle(ctx, cmd)
			})
		}
	}

	handler := NewPipeline(trace("outer"), trace("inner")).Execute(
		CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
			order = append(order, "handler")
			return nil, nil
		}),
	)

	_, err := handler.Handle(context.Background(), testCommand{valid: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
