package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/application/mediator"
)

type pingCommand struct{ Value int }

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*pingCommand)
	if !ok {
		return nil, errors.New("invalid request type")
	}
	return cmd.Value * 2, nil
}

func TestMediator_SendDispatchesToHandler(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, &pingHandler{}))

	response, err := m.Send(context.Background(), &pingCommand{Value: 21})

	require.NoError(t, err)
	assert.Equal(t, 42, response)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, &pingHandler{}))

	assert.Error(t, mediator.RegisterHandler[*pingCommand](m, &pingHandler{}))

	_, err := m.Send(context.Background(), &struct{}{})
	assert.Error(t, err)

	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, &pingHandler{}))

	var order []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			order = append(order, name+":before")
			response, err := next(ctx, request)
			order = append(order, name+":after")
			return response, err
		}
	}
	m.Use(trace("outer"))
	m.Use(trace("inner"))

	_, err := m.Send(context.Background(), &pingCommand{Value: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, order)
}

func TestMediator_HandlerFuncAndSentinelErrors(t *testing.T) {
	m := mediator.NewMediator()
	echo := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return request, nil
	})
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, echo))

	cmd := &pingCommand{Value: 7}
	response, err := m.Send(context.Background(), cmd)
	require.NoError(t, err)
	assert.Same(t, cmd, response)

	err = mediator.RegisterHandler[*pingCommand](m, echo)
	assert.ErrorIs(t, err, mediator.ErrDuplicateHandler)

	_, err = m.Send(context.Background(), &struct{ Other bool }{})
	assert.ErrorIs(t, err, mediator.ErrNoHandler)

	_, err = m.Send(context.Background(), nil)
	assert.ErrorIs(t, err, mediator.ErrNilRequest)
}
