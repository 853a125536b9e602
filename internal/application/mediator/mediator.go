package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrNilRequest       = errors.New("request cannot be nil")
	ErrNoHandler        = errors.New("no handler registered")
	ErrDuplicateHandler = errors.New("handler already registered")
)

// dispatcher keeps one handler per request type. Registration normally happens
// at startup, but Send may run from several goroutines (the realtime loop and
// the status logger in serve mode).
type dispatcher struct {
	mu          sync.RWMutex
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
}

// NewMediator creates an empty mediator
func NewMediator() Mediator {
	return &dispatcher{handlers: make(map[reflect.Type]RequestHandler)}
}

func (d *dispatcher) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil || handler == nil {
		return fmt.Errorf("register: request type and handler are required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[requestType]; exists {
		return fmt.Errorf("%w for %s", ErrDuplicateHandler, requestType)
	}
	d.handlers[requestType] = handler
	return nil
}

// Use appends a middleware; the first one added is the outermost
func (d *dispatcher) Use(middleware Middleware) {
	d.mu.Lock()
	d.middlewares = append(d.middlewares, middleware)
	d.mu.Unlock()
}

func (d *dispatcher) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	requestType := reflect.TypeOf(request)

	d.mu.RLock()
	handler, ok := d.handlers[requestType]
	chain := d.middlewares
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoHandler, requestType)
	}
	return wrap(handler.Handle, chain)(ctx, request)
}

// wrap nests the middlewares around h, last one innermost
func wrap(h HandlerFunc, chain []Middleware) HandlerFunc {
	for i := len(chain) - 1; i >= 0; i-- {
		mw, next := chain[i], h
		h = func(ctx context.Context, request Request) (Response, error) {
			return mw(ctx, request, next)
		}
	}
	return h
}

// RegisterHandler registers handler for the request type T
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	return m.Register(reflect.TypeOf((*T)(nil)).Elem(), handler)
}
