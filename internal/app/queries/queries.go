package queries

import (
	"context"
	"errors"
	"fmt"
)

// Query is a read request routed through the bus.
type Query interface {
	Key() string
}

// Handler handles one query type.
type Handler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Bus routes queries to registered handlers.
type Bus interface {
	Ask(ctx context.Context, query Query) (any, error)
}

var (
	ErrHandlerNotFound = errors.New("queries: handler not found")
	ErrInvalidQuery    = errors.New("queries: invalid query for handler")
	ErrResultType      = errors.New("queries: result type mismatch")
	ErrNilBus          = errors.New("queries: nil bus")
)

// Ask performs a type-safe query against a bus.
func Ask[Q Query, R any](ctx context.Context, bus Bus, query Q) (R, error) {
	var zero R
	if bus == nil {
		return zero, ErrNilBus
	}
	res, err := bus.Ask(ctx, query)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	typed, ok := res.(R)
	if !ok {
		return zero, ErrResultType
	}
	return typed, nil
}

type rawHandler func(ctx context.Context, query Query) (any, error)

// InMemoryBus keeps handlers in a key-indexed registry.
type InMemoryBus struct {
	handlers map[string]rawHandler
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{handlers: make(map[string]rawHandler)}
}

// Ask executes the handler registered for the query key.
func (b *InMemoryBus) Ask(ctx context.Context, query Query) (any, error) {
	h, ok := b.handlers[query.Key()]
	if !ok {
		return nil, ErrHandlerNotFound
	}
	return h(ctx, query)
}

// Register attaches a typed handler under the given key.
func Register[Q Query, R any](bus *InMemoryBus, key string, handler Handler[Q, R]) {
	if bus == nil {
		panic("queries: nil bus")
	}
	if key == "" {
		panic("queries: empty key registration")
	}
	bus.handlers[key] = func(ctx context.Context, raw Query) (any, error) {
		query, ok := any(raw).(Q)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, key)
		}
		return handler.Handle(ctx, query)
	}
}
