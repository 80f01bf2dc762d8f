package sink

import (
	"context"
	"errors"
)

// Sink receives the values of a single dump call.
type Sink interface {
	Emit(ctx context.Context, values []any) error
}

// Func adapts an ordinary function to a Sink.
type Func func(ctx context.Context, values []any) error

func (f Func) Emit(ctx context.Context, values []any) error {
	return f(ctx, values)
}

// Discard drops every value.
var Discard Sink = Func(func(context.Context, []any) error { return nil })

type multi []Sink

// Multi fans every call out to all sinks, in order.
// A failing sink does not stop the others; their errors are joined.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Emit(ctx context.Context, values []any) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, values); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
