package dumpable

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/aretw0/dumpable/pkg/dump"
	"github.com/aretw0/dumpable/pkg/observability"
	"github.com/aretw0/dumpable/pkg/sink"
)

type (
	// Dumpable is implemented by entities that describe themselves through named properties.
	Dumpable = dump.Dumpable
	// Base carries the identity of a Dumpable. Embed it by value.
	Base = dump.Base
	// PropertyDumper receives the properties of a Dumpable.
	PropertyDumper = dump.PropertyDumper
	// RefStringer overrides the reference string of a Dumpable.
	RefStringer = dump.RefStringer
)

var (
	// NewBase returns a Base holding the next process-wide identity.
	NewBase = dump.NewBase
	// NewMap returns an empty insertion-ordered map.
	NewMap = dump.NewMap
	// NewRef returns a reference to a Dumpable.
	NewRef = dump.NewRef
	// String returns the full text form of a Dumpable.
	String = dump.String
)

// Dumper converts values and hands them to a sink.
type Dumper struct {
	sink    sink.Sink
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option defines a functional option for configuring the Dumper.
type Option func(*Dumper)

// WithSink sets where converted values go. The default is the console on stderr.
func WithSink(s sink.Sink) Option {
	return func(d *Dumper) {
		d.sink = s
	}
}

// WithLogger sets a custom structured logger, used to report sink failures.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dumper) {
		d.logger = logger
	}
}

// WithMetrics records every dump call in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(d *Dumper) {
		d.metrics = m
	}
}

// New creates a Dumper.
func New(opts ...Option) *Dumper {
	d := &Dumper{}
	for _, opt := range opts {
		opt(d)
	}
	if d.sink == nil {
		d.sink = sink.NewConsole(os.Stderr)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return d
}

// Dump converts values and emits them. Sink failures are logged, not returned.
func (d *Dumper) Dump(values ...any) {
	if err := d.DumpContext(context.Background(), values...); err != nil {
		d.logger.Error("dump failed", "error", err, "values", len(values))
	}
}

// DumpContext converts values and emits them, returning any sink failure.
func (d *Dumper) DumpContext(ctx context.Context, values ...any) error {
	err := d.sink.Emit(ctx, StructuredValues(values...))
	d.metrics.ObserveDump(len(values), err)
	if err != nil {
		return fmt.Errorf("emit %d values: %w", len(values), err)
	}
	return nil
}

// StructuredValues converts values for a sink, sharing one conversion context
// across all of them. Top-level strings are quoted.
func StructuredValues(values ...any) []any {
	ctx := dump.NewContext()
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = ctx.StructuredValue(v, true)
	}
	return out
}

// ToDebugString returns the single-line debug text of v.
func ToDebugString(v any) string {
	return dump.NewContext().DisplayString(v)
}

var defaultDumper atomic.Pointer[Dumper]

func init() {
	defaultDumper.Store(New())
}

// Default returns the Dumper used by the package-level Dump.
func Default() *Dumper {
	return defaultDumper.Load()
}

// SetDefault replaces the Dumper used by the package-level Dump.
func SetDefault(d *Dumper) {
	defaultDumper.Store(d)
}

// Dump converts values and emits them through the default Dumper.
func Dump(values ...any) {
	Default().Dump(values...)
}
