package sink

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/aretw0/dumpable/pkg/dump"
	"gopkg.in/yaml.v3"
)

// YAML writes every call as a YAML document holding the sequence of values.
type YAML struct {
	mu sync.Mutex
	w  io.Writer
}

// NewYAML returns a YAML sink writing to w.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

func (y *YAML) Emit(_ context.Context, values []any) error {
	doc := make([]any, len(values))
	for i, v := range values {
		doc[i] = Encodable(v)
	}

	y.mu.Lock()
	defer y.mu.Unlock()
	if _, err := io.WriteString(y.w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml document: %w", err)
	}
	return enc.Close()
}

// Encodable replaces the values data encoders cannot represent, such as functions,
// channels and complex numbers, with their display text. Structured values are rebuilt
// with their members replaced; everything else is returned as is.
func Encodable(v any) any {
	switch x := v.(type) {
	case nil, string, bool, time.Time, dump.Ref, dump.Circular:
		return v
	case *dump.Properties:
		out := dump.NewProperties()
		x.Range(func(name string, value any) bool {
			out.Set(name, Encodable(value))
			return true
		})
		return out
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = Encodable(x[i])
		}
		return out
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v
	}
	return dump.NewContext().DisplayString(v)
}
