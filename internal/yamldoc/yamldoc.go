// Package yamldoc decodes YAML and JSON streams into values the dump engine can walk.
//
// Mappings become *dump.Map, keeping source order, and sequences become []any.
// An alias resolves to the very value built for its anchor, so shared and
// recursive structures keep their identity.
package yamldoc

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/aretw0/dumpable/pkg/dump"
	"gopkg.in/yaml.v3"
)

// Decode reads every document in r.
func Decode(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for i := 0; ; i++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, fmt.Errorf("decode document %d: %w", i, err)
		}
		v, err := newBuilder().build(&node)
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", i, err)
		}
		docs = append(docs, v)
	}
}

type builder struct {
	built map[*yaml.Node]any
}

func newBuilder() *builder {
	return &builder{built: make(map[*yaml.Node]any)}
}

func (b *builder) build(n *yaml.Node) (any, error) {
	if v, ok := b.built[n]; ok {
		return v, nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return b.build(n.Content[0])
	case yaml.AliasNode:
		return b.build(n.Alias)
	case yaml.MappingNode:
		m := dump.NewMap()
		b.built[n] = m
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := b.build(n.Content[i])
			if err != nil {
				return nil, err
			}
			value, err := b.build(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(mapKey(key), value)
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, len(n.Content))
		b.built[n] = items
		for i, child := range n.Content {
			v, err := b.build(child)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

// mapKey replaces keys Go cannot hash, such as sequences, with their display text.
func mapKey(key any) any {
	if key == nil || reflect.TypeOf(key).Comparable() {
		return key
	}
	return dump.NewContext().DisplayString(key)
}
