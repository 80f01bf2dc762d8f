package dump

import (
	"fmt"
	"log/slog"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// selfKey is the name of the entry holding an entity's own reference.
const selfKey = "@"

// Property is a single named value of a Properties set.
type Property struct {
	Name  string
	Value any
}

// Properties is an insertion-ordered set of named values.
// Setting an existing name replaces its value and keeps its position.
type Properties struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewProperties returns an empty set.
func NewProperties() *Properties {
	return &Properties{m: orderedmap.New[string, any]()}
}

// Set records value under name.
func (p *Properties) Set(name string, value any) *Properties {
	p.m.Set(name, value)
	return p
}

// Get returns the value recorded under name.
func (p *Properties) Get(name string) (any, bool) {
	return p.m.Get(name)
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return p.m.Len()
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	names := make([]string, 0, p.m.Len())
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Entries returns a snapshot of the properties in insertion order.
func (p *Properties) Entries() []Property {
	entries := make([]Property, 0, p.m.Len())
	p.Range(func(name string, value any) bool {
		entries = append(entries, Property{Name: name, Value: value})
		return true
	})
	return entries
}

// Range calls fn for each property in insertion order until fn returns false.
func (p *Properties) Range(fn func(name string, value any) bool) {
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// RangePairs implements PairRanger.
func (p *Properties) RangePairs(fn func(key, value any) bool) {
	p.Range(func(name string, value any) bool {
		return fn(name, value)
	})
}

// String is the plain-text fallback used by sinks without special handling.
func (p *Properties) String() string {
	if p.Len() == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	first := true
	p.Range(func(name string, value any) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(name)
		b.WriteString(": ")
		if s, ok := value.(string); ok {
			b.WriteString(s)
		} else {
			fmt.Fprint(&b, value)
		}
		return true
	})
	b.WriteString(" }")
	return b.String()
}

// LogValue renders the set as an slog group, keeping insertion order.
func (p *Properties) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, p.Len())
	p.Range(func(name string, value any) bool {
		attrs = append(attrs, slog.Any(name, value))
		return true
	})
	return slog.GroupValue(attrs...)
}

// MarshalJSON implements json.Marshaler, keeping insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	return p.m.MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler, keeping insertion order.
func (p *Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}
		value := &yaml.Node{}
		if err := value.Encode(pair.Value); err != nil {
			return nil, fmt.Errorf("property %q: %w", pair.Key, err)
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
