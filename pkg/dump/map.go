package dump

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PairRanger is implemented by key-unique, ordered pair collections.
// Both conversion modes render them as mappings, in the order RangePairs yields them.
type PairRanger interface {
	RangePairs(fn func(key, value any) bool)
}

// Map is an insertion-ordered collection with unique keys of any comparable type.
type Map struct {
	m *orderedmap.OrderedMap[any, any]
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{m: orderedmap.New[any, any]()}
}

// Set records value under key. Re-setting a key keeps its position.
// Like a Go map, it panics if key is not comparable.
func (m *Map) Set(key, value any) *Map {
	m.m.Set(key, value)
	return m
}

// Get returns the value recorded under key.
func (m *Map) Get(key any) (any, bool) {
	return m.m.Get(key)
}

// Delete removes key, reporting whether it was present.
func (m *Map) Delete(key any) bool {
	_, ok := m.m.Delete(key)
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.m.Len()
}

// RangePairs calls fn for each entry in insertion order until fn returns false.
func (m *Map) RangePairs(fn func(key, value any) bool) {
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

func (m *Map) String() string {
	return NewContext().DisplayString(m)
}
