package dump

import (
	"reflect"
	"unsafe"
)

// visitKey identifies a value with reference identity, or an entity held by value.
// Slices sharing a backing array but differing in length are distinct values.
type visitKey struct {
	ptr unsafe.Pointer
	typ reflect.Type
	n   int
	id  uint64
}

// Context converts values to their debug representations.
// It owns the set of values currently being expanded, so a Context must not
// be shared between goroutines. Create a fresh one for every top-level conversion.
type Context struct {
	visiting map[visitKey]struct{}
}

// NewContext returns a Context with an empty cycle-detection set.
func NewContext() *Context {
	return &Context{visiting: make(map[visitKey]struct{})}
}

// identify returns the key rv is tracked under. Values without reference
// identity, or which cannot hold anything, are not tracked.
func identify(rv reflect.Value) (visitKey, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return visitKey{}, false
		}
		return visitKey{ptr: rv.UnsafePointer(), typ: rv.Type()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return visitKey{}, false
		}
		return visitKey{ptr: rv.UnsafePointer(), typ: rv.Type(), n: rv.Len()}, true
	}
	return visitKey{}, false
}

// track returns the key v is tracked under. An entity without reference
// identity is tracked by its type and ObjectID, so copies of it are one value.
func track(v any, rv reflect.Value) (visitKey, bool) {
	if key, ok := identify(rv); ok {
		return key, true
	}
	if entity, ok := v.(Dumpable); ok {
		return visitKey{typ: rv.Type(), id: entity.ObjectID()}, true
	}
	return visitKey{}, false
}

func (c *Context) busy(key visitKey, tracked bool) bool {
	if !tracked {
		return false
	}
	_, ok := c.visiting[key]
	return ok
}

// expand runs fn while key is held in the cycle-detection set.
// The key is released however fn exits.
func expand[T any](c *Context, key visitKey, tracked bool, fn func() T) T {
	if tracked {
		c.visiting[key] = struct{}{}
		defer delete(c.visiting, key)
	}
	return fn()
}

// Active returns the number of values currently being expanded.
func (c *Context) Active() int {
	return len(c.visiting)
}
