package dump

import (
	"reflect"
	"strconv"
	"sync/atomic"

	"github.com/aretw0/dumpable/pkg/identity"
)

// Dumpable is implemented by entities that describe themselves through named properties.
type Dumpable interface {
	// ObjectID returns the identity assigned to the entity. It never changes.
	ObjectID() uint64
	// DumpProperties contributes the entity's displayed properties.
	// Types embedding another Dumpable should call the embedded DumpProperties first
	// so inherited properties are kept.
	DumpProperties(d PropertyDumper)
}

// RefStringer overrides the default `[<type>#<id>]` reference string.
// The returned text must stay fixed for the lifetime of the entity.
type RefStringer interface {
	RefString() string
}

// Base provides the identity and the default, empty property contribution of a Dumpable.
// Embed it by value and use the embedding type through a pointer.
//
// Build entities with NewBase. A zero Base claims its identity on first use, so a copy
// taken before that claims a different one, and a copy taken after shares it. Do not
// copy an entity once it is in use; copies are indistinguishable from the original.
type Base struct {
	id uint64
}

// NewBase returns a Base holding the next process-wide identity.
func NewBase() Base {
	return Base{id: identity.Next()}
}

// ObjectID returns the entity identity. A zero Base claims one on first use.
func (b *Base) ObjectID() uint64 {
	if id := atomic.LoadUint64(&b.id); id != 0 {
		return id
	}
	atomic.CompareAndSwapUint64(&b.id, 0, identity.Next())
	return atomic.LoadUint64(&b.id)
}

// DumpProperties contributes nothing.
func (b *Base) DumpProperties(PropertyDumper) {}

// RefString returns the reference string of d.
func RefString(d Dumpable) string {
	if rs, ok := d.(RefStringer); ok {
		return rs.RefString()
	}
	return "[" + typeName(d) + "#" + strconv.FormatUint(d.ObjectID(), 10) + "]"
}

// String returns the full text form of d, `{ @: <ref>, name: value, ... }`,
// using a fresh Context. Dumpable types usually return it from their String method.
func String(d Dumpable) string {
	return NewContext().DisplayString(d)
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
