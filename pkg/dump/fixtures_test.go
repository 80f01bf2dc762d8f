package dump_test

import (
	"fmt"

	"github.com/aretw0/dumpable/pkg/dump"
)

type C struct {
	dump.Base
	self *C
}

func (c *C) DumpProperties(d dump.PropertyDumper) {
	c.Base.DumpProperties(d)
	d.AddIfTruthy("foo", "bar")
	d.AddIfTruthy("baz", "")
	d.Add("self", c.self)
}

type D struct {
	dump.Base
	c *C
}

func (x *D) DumpProperties(d dump.PropertyDumper) {
	x.Base.DumpProperties(d)
	d.AddRefIfTruthy("c", x.c)
	d.AddRef("x", nil)
	d.AddRefIfTruthy("y", nil)
}

type symbol struct {
	name string
}

func (s *symbol) String() string {
	return "Symbol(" + s.name + ")"
}

type stringy struct{}

func (stringy) String() string {
	return "Stringy"
}

type point struct {
	X, Y int
}

type node struct {
	Name string
	Next *node
}

type fixtures struct {
	c      *C
	d      *D
	m      *dump.Map
	sym    *symbol
	cRef   string
	dRef   string
	cFull  string
	dFull  string
	circle map[string]any
	loop   []any
}

func newFixtures() fixtures {
	c := &C{Base: dump.NewBase()}
	c.self = c
	d := &D{Base: dump.NewBase(), c: c}

	sym := &symbol{name: "circular"}
	m := dump.NewMap().Set("a", 1).Set(c, d)
	m.Set(sym, m)

	circle := map[string]any{}
	circle["obj"] = map[string]any{"circular": circle}

	loop := []any{42, nil}
	loop[1] = loop

	cRef := fmt.Sprintf("[C#%d]", c.ObjectID())
	dRef := fmt.Sprintf("[D#%d]", d.ObjectID())
	return fixtures{
		c:      c,
		d:      d,
		m:      m,
		sym:    sym,
		cRef:   cRef,
		dRef:   dRef,
		cFull:  fmt.Sprintf(`{ @: %s, foo: "bar", self: %s }`, cRef, cRef),
		dFull:  fmt.Sprintf(`{ @: %s, c: %s, x: nil }`, dRef, cRef),
		circle: circle,
		loop:   loop,
	}
}

func sampleFunc() {}

// plain flattens structured values so they can be compared with assert.Equal.
func plain(v any) any {
	switch x := v.(type) {
	case *dump.Properties:
		entries := x.Entries()
		for i := range entries {
			entries[i].Value = plain(entries[i].Value)
		}
		return entries
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = plain(x[i])
		}
		return out
	}
	return v
}

func props(kv ...any) []dump.Property {
	out := make([]dump.Property, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, dump.Property{Name: kv[i].(string), Value: kv[i+1]})
	}
	return out
}

// tag is an entity held by value, with its own identity.
type tag struct {
	id   uint64
	Name string
}

func (t tag) ObjectID() uint64 { return t.id }

func (t tag) DumpProperties(d dump.PropertyDumper) {
	d.Add("name", t.Name).Add("self", t)
}

// ticket is an entity of scalar kind.
type ticket uint64

func (t ticket) ObjectID() uint64 { return uint64(t) }

func (t ticket) DumpProperties(d dump.PropertyDumper) {
	d.Add("n", int(t))
}
