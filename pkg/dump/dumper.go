package dump

import (
	"math"
	"reflect"
)

// PropertyDumper receives the properties an entity wishes to display.
// All methods return the dumper so calls can be chained.
type PropertyDumper interface {
	// Add records value under name.
	Add(name string, value any) PropertyDumper
	// AddRef records a reference to target, showing only its identity.
	// A nil target is recorded as is.
	AddRef(name string, target Dumpable) PropertyDumper
	// AddIfTruthy records value only if Truthy reports true for it.
	AddIfTruthy(name string, value any) PropertyDumper
	// AddRefIfTruthy records a reference only if target is not nil.
	AddRefIfTruthy(name string, target Dumpable) PropertyDumper
}

// RawDumper stores contributed values exactly as given.
type RawDumper struct {
	props *Properties
}

// NewRawDumper returns an empty RawDumper.
func NewRawDumper() *RawDumper {
	return &RawDumper{props: NewProperties()}
}

// Properties returns the collected properties.
func (d *RawDumper) Properties() *Properties {
	return d.props
}

func (d *RawDumper) Add(name string, value any) PropertyDumper {
	d.props.Set(name, value)
	return d
}

func (d *RawDumper) AddRef(name string, target Dumpable) PropertyDumper {
	return d.Add(name, refOrNil(target))
}

func (d *RawDumper) AddIfTruthy(name string, value any) PropertyDumper {
	return addIfTruthy(d, name, value)
}

func (d *RawDumper) AddRefIfTruthy(name string, target Dumpable) PropertyDumper {
	return addRefIfTruthy(d, name, target)
}

// eagerDumper converts each value to its structured form as soon as it is added,
// so nested values are resolved and cycle-checked under the owning context.
type eagerDumper struct {
	ctx   *Context
	props *Properties
}

func (d *eagerDumper) Add(name string, value any) PropertyDumper {
	d.props.Set(name, d.ctx.StructuredValue(value, false))
	return d
}

func (d *eagerDumper) AddRef(name string, target Dumpable) PropertyDumper {
	return d.Add(name, refOrNil(target))
}

func (d *eagerDumper) AddIfTruthy(name string, value any) PropertyDumper {
	return addIfTruthy(d, name, value)
}

func (d *eagerDumper) AddRefIfTruthy(name string, target Dumpable) PropertyDumper {
	return addRefIfTruthy(d, name, target)
}

func addIfTruthy(d PropertyDumper, name string, value any) PropertyDumper {
	if Truthy(value) {
		return d.Add(name, value)
	}
	return d
}

func addRefIfTruthy(d PropertyDumper, name string, target Dumpable) PropertyDumper {
	if Truthy(target) {
		return d.AddRef(name, target)
	}
	return d
}

func refOrNil(target Dumpable) any {
	if target == nil || isNil(reflect.ValueOf(target)) {
		return target
	}
	return NewRef(target)
}

// Truthy reports whether v is outside the falsy set:
// false, numeric zero or NaN, the empty string, and nil of any nilable kind.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() > 0
	}
	return !isNil(rv)
}
