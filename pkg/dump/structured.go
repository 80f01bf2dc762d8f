package dump

import (
	"reflect"
	"strconv"
)

// StructuredValue converts v to a nested, type-preserving value for value-aware sinks.
//
// Mappings become *Properties and sequences []any. Scalars, functions, times and other
// primitives pass through unchanged. Re-entered values become Ref for entities and
// Circular otherwise. Text is returned raw unless quoteStrings is set; nested values
// are always converted with quoteStrings unset.
func (c *Context) StructuredValue(v any, quoteStrings bool) any {
	cls, rv := classify(v)
	switch cls {
	case classNil:
		return nil
	case classText:
		if quoteStrings {
			return strconv.Quote(rv.String())
		}
		return v
	case classCustom:
		s, _ := customText(v)
		return s
	case classObject:
		return c.objectToStructured(v, rv, quoteStrings)
	}
	return v
}

func (c *Context) objectToStructured(v any, rv reflect.Value, quoteStrings bool) any {
	key, tracked := track(v, rv)
	entity, isEntity := v.(Dumpable)
	if c.busy(key, tracked) {
		if isEntity {
			return NewRef(entity)
		}
		return Circular{}
	}

	return expand(c, key, tracked, func() any {
		if isEntity {
			return c.entityToStructured(entity)
		}
		if pairs, ok := v.(PairRanger); ok {
			return c.pairsToStructured(pairs.RangePairs)
		}
		switch rv.Kind() {
		case reflect.Map:
			return c.pairsToStructured(sortedPairs(rv))
		case reflect.Slice, reflect.Array:
			items := make([]any, rv.Len())
			for i := range items {
				items[i] = c.StructuredValue(rv.Index(i).Interface(), false)
			}
			return items
		}
		if s, ok := customText(v); ok {
			return s
		}
		if rv.Kind() == reflect.Pointer {
			return c.StructuredValue(rv.Elem().Interface(), quoteStrings)
		}
		return c.fieldsToStructured(rv)
	})
}

func (c *Context) entityToStructured(entity Dumpable) *Properties {
	props := NewProperties().Set(selfKey, NewRef(entity))
	entity.DumpProperties(&eagerDumper{ctx: c, props: props})
	return props
}

func (c *Context) pairsToStructured(rangePairs func(fn func(key, value any) bool)) *Properties {
	props := NewProperties()
	rangePairs(func(key, value any) bool {
		props.Set(c.propertyName(key), c.StructuredValue(value, false))
		return true
	})
	return props
}

func (c *Context) fieldsToStructured(rv reflect.Value) *Properties {
	props := NewProperties()
	if rv.Kind() != reflect.Struct {
		return props
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		if field := t.Field(i); field.IsExported() {
			props.Set(field.Name, c.StructuredValue(rv.Field(i).Interface(), false))
		}
	}
	return props
}

// propertyName converts a mapping key to a property name. Text keeps its raw
// form, scalars their native form; anything else uses its display string.
func (c *Context) propertyName(key any) string {
	switch cls, rv := classify(key); cls {
	case classText:
		return rv.String()
	case classScalar:
		return scalarText(rv)
	}
	return c.DisplayString(key)
}
