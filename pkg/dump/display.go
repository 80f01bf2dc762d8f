package dump

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DisplayString converts v to a single line of debug text.
func (c *Context) DisplayString(v any) string {
	cls, rv := classify(v)
	switch cls {
	case classNil:
		return "nil"
	case classScalar:
		return scalarText(rv)
	case classText:
		return strconv.Quote(rv.String())
	case classCustom:
		s, _ := customText(v)
		return s
	case classFunc:
		return funcText(rv)
	case classOpaque:
		return opaqueText(v, rv)
	case classTime:
		return `"` + v.(time.Time).UTC().Format(isoMillis) + `"`
	case classMarker:
		return v.(interface{ String() string }).String()
	}
	return c.objectToString(v, rv)
}

func (c *Context) objectToString(v any, rv reflect.Value) string {
	key, tracked := track(v, rv)
	entity, isEntity := v.(Dumpable)
	if c.busy(key, tracked) {
		if isEntity {
			return RefString(entity)
		}
		return circularText
	}

	return expand(c, key, tracked, func() string {
		if isEntity {
			return c.entityToString(entity)
		}
		if pairs, ok := v.(PairRanger); ok {
			return c.pairsToString(pairs.RangePairs)
		}
		switch rv.Kind() {
		case reflect.Map:
			return c.pairsToString(sortedPairs(rv))
		case reflect.Slice, reflect.Array:
			return c.sequenceToString(rv)
		}
		if s, ok := customText(v); ok {
			return s
		}
		if rv.Kind() == reflect.Pointer {
			return c.DisplayString(rv.Elem().Interface())
		}
		return c.fieldsToString(rv)
	})
}

func (c *Context) entityToString(entity Dumpable) string {
	dumper := NewRawDumper()
	dumper.Add(selfKey, NewRef(entity))
	entity.DumpProperties(dumper)

	var b strings.Builder
	n := 0
	dumper.Properties().Range(func(name string, value any) bool {
		writeEntry(&b, n, name, c.DisplayString(value))
		n++
		return true
	})
	return closeEntries(&b, n)
}

func (c *Context) pairsToString(rangePairs func(fn func(key, value any) bool)) string {
	var b strings.Builder
	n := 0
	rangePairs(func(key, value any) bool {
		writeEntry(&b, n, c.DisplayString(key), c.DisplayString(value))
		n++
		return true
	})
	return closeEntries(&b, n)
}

func (c *Context) fieldsToString(rv reflect.Value) string {
	var b strings.Builder
	n := 0
	if rv.Kind() == reflect.Struct {
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			writeEntry(&b, n, field.Name, c.DisplayString(rv.Field(i).Interface()))
			n++
		}
	}
	return closeEntries(&b, n)
}

func (c *Context) sequenceToString(rv reflect.Value) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.DisplayString(rv.Index(i).Interface()))
	}
	b.WriteByte(']')
	return b.String()
}

func writeEntry(b *strings.Builder, n int, key, value string) {
	if n == 0 {
		b.WriteString("{ ")
	} else {
		b.WriteString(", ")
	}
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
}

func closeEntries(b *strings.Builder, n int) string {
	if n == 0 {
		return "{}"
	}
	b.WriteString(" }")
	return b.String()
}
