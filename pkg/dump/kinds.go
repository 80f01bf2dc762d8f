package dump

import (
	"fmt"
	"math/big"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"
)

// isoMillis is the ISO-8601 layout used for time.Time in display strings.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type class int

const (
	classNil class = iota
	classScalar
	classText
	classCustom
	classFunc
	classOpaque
	classTime
	classMarker
	classObject
)

func classify(v any) (class, reflect.Value) {
	switch x := v.(type) {
	case nil:
		return classNil, reflect.Value{}
	case Ref, Circular:
		return classMarker, reflect.Value{}
	case time.Time:
		return classTime, reflect.Value{}
	case *big.Int:
		if x == nil {
			return classNil, reflect.Value{}
		}
		return classOpaque, reflect.ValueOf(v)
	case *big.Float:
		if x == nil {
			return classNil, reflect.Value{}
		}
		return classOpaque, reflect.ValueOf(v)
	case *big.Rat:
		if x == nil {
			return classNil, reflect.Value{}
		}
		return classOpaque, reflect.ValueOf(v)
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return classNil, rv
	}
	if _, ok := v.(Dumpable); ok {
		return classObject, rv
	}
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		if _, ok := customText(v); ok {
			return classCustom, rv
		}
		return classScalar, rv
	case reflect.String:
		if _, ok := customText(v); ok {
			return classCustom, rv
		}
		return classText, rv
	case reflect.Func:
		return classFunc, rv
	case reflect.Chan, reflect.UnsafePointer:
		return classOpaque, rv
	}
	return classObject, rv
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// customText returns the text form a value defines for itself.
func customText(v any) (string, bool) {
	switch x := v.(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func scalarText(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	}
	return fmt.Sprint(rv.Interface())
}

func opaqueText(v any, rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("(%s)(%#x)", rv.Type(), rv.Pointer())
	}
	return fmt.Sprint(v)
}

// funcText renders a named function as `name()` and a closure as its signature.
func funcText(rv reflect.Value) string {
	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
		if name := shortFuncName(fn.Name()); name != "" {
			return name + "()"
		}
	}
	return rv.Type().String()
}

// shortFuncName strips the package path, receiver and type arguments from a
// runtime function name. It returns "" for compiler-named closures.
func shortFuncName(full string) string {
	if i := strings.Index(full, "[...]"); i >= 0 {
		full = full[:i] + full[i+len("[...]"):]
	}
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	name := full
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		name = full[i+1:]
	}
	if isClosureName(name) {
		return ""
	}
	return name
}

func isClosureName(name string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return rest == "" || isDigits(rest)
		}
	}
	// nested closures are numbered: pkg.F.func1.2
	return isDigits(name)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type mapEntry struct {
	key, value reflect.Value
}

// sortedPairs yields the entries of a Go map in a deterministic key order.
func sortedPairs(rv reflect.Value) func(fn func(key, value any) bool) {
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: iter.Key(), value: iter.Value()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return lessKey(entries[i].key, entries[j].key)
	})
	return func(fn func(key, value any) bool) {
		for _, e := range entries {
			if !fn(e.key.Interface(), e.value.Interface()) {
				return
			}
		}
	}
}

func lessKey(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && b.IsValid()
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}
