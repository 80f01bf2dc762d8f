package sink

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/aretw0/dumpable/pkg/dump"
	"github.com/muesli/termenv"
)

// specialColor is the ANSI color used for references and cycle markers.
const specialColor = "6"

// Console writes one line per call, with values separated by spaces.
// Top-level strings are printed as given; nested strings are quoted.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	out *termenv.Output
}

// ConsoleOption configures a Console.
type ConsoleOption func(*[]termenv.OutputOption)

// WithProfile forces the color profile instead of detecting it from w.
func WithProfile(p termenv.Profile) ConsoleOption {
	return func(opts *[]termenv.OutputOption) {
		*opts = append(*opts, termenv.WithProfile(p))
	}
}

// NewConsole returns a console sink writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	var outOpts []termenv.OutputOption
	for _, opt := range opts {
		opt(&outOpts)
	}
	return &Console{w: w, out: termenv.NewOutput(w, outOpts...)}
}

func (c *Console) Emit(_ context.Context, values []any) error {
	parts := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			parts[i] = Sanitize(s)
			continue
		}
		parts[i] = c.format(v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.w, strings.Join(parts, " ")+"\n")
	return err
}

func (c *Console) format(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case dump.Ref:
		return c.special(x.String())
	case dump.Circular:
		return c.special(x.String())
	case *dump.Properties:
		if x.Len() == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{ ")
		n := 0
		x.Range(func(name string, value any) bool {
			if n > 0 {
				b.WriteString(", ")
			}
			b.WriteString(consoleKey(name))
			b.WriteString(": ")
			b.WriteString(c.format(value))
			n++
			return true
		})
		b.WriteString(" }")
		return b.String()
	case []any:
		if len(x) == 0 {
			return "[]"
		}
		items := make([]string, len(x))
		for i := range x {
			items[i] = c.format(x[i])
		}
		return "[ " + strings.Join(items, ", ") + " ]"
	}
	return Sanitize(dump.NewContext().DisplayString(v))
}

func (c *Console) special(text string) string {
	return c.out.String(text).Foreground(c.out.Color(specialColor)).String()
}

// consoleKey leaves identifier-like property names bare and quotes the rest.
func consoleKey(name string) string {
	if name == "" {
		return `""`
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || r == '@' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return strconv.Quote(name)
		}
	}
	return name
}
