package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/dumpable/pkg/dump"
	"github.com/aretw0/dumpable/pkg/observability"
	"github.com/aretw0/dumpable/pkg/registry"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	dump.Base
	label string
	next  *widget
}

func (w *widget) DumpProperties(d dump.PropertyDumper) {
	w.Base.DumpProperties(d)
	d.Add("label", w.label).AddRefIfTruthy("next", w.next)
}

func newTestHandler(t *testing.T) (http.Handler, *widget) {
	t.Helper()
	w := &widget{Base: dump.NewBase(), label: "gear"}
	w.next = w

	reg := registry.NewRegistry()
	reg.Register("widget", w)
	reg.Register("list", []any{1, "two", nil})
	reg.Register("doc:0", map[string]int{"b": 2, "a": 1})
	return NewHandler(reg), w
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListRoots(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/roots")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doc:0\nlist\nwidget\n", rec.Body.String())
}

func TestGetRoot_Formats(t *testing.T) {
	h, w := newTestHandler(t)
	ref := dump.RefString(w)

	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
	}{
		{"text default", "/roots/list", "text/plain; charset=utf-8", "[1, \"two\", nil]\n"},
		{"text entity", "/roots/widget?format=text", "text/plain; charset=utf-8",
			"{ @: " + ref + ", label: \"gear\", next: " + ref + " }\n"},
		{"yaml", "/roots/list?format=yaml", "application/yaml", "---\n- - 1\n  - two\n  - null\n"},
		{"escaped name", "/roots/doc%3A0", "text/plain; charset=utf-8", "{ \"a\": 1, \"b\": 2 }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestGetRoot_JSON(t *testing.T) {
	h, w := newTestHandler(t)
	ref := dump.RefString(w)

	rec := get(t, h, "/roots/widget?format=json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"@": "`+ref+`", "label": "gear", "next": "`+ref+`"}`, rec.Body.String())
}

func TestGetRoot_Errors(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/roots/missing").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/roots/list?format=xml").Code)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	roots := registry.NewRegistry()
	roots.Register("list", []any{1})
	h := NewHandler(roots, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/roots/list?format=xml").Code)
	assert.Contains(t, buf.String(), "GetRoot: unknown format")
	assert.Contains(t, buf.String(), "format=xml")
}

func TestHealthAndInfo(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/health")
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	rec = get(t, h, "/info")
	var info map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "dumpable-http", info["app"])
	assert.Equal(t, 3.0, info["roots"])

	instance, ok := info["instance"].(string)
	require.True(t, ok)
	id, err := uuid.Parse(instance)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestWithMetrics(t *testing.T) {
	roots := registry.NewRegistry()
	roots.Register("n", 1)

	reg := prometheus.NewRegistry()
	h := NewHandler(roots, WithMetrics(observability.NewMetrics(reg), reg))

	get(t, h, "/roots/n")
	get(t, h, "/roots/n?format=yaml")
	get(t, h, "/roots/n?format=json")

	rec := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dumpable_dump_calls_total{outcome="ok"} 3`)

	assert.Equal(t, http.StatusNotFound, get(t, NewHandler(registry.NewRegistry()), "/metrics").Code)
}
