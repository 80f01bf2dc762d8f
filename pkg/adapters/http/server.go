package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/dumpable"
	"github.com/aretw0/dumpable/pkg/dump"
	"github.com/aretw0/dumpable/pkg/observability"
	"github.com/aretw0/dumpable/pkg/registry"
	"github.com/aretw0/dumpable/pkg/sink"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the roots of a registry for inspection.
type Server struct {
	Roots   *registry.Registry
	Metrics *observability.Metrics
	Logger  *slog.Logger
	// Instance identifies this handler, so restarts can be told apart.
	Instance string
}

type options struct {
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the handler built by NewHandler.
type Option func(*options)

// WithMetrics records every served root in m and serves the metrics gathered by g on GET /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(o *options) {
		o.metrics = m
		o.gatherer = g
	}
}

// WithLogger sets the logger handler failures are reported on. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewHandler creates a new HTTP handler serving the roots of reg.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	server := &Server{
		Roots:    reg,
		Metrics:  o.metrics,
		Logger:   o.logger,
		Instance: uuid.Must(uuid.NewV7()).String(),
	}
	r := chi.NewRouter()

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/roots", server.ListRoots)
	r.Get("/roots/{name}", server.GetRoot)
	if o.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListRoots handles GET /roots with one root name per line.
func (s *Server) ListRoots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, name := range s.Roots.Names() {
		io.WriteString(w, name+"\n")
	}
}

// GetRoot handles GET /roots/{name}. The format query parameter selects
// text (the default), yaml or json.
func (s *Server) GetRoot(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "Invalid root name", http.StatusBadRequest)
		return
	}

	value, err := s.Roots.Lookup(name)
	if err != nil {
		if errors.Is(err, registry.ErrRootNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Lookup failed", http.StatusInternalServerError)
		s.Logger.Error("GetRoot: lookup failed", "error", err, "root", name)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	switch format {
	case "", "text":
		text := dumpable.ToDebugString(value)
		s.Metrics.ObserveDump(1, nil)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, text+"\n")
	case "yaml":
		var buf bytes.Buffer
		err := sink.NewYAML(&buf).Emit(r.Context(), []any{structured(value)})
		s.Metrics.ObserveDump(1, err)
		if err != nil {
			http.Error(w, "Encode failed", http.StatusInternalServerError)
			s.Logger.Error("GetRoot: yaml encode failed", "error", err, "root", name)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(buf.Bytes())
	case "json":
		data, err := json.Marshal(sink.Encodable(structured(value)))
		s.Metrics.ObserveDump(1, err)
		if err != nil {
			http.Error(w, "Encode failed", http.StatusInternalServerError)
			s.Logger.Error("GetRoot: json encode failed", "error", err, "root", name)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(append(data, '\n'))
	default:
		http.Error(w, "Unknown format: "+format, http.StatusBadRequest)
		s.Logger.Warn("GetRoot: unknown format", "format", format, "root", name)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"app":      "dumpable-http",
		"version":  strings.TrimSpace(dumpable.Version),
		"instance": s.Instance,
		"roots":    len(s.Roots.Names()),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func structured(v any) any {
	return dump.NewContext().StructuredValue(v, false)
}
