// Package server serves a form over HTTP: GET renders it empty, POST binds the
// submission, reports whether it validated and renders it again with inline
// errors.
package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-reform/pkg/form"
	"github.com/goliatone/go-reform/pkg/render"
	"github.com/goliatone/go-reform/pkg/renderers/html"
	"github.com/goliatone/go-reform/pkg/renderers/page"
)

// Banner lines written above bound forms.
const (
	MessageValid   = "The form is valid!"
	MessageInvalid = "The form is not valid!"
)

// RequestIDHeader carries the per-request id back to the client.
const RequestIDHeader = "X-Request-ID"

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRenderer replaces the default page renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(h *Handler) {
		if renderer != nil {
			h.renderer = renderer
		}
	}
}

// WithPrefix namespaces field names so several forms can share a page.
func WithPrefix(prefix string) Option {
	return func(h *Handler) {
		h.prefix = prefix
	}
}

// WithTagStyle sets the element wrapping each field. Defaults to "div".
func WithTagStyle(tag string) Option {
	return func(h *Handler) {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			h.tagStyle = trimmed
		}
	}
}

// WithTitle sets the page title passed to the renderer.
func WithTitle(title string) Option {
	return func(h *Handler) {
		h.title = title
	}
}

// WithOnValid registers a callback for submissions that validate. It receives
// the cleaned data.
func WithOnValid(fn func(r *http.Request, cleaned map[string]any)) Option {
	return func(h *Handler) {
		h.onValid = fn
	}
}

// Handler renders and validates one form definition.
type Handler struct {
	source   form.Source
	renderer render.Renderer
	logger   *slog.Logger
	prefix   string
	tagStyle string
	title    string
	onValid  func(r *http.Request, cleaned map[string]any)
}

var _ http.Handler = (*Handler)(nil)

// New builds a Handler serving src. Each request works on its own clone, so
// one Handler is safe for concurrent use.
func New(src form.Source, options ...Option) *Handler {
	h := &Handler{
		source:   src,
		logger:   slog.Default(),
		tagStyle: "div",
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	if h.renderer == nil {
		h.renderer = defaultRenderer()
	}
	return h
}

func defaultRenderer() render.Renderer {
	r, err := page.New()
	if err != nil {
		return html.New()
	}
	return r
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	w.Header().Set(RequestIDHeader, requestID)

	logger := h.logger.With(
		"request_id", requestID,
		"method", r.Method,
		"path", r.URL.Path,
	)

	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		logger.Warn("method not allowed")
		return
	}

	req, err := form.FromHTTP(r)
	if err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		logger.Warn("parse submission", "error", err)
		return
	}

	inst := form.CloneRequest(h.source, req, h.prefix)

	var (
		messages []string
		valid    bool
	)
	if inst.IsBound() {
		valid = inst.Validate()
		if valid {
			messages = append(messages, MessageValid)
			if h.onValid != nil {
				h.onValid(r, inst.CleanedData())
			}
		} else {
			messages = append(messages, MessageInvalid)
		}
	}

	body, err := h.renderer.Render(r.Context(), inst, render.RenderOptions{
		TagStyle: h.tagStyle,
		Title:    h.title,
		Messages: messages,
	})
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		logger.Error("render form", "renderer", h.renderer.Name(), "error", err)
		return
	}

	w.Header().Set("Content-Type", h.renderer.ContentType())
	if _, err := w.Write(body); err != nil {
		logger.Warn("write response", "error", err)
		return
	}

	logger.Info("form request",
		"bound", inst.IsBound(),
		"valid", valid,
		"errors", len(inst.Errors()),
		"duration", time.Since(start),
	)
}
