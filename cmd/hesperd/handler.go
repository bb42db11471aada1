package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ruFelix/hesper/pkg/binder"
	"github.com/ruFelix/hesper/pkg/dao"
	"github.com/ruFelix/hesper/pkg/form"
	"github.com/ruFelix/hesper/pkg/logger"
	"github.com/ruFelix/hesper/pkg/validator"
)

// Handler binds request payloads to declared forms.
type Handler struct {
	forms map[string]form.Declaration
	reg   *dao.Registry
	log   *slog.Logger
}

func NewHandler(forms map[string]form.Declaration, reg *dao.Registry, log *slog.Logger) *Handler {
	return &Handler{forms: forms, reg: reg, log: logger.OrDiscard(log)}
}

// Routes mounts the form endpoints and the health endpoint.
func (h *Handler) Routes(health http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Method(http.MethodGet, "/healthz", health)
	r.Get("/forms", h.list)
	r.Post("/forms/{form}", h.submit)
	return r
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(h.forms))
	for name := range h.forms {
		names = append(names, name)
	}
	slices.Sort(names)
	writeJSON(w, http.StatusOK, map[string]any{"forms": names})
}

// submit imports the request into a fresh instance of the named form.
// It answers 200 with the exported values, 422 with per-field messages,
// 415 or 400 for undecodable bodies and 500 for lookup faults.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "form")

	decl, ok := h.forms[name]
	if !ok {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	scope, err := binder.Scope(r)
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := decl.Build(h.reg, form.WithLogger(h.log))
	if err != nil {
		h.log.ErrorContext(ctx, "failed to build form", logger.Form(name), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "form unavailable")
		return
	}

	if err := f.Import(ctx, scope); err != nil {
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verrs.Map()})
			return
		}
		h.log.ErrorContext(ctx, "form import failed", logger.Form(name), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"form": name, "data": f.Export()})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
