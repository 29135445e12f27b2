// Package settings stores application settings and serves the admin theme
// record over HTTP.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HerbHall/salesdesk/internal/auth"
	"github.com/HerbHall/salesdesk/internal/event"
	"github.com/HerbHall/salesdesk/internal/server"
	"github.com/HerbHall/salesdesk/internal/theme"
	"go.uber.org/zap"
)

// TopicThemeUpdated fires after the stored theme record changes.
const TopicThemeUpdated = "settings.theme.updated"

// maxThemeBody caps PUT /settings/theme bodies. A full override is well
// under 1 KiB.
const maxThemeBody = 4 << 10

// ThemeStore is the persistence the handler needs.
type ThemeStore interface {
	GetAll(ctx context.Context) ([]Setting, error)
	ThemeOverride(ctx context.Context) (theme.Override, error)
	SaveThemeOverride(ctx context.Context, ov theme.Override) error
	Delete(ctx context.Context, key string) error
}

// Handler provides HTTP handlers for settings endpoints.
type Handler struct {
	store  ThemeStore
	bus    event.Publisher
	logger *zap.Logger
}

// NewHandler creates a settings Handler. bus may be nil.
func NewHandler(store ThemeStore, bus event.Publisher, logger *zap.Logger) *Handler {
	return &Handler{store: store, bus: bus, logger: logger}
}

// RegisterRoutes registers settings-related routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/settings", h.handleListSettings)
	mux.HandleFunc("GET /api/v1/settings/theme", h.handleGetTheme)
	mux.HandleFunc("PUT /api/v1/settings/theme", h.handlePutTheme)
	mux.HandleFunc("DELETE /api/v1/settings/theme", h.handleDeleteTheme)
}

// handleListSettings returns every stored setting with its raw value.
//
//	@Summary		List settings
//	@Description	Admin only. Values are returned as stored, so the theme record appears as its JSON text.
//	@Tags			settings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		Setting
//	@Failure		401	{object}	server.Problem
//	@Failure		403	{object}	server.Problem
//	@Failure		500	{object}	server.Problem
//	@Router			/settings [get]
func (h *Handler) handleListSettings(w http.ResponseWriter, r *http.Request) {
	if !auth.RequireAdmin(w, r) {
		return
	}
	all, err := h.store.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list settings", zap.Error(err))
		server.InternalError(w, "failed to list settings", r.URL.Path)
		return
	}
	if all == nil {
		all = []Setting{}
	}
	writeJSON(w, http.StatusOK, all)
}

// handleGetTheme returns the stored theme record.
//
//	@Summary		Get theme record
//	@Description	Get the stored admin theme override. Returns an empty object when none is stored.
//	@Tags			settings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	theme.Override	"Stored override"
//	@Failure		500	{object}	server.Problem	"Internal server error"
//	@Router			/settings/theme [get]
func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	ov, err := h.store.ThemeOverride(r.Context())
	if err != nil {
		if errors.Is(err, theme.ErrRecordNotFound) {
			writeJSON(w, http.StatusOK, theme.Override{})
			return
		}
		h.logger.Error("failed to read theme record", zap.Error(err))
		server.InternalError(w, "failed to read theme record", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

// handlePutTheme replaces the stored theme record.
//
//	@Summary		Replace theme record
//	@Description	Store a new admin theme override. Colors must be #rrggbb; the radius must be non-negative.
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		theme.Override	true	"Theme override"
//	@Success		200		{object}	theme.Override	"Stored override"
//	@Failure		400		{object}	server.Problem	"Invalid override"
//	@Failure		403		{object}	server.Problem	"Admin role required"
//	@Failure		413		{object}	server.Problem	"Body too large"
//	@Failure		500		{object}	server.Problem	"Internal server error"
//	@Router			/settings/theme [put]
func (h *Handler) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	if !auth.RequireAdmin(w, r) {
		return
	}

	var ov theme.Override
	if !server.DecodeJSON(w, r, maxThemeBody, &ov) {
		return
	}
	if err := ov.Validate(); err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	if err := h.store.SaveThemeOverride(r.Context(), ov); err != nil {
		h.logger.Error("failed to save theme record", zap.Error(err))
		server.InternalError(w, "failed to save theme record", r.URL.Path)
		return
	}

	h.logger.Info("theme record updated", zap.String("by", auth.UserFromContext(r.Context()).Username))
	h.publish(r.Context())
	writeJSON(w, http.StatusOK, ov)
}

// handleDeleteTheme removes the stored theme record so builds fall back to defaults.
//
//	@Summary		Reset theme record
//	@Description	Delete the stored admin theme override.
//	@Tags			settings
//	@Security		BearerAuth
//	@Success		204	"Theme record removed"
//	@Failure		403	{object}	server.Problem	"Admin role required"
//	@Failure		404	{object}	server.Problem	"No theme record stored"
//	@Failure		500	{object}	server.Problem	"Internal server error"
//	@Router			/settings/theme [delete]
func (h *Handler) handleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	if !auth.RequireAdmin(w, r) {
		return
	}

	if err := h.store.Delete(r.Context(), ThemeKey); err != nil {
		if errors.Is(err, ErrNotFound) {
			server.NotFound(w, "no theme record stored", r.URL.Path)
			return
		}
		h.logger.Error("failed to delete theme record", zap.Error(err))
		server.InternalError(w, "failed to delete theme record", r.URL.Path)
		return
	}

	h.logger.Info("theme record reset", zap.String("by", auth.UserFromContext(r.Context()).Username))
	h.publish(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) publish(ctx context.Context) {
	if h.bus == nil {
		return
	}
	err := h.bus.Publish(ctx, event.Event{Topic: TopicThemeUpdated, Source: "settings"})
	if err != nil {
		h.logger.Warn("failed to publish theme update", zap.Error(err))
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
