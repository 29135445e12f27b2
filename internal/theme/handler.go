package theme

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler serves resolved themes over HTTP.
type Handler struct {
	builder *Builder
	holder  *Holder
	logger  *zap.Logger
}

// NewHandler creates a theme Handler. holder may be nil, in which case the
// current-snapshot route is not registered.
func NewHandler(builder *Builder, holder *Holder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{builder: builder, holder: holder, logger: logger}
}

// RegisterRoutes registers theme routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/theme", h.handleBuild)
	mux.HandleFunc("GET /api/v1/theme/default", h.handleDefault)
	if h.holder != nil {
		mux.HandleFunc("GET /api/v1/theme/current", h.handleCurrent)
	}
}

// handleBuild builds the theme for the caller's session.
//
//	@Summary		Resolve theme
//	@Description	Build the theme for the caller. Without a session, or when no override is stored, the default theme is returned.
//	@Tags			theme
//	@Produce		json
//	@Success		200	{object}	Theme
//	@Router			/theme [get]
func (h *Handler) handleBuild(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.builder.Build(r.Context()))
}

// handleDefault returns the default theme.
//
//	@Summary		Default theme
//	@Description	The theme built from the default palette only.
//	@Tags			theme
//	@Produce		json
//	@Success		200	{object}	Theme
//	@Router			/theme/default [get]
func (h *Handler) handleDefault(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, BuildDefault())
}

// handleCurrent returns the application's active snapshot.
//
//	@Summary		Active theme
//	@Description	The theme currently held by the server, with its state.
//	@Tags			theme
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Snapshot
//	@Router			/theme/current [get]
func (h *Handler) handleCurrent(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.holder.Current())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
