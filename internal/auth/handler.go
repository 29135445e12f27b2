package auth

import (
	"errors"
	"net/http"

	"github.com/HerbHall/salesdesk/internal/server"
	"github.com/HerbHall/salesdesk/internal/version"
	"go.uber.org/zap"
)

// maxAuthBody caps credential and user-management request bodies.
const maxAuthBody = 4 << 10

// Handler serves the login, first-run setup and user management endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates an auth Handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the auth and user routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/v1/auth/setup", h.handleSetup)
	mux.HandleFunc("GET /api/v1/auth/setup/status", h.handleSetupStatus)

	mux.HandleFunc("GET /api/v1/users", h.handleListUsers)
	mux.HandleFunc("POST /api/v1/users", h.handleCreateUser)
	mux.HandleFunc("PUT /api/v1/users/{id}", h.handleUpdateUser)
	mux.HandleFunc("DELETE /api/v1/users/{id}", h.handleDeleteUser)
}

// Middleware returns the JWT authentication middleware.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return AuthMiddleware(h.service.Tokens())
}

// handleLogin exchanges credentials for an access token.
//
//	@Summary		Login
//	@Description	Authenticate with username and password. The returned token is the session that unlocks the stored theme.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login credentials"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	server.Problem
//	@Failure		401		{object}	server.Problem
//	@Router			/auth/login [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !server.DecodeJSON(w, r, maxAuthBody, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		server.BadRequest(w, "username and password are required", r.URL.Path)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUserDisabled):
		// Disabled accounts get the same answer as bad passwords.
		server.Unauthorized(w, ErrInvalidCredentials.Error(), r.URL.Path)
	default:
		h.logger.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		server.InternalError(w, "authentication failed", r.URL.Path)
	}
}

// handleSetup creates the first admin account.
//
//	@Summary		Initial setup
//	@Description	Create the first admin account. Only works while no accounts exist.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SetupRequest	true	"Admin account details"
//	@Success		201		{object}	User
//	@Failure		400		{object}	server.Problem
//	@Failure		409		{object}	server.Problem
//	@Router			/auth/setup [post]
func (h *Handler) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req SetupRequest
	if !server.DecodeJSON(w, r, maxAuthBody, &req) {
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		server.BadRequest(w, "username, email and password are required", r.URL.Path)
		return
	}

	user, err := h.service.Setup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// handleSetupStatus reports whether first-run setup is still open.
//
//	@Summary		Check setup status
//	@Description	Returns whether the first admin account still has to be created, plus the server version.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	SetupStatusResponse
//	@Failure		500	{object}	server.Problem
//	@Router			/auth/setup/status [get]
func (h *Handler) handleSetupStatus(w http.ResponseWriter, r *http.Request) {
	needed, err := h.service.NeedsSetup(r.Context())
	if err != nil {
		h.logger.Error("setup status check failed", zap.Error(err))
		server.InternalError(w, "failed to check setup status", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, SetupStatusResponse{
		SetupRequired: needed,
		Version:       version.Short(),
	})
}

// handleListUsers lists every account.
//
//	@Summary		List users
//	@Description	Admin only.
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		User
//	@Failure		401	{object}	server.Problem
//	@Failure		403	{object}	server.Problem
//	@Router			/users [get]
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if !RequireAdmin(w, r) {
		return
	}
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}
	if users == nil {
		users = []User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// handleCreateUser enrolls a new account. The role defaults to sales.
//
//	@Summary		Create user
//	@Description	Admin only. Sales accounts can sign in and see the stored theme but cannot change it.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		CreateUserRequest	true	"New account"
//	@Success		201		{object}	User
//	@Failure		400		{object}	server.Problem
//	@Failure		401		{object}	server.Problem
//	@Failure		403		{object}	server.Problem
//	@Failure		409		{object}	server.Problem
//	@Router			/users [post]
func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	if !RequireAdmin(w, r) {
		return
	}
	var req CreateUserRequest
	if !server.DecodeJSON(w, r, maxAuthBody, &req) {
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		server.BadRequest(w, "username, email and password are required", r.URL.Path)
		return
	}
	if req.Role == "" {
		req.Role = RoleSales
	}

	user, err := h.service.CreateUser(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// handleUpdateUser changes an account's email, role or disabled flag.
//
//	@Summary		Update user
//	@Description	Admin only. The last enabled admin cannot be demoted or disabled.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"User ID"
//	@Param			request	body		UpdateUserRequest	true	"New account state"
//	@Success		200		{object}	User
//	@Failure		400		{object}	server.Problem
//	@Failure		403		{object}	server.Problem
//	@Failure		404		{object}	server.Problem
//	@Failure		409		{object}	server.Problem
//	@Router			/users/{id} [put]
func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	if !RequireAdmin(w, r) {
		return
	}
	var req UpdateUserRequest
	if !server.DecodeJSON(w, r, maxAuthBody, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), r.PathValue("id"), req.Email, req.Role, req.Disabled)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// handleDeleteUser removes an account.
//
//	@Summary		Delete user
//	@Description	Admin only. The last enabled admin cannot be deleted.
//	@Tags			users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Failure		403	{object}	server.Problem
//	@Failure		404	{object}	server.Problem
//	@Failure		409	{object}	server.Problem
//	@Router			/users/{id} [delete]
func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if !RequireAdmin(w, r) {
		return
	}
	if err := h.service.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		h.writeUserError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeUserError maps service errors onto problem responses.
func (h *Handler) writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrWeakPassword), errors.Is(err, ErrInvalidRole):
		server.BadRequest(w, err.Error(), r.URL.Path)
	case errors.Is(err, ErrUserNotFound):
		server.NotFound(w, err.Error(), r.URL.Path)
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrSetupComplete), errors.Is(err, ErrLastAdmin):
		server.Conflict(w, err.Error(), r.URL.Path)
	default:
		h.logger.Error("user operation failed", zap.String("path", r.URL.Path), zap.Error(err))
		server.InternalError(w, "user operation failed", r.URL.Path)
	}
}
