package auth

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"securepassword123"`
}

// SetupRequest is the request body for POST /auth/setup.
type SetupRequest struct {
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"securepassword123"`
}

// SetupStatusResponse is the response body for GET /auth/setup/status.
type SetupStatusResponse struct {
	SetupRequired bool   `json:"setup_required" example:"true"`
	Version       string `json:"version" example:"0.1.0"`
}

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Username string `json:"username" example:"jdoe"`
	Email    string `json:"email" example:"jdoe@example.com"`
	Password string `json:"password" example:"securepassword123"`
	Role     Role   `json:"role,omitempty" example:"sales"`
}

// UpdateUserRequest is the request body for PUT /users/{id}. Role is
// required; an empty email keeps the current one.
type UpdateUserRequest struct {
	Email    string `json:"email,omitempty" example:"jdoe@example.com"`
	Role     Role   `json:"role" example:"admin"`
	Disabled bool   `json:"disabled" example:"false"`
}
