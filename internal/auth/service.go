package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrSetupComplete      = errors.New("setup already completed")
	ErrUserNotFound       = errors.New("user not found")
	ErrLastAdmin          = errors.New("at least one enabled admin must remain")
	ErrInvalidRole        = errors.New("role must be admin or sales")
)

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // Access token TTL in seconds
}

// Service provides authentication business logic.
type Service struct {
	store  *UserStore
	tokens *TokenService
	logger *zap.Logger
}

// NewService creates an auth Service.
func NewService(store *UserStore, tokens *TokenService, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// Tokens returns the token service for middleware use.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Login authenticates a user and returns an access token.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if user.Disabled {
		return nil, ErrUserDisabled
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	_ = s.store.UpdateLastLogin(ctx, user.ID)
	s.logger.Info("user logged in", zap.String("username", username), zap.String("user_id", user.ID))
	return &TokenResponse{
		AccessToken: token,
		ExpiresIn:   int(s.tokens.AccessTokenTTL().Seconds()),
	}, nil
}

// Setup creates the initial admin account. Only works when no users exist;
// concurrent calls create at most one admin.
func (s *Service) Setup(ctx context.Context, username, email, password string) (*User, error) {
	needed, err := s.NeedsSetup(ctx)
	if err != nil {
		return nil, err
	}
	if !needed {
		return nil, ErrSetupComplete
	}

	user, err := newUser(username, email, password, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateFirstUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("initial admin account created", zap.String("username", username))
	return user, nil
}

// CreateUser adds an account with the given role. Admins use it to enroll
// the sales staff whose sessions resolve the stored theme.
func (s *Service) CreateUser(ctx context.Context, username, email, password string, role Role) (*User, error) {
	if !ValidRoles[role] {
		return nil, ErrInvalidRole
	}
	user, err := newUser(username, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.String("username", username), zap.String("role", string(role)))
	return user, nil
}

func newUser(username, email, password string, role Role) (*User, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password, 0)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// ListUsers returns every account.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.store.ListUsers(ctx)
}

// UpdateUser changes a user's email, role and disabled flag. An empty email
// keeps the current one.
func (s *Service) UpdateUser(ctx context.Context, id, email string, role Role, disabled bool) (*User, error) {
	if !ValidRoles[role] {
		return nil, ErrInvalidRole
	}
	user, err := s.store.GetUserByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if email != "" {
		user.Email = email
	}
	user.Role = role
	user.Disabled = disabled
	if err := s.store.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.logger.Info("user updated",
		zap.String("user_id", id),
		zap.String("role", string(role)),
		zap.Bool("disabled", disabled),
	)
	return user, nil
}

// DeleteUser removes an account.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	err := s.store.DeleteUser(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

// NeedsSetup reports whether no user accounts exist yet.
func (s *Service) NeedsSetup(ctx context.Context) (bool, error) {
	count, err := s.store.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count == 0, nil
}
