// Package http provides HTTP handlers for user authentication and
// carbon-certificate management.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/carbontrade/carboncert/internal/apperrors"
	"github.com/carbontrade/carboncert/internal/models"
	"github.com/carbontrade/carboncert/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register validates and stores a new user, returning it without
	// the password hash.
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	// Login authenticates the credentials and issues a bearer token.
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse flattens the user fields with the issued token, mirroring
// the login contract: {...user, accessToken, expiresIn}.
type loginResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Register handles POST /authentication/register.
// It expects a JSON body with email, name, and password, and responds with
// the created user (password omitted) on success.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("invalid request body"))
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /authentication/log-in.
// It validates the credentials and responds with the user fields plus the
// issued access token and its lifetime.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("invalid request body"))
		return
	}

	result, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		ID:          result.User.ID,
		Email:       result.User.Email,
		Name:        result.User.Name,
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}
