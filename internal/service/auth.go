// Package service provides business-logic services for authentication and
// carbon-certificate management, delegating persistence to repository
// interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"

	"github.com/carbontrade/carboncert/internal/apperrors"
	"github.com/carbontrade/carboncert/internal/models"
)

// minPasswordLength is the minimum accepted password length for registration.
const minPasswordLength = 7

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// CreateUser inserts a new user and returns the stored record.
	// A duplicate email must surface as apperrors.ErrEmailTaken.
	CreateUser(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	// GetUserByEmail fetches a user by email, returning a wrapped
	// sql.ErrNoRows when absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenProvider issues bearer tokens for authenticated users.
type TokenProvider interface {
	// Issue creates a signed token for the given user id.
	Issue(userID int64) (string, error)
	// ExpiresIn returns the configured token lifetime in seconds.
	ExpiresIn() int64
}

// AuthService implements registration and login.
type AuthService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenProvider
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenProvider) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	// User is the authenticated user with the password hash stripped.
	User *models.User
	// AccessToken is the signed bearer token for subsequent requests.
	AccessToken string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64
}

// validateRegistration checks the registration constraints and returns a
// field-level ValidationError listing every failed one.
func validateRegistration(email, name, password string) error {
	var messages []string
	if _, err := mail.ParseAddress(email); err != nil {
		messages = append(messages, "email must be an email")
	}
	if name == "" {
		messages = append(messages, "name should not be empty")
	}
	if len(password) < minPasswordLength {
		messages = append(messages, "password must be longer than or equal to 7 characters")
	}
	if len(messages) > 0 {
		return apperrors.NewValidation(messages...)
	}
	return nil
}

// Register validates the input, hashes the password, and stores a new user.
// The returned user never carries the password hash. A duplicate email
// yields apperrors.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if err := validateRegistration(email, name, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, email, name, hash)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ValidateCredentials looks up the user by email and verifies the password.
// Unknown email and wrong password both yield apperrors.ErrInvalidCredentials
// so the caller cannot tell which part was wrong.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("validate credentials: %w", err)
	}
	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates the credentials and issues a bearer token. The user
// in the result has the password hash stripped. Login performs no writes.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return &LoginResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   s.tokens.ExpiresIn(),
	}, nil
}
