package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"zodis/internal/models"
	"zodis/internal/repository"
	"zodis/internal/security"
	"zodis/internal/validation"
)

// AuthService handles registration and login
type AuthService struct {
	users  *repository.UserRepository
	tokens *security.TokenManager
	email  *EmailService
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UserRepository, tokens *security.TokenManager, email *EmailService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		email:  email,
	}
}

// Register creates a new user account. A taken username surfaces as
// repository.ErrUsernameTaken. When configured, a welcome email goes out
// best-effort.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validation.ValidateEmail(email); err != nil {
			return nil, err
		}
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(username, email, passwordHash)
	if err != nil {
		return nil, err
	}

	if user.Email != "" && s.email.IsEnabled() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.email.SendWelcomeEmail(ctx, user.Email, user.Username); err != nil {
				log.Warn().Err(err).Str("username", user.Username).Msg("failed to send welcome email")
			}
		}()
	}

	return user, nil
}

// Login authenticates a user and issues a token. The same error covers an
// unknown username and a wrong password.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	user, err := s.users.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !security.CheckPassword(user.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to issue token: %w", err)
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to verify issued token: %w", err)
	}

	return token, claims.ExpiresAt.Time, nil
}

// Verify parses a bearer token and returns its claims
func (s *AuthService) Verify(token string) (*security.Claims, error) {
	return s.tokens.Parse(token)
}
