package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-publishing-platform/internal/domain"
	"blog-publishing-platform/internal/logger"
	"blog-publishing-platform/internal/metrics"
	"blog-publishing-platform/internal/repository"
	"blog-publishing-platform/internal/validator"
)

// AuthService handles signup, login, and session resolution. The role is
// fixed at signup and never changes afterwards.
type AuthService struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	validator *validator.Validator

	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, v *validator.Validator, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		validator:  v,
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new user and opens a session for them (auto-login).
// Returns the user and the session token.
func (s *AuthService) Signup(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
	if err := s.validator.ValidateSignup(name, email, password, role); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.Role(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", err
		}
		logger.ErrorContext(ctx, "Failed to insert user",
			slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("signup: %w", err)
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load user for login",
			slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if user == nil {
		metrics.ObserveLogin("failure")
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.ObserveLogin("failure")
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	metrics.ObserveLogin("success")
	return user, token, nil
}

// Logout closes the session for the given token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		logger.ErrorContext(ctx, "Failed to delete session",
			slog.String("error", err.Error()))
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// UserFromToken resolves a session token to its user.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.sessions.GetUserByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if user == nil {
		return nil, domain.ErrSessionNotFound
	}
	return user, nil
}

func (s *AuthService) openSession(ctx context.Context, userID string) (string, error) {
	token := uuid.New().String()
	if err := s.sessions.Create(ctx, token, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to create session",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}
