package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"task-manager.com/task-manager/internal/auth"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type UserStore interface {
	Create(ctx context.Context, email, passwordHash, fullName string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type AuthService struct {
	users  UserStore
	hasher *auth.PasswordHasher
	tokens *auth.TokenService

	// fallbackHash is compared against when the email is unknown.
	fallbackHash string
}

func NewAuthService(users UserStore, hasher *auth.PasswordHasher, tokens *auth.TokenService) (*AuthService, error) {
	fallback, err := hasher.Hash(fmt.Sprintf("fallback-%d", time.Now().UnixNano()))
	if err != nil {
		return nil, fmt.Errorf("preparing fallback password hash: %w", err)
	}

	return &AuthService{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		fallbackHash: fallback,
	}, nil
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, email, hash, fullName)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login checks the credentials and returns the user with a freshly issued token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", err
		}
		// Keep unknown emails as slow as wrong passwords.
		_, _ = s.hasher.Compare(s.fallbackHash, password)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Payload{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate verifies the token and resolves its user again, so deleted
// accounts lose access before their tokens expire.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	payload, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperrors.ErrUnauthorized
		}
		return err
	}

	slog.InfoContext(ctx, "user deleted", "user_id", userID)
	return nil
}
