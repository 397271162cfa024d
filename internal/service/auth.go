package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lmsantos89/boat-manager-app/internal/auth"
	"github.com/Lmsantos89/boat-manager-app/internal/domain"
	"github.com/Lmsantos89/boat-manager-app/internal/repository"
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// AuthService handles registration, credential verification and the mapping
// between a verified username and the durable user identity used for
// ownership scoping.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates an AuthService over the given user repository and
// token service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register hashes the password and persists a new user. Returns
// ErrUsernameTaken if the username already exists; the existing credential
// record is left untouched. No password strength policy is enforced.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{Username: username, Password: string(hash)}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	// Log successful registration
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")
	return nil
}

// Authenticate verifies the supplied credentials and issues a token on
// success. An unknown username and a wrong password both return
// ErrInvalidCredentials; the caller is never told which check failed.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ResolveUserID maps a username to the durable user ID used to scope boat
// ownership. Returns ErrNotFound if no such user exists.
func (s *AuthService) ResolveUserID(ctx context.Context, username string) (uint, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("find user: %w", err)
	}
	return user.ID, nil
}

// ResolveUser fetches the full user record for an ID. Returns ErrNotFound
// if the ID does not exist.
func (s *AuthService) ResolveUser(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
