package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"accorcia/internal/auth"
	"accorcia/internal/model"
	"accorcia/internal/repository"
	"accorcia/pkg/util"

	"github.com/rs/zerolog/log"
)

// AuthService handles registration, login and password changes
type AuthService struct {
	users      UserRepository
	hasher     PasswordHasher
	tokens     TokenIssuer
	inviteCode string
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, inviteCode string) *AuthService {
	return &AuthService{
		users:      users,
		hasher:     hasher,
		tokens:     tokens,
		inviteCode: inviteCode,
	}
}

// Register creates an account when the invite code matches the deployment secret
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) error {
	if subtle.ConstantTimeCompare([]byte(req.InviteCode), []byte(s.inviteCode)) != 1 {
		return ErrInvalidInvite
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return ErrDuplicateUsername
	}

	exists, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return ErrDuplicateEmail
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Lost a race with a concurrent registration
			return s.duplicateCause(ctx, req.Username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("User registered")
	return nil
}

func (s *AuthService) duplicateCause(ctx context.Context, username string) error {
	if exists, err := s.users.ExistsByUsername(ctx, username); err == nil && exists {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

func (s *AuthService) hash(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, util.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Login verifies the credentials and issues a bearer token
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !s.hasher.Matches(req.Password, user.PasswordHash) {
		log.Debug().Str("username", req.Username).Msg("Password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &model.LoginResponse{
		Token:    token,
		Type:     auth.TokenType,
		Username: user.Username,
	}, nil
}

// ChangePassword replaces the password hash after checking the old password
func (s *AuthService) ChangePassword(ctx context.Context, user *model.User, req *model.ChangePasswordRequest) error {
	if !s.hasher.Matches(req.OldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := s.hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	user.PasswordHash = hash
	log.Info().Str("username", user.Username).Msg("Password changed")
	return nil
}

// CurrentUser loads the account behind an authenticated token subject
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
