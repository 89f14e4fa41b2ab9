package auth

import (
	"context"
	"errors"
	"time"

	"collectapi/internal/platform/crypto"
	"collectapi/internal/user"
)

// ErrInvalidCredentials is returned for a wrong email or password. The
// two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 7 * 24 * time.Hour

type Service struct {
	users     user.Repository
	jwtSecret string
}

func NewService(users user.Repository, jwtSecret string) *Service {
	return &Service{users: users, jwtSecret: jwtSecret}
}

// Register creates an account and returns it with a fresh session token.
// An empty country defaults to South Africa.
func (s *Service) Register(ctx context.Context, u user.User, password string) (user.User, string, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return user.User{}, "", err
	}

	u.PasswordHash = hash
	if u.Country == "" {
		u.Country = "South Africa"
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return user.User{}, "", err
	}

	token, err := crypto.GenerateToken(s.jwtSecret, u.ID, u.Email, TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

// Login verifies credentials and returns the account with a session token.
func (s *Service) Login(ctx context.Context, email, password string) (user.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}

	if !crypto.VerifyPassword(u.PasswordHash, password) {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(s.jwtSecret, u.ID, u.Email, TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

// Me loads the account behind an authenticated request.
func (s *Service) Me(ctx context.Context, userID int) (user.User, error) {
	return s.users.GetByID(ctx, userID)
}
