// Package service implements the business logic of the trails service:
// authentication against the external identity provider, session handling,
// and the relational-consistency rules for trails and features.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/authprovider"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/repository"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingToken       = errors.New("missing session ID")
	ErrNoActiveSession    = errors.New("no active session found")
)

// AuthService establishes caller identity and owns the session lifecycle.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(token string) (string, error)
	ResolveCaller(token string) (*session.Session, bool)
	AuthStatus(email string) (*session.Session, bool)
}

type authService struct {
	userRepo repository.UserRepository
	verifier authprovider.Verifier
	sessions *session.Store
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, verifier authprovider.Verifier, sessions *session.Store) AuthService {
	return &authService{
		userRepo: userRepo,
		verifier: verifier,
		sessions: sessions,
	}
}

// Login verifies the credentials with the identity provider, then resolves
// the local user record by email. The provider accepting the credentials is
// not enough: without a local user row login fails with ErrUserNotFound.
// A successful login replaces any prior session for the same email.
func (s *authService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	ok, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("credential verification failed: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	sess := session.Session{
		UserID:    user.UserID,
		Email:     user.Email,
		Role:      user.Role,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	s.sessions.Put(sess)

	return &sess, nil
}

// Logout removes the session holding the token and returns the email of
// the account that was logged out.
func (s *authService) Logout(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	sess, ok := s.sessions.DeleteByToken(token)
	if !ok {
		return "", ErrNoActiveSession
	}
	return sess.Email, nil
}

// ResolveCaller is a pure lookup of the session holding the token.
func (s *authService) ResolveCaller(token string) (*session.Session, bool) {
	if token == "" {
		return nil, false
	}
	sess, ok := s.sessions.GetByToken(token)
	if !ok {
		return nil, false
	}
	return &sess, true
}

// AuthStatus looks up the active session for an email, if any.
func (s *authService) AuthStatus(email string) (*session.Session, bool) {
	sess, ok := s.sessions.GetByEmail(email)
	if !ok {
		return nil, false
	}
	return &sess, true
}
