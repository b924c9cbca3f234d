// Package service contains application services for authentication and
// role-gated record access.
package service

import (
	"context"
	"errors"
	"strings"

	pkgcrypto "github.com/bduniv/gradevault/internal/crypto"
	"github.com/bduniv/gradevault/internal/errs"
	"github.com/bduniv/gradevault/internal/model"
	"github.com/bduniv/gradevault/internal/repository"
)

// AuthService defines account and login operations exposed to the boundary layer.
type AuthService interface {
	// Register creates a new account with secure password hashing.
	Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
	// Authenticate verifies credentials and establishes a session.
	Authenticate(ctx context.Context, email, password string) (*model.Session, error)
	// Logout destroys the session.
	Logout(s *model.Session)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions *SessionManager
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, sessions *SessionManager) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, sessions: sessions}
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Passwords classified Weak by the scorer
// are rejected with errs.ErrWeakPassword; an already-registered normalized
// email fails with errs.ErrDuplicateEmail and creates nothing.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	email = NormalizeEmail(email)
	if name == "" || email == "" {
		return nil, errors.New("validation: empty name/email")
	}
	if !role.Valid() {
		return nil, errors.New("validation: unknown role")
	}
	if pkgcrypto.ClassifyPassword(password) == pkgcrypto.Weak {
		return nil, errs.ErrWeakPassword
	}
	hash, err := pkgcrypto.HashPassword([]byte(password))
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:    name,
		Email:   email,
		PwdHash: hash,
		Role:    role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate looks up by normalized email and verifies the password.
// Every failure mode comes back as the same errs.ErrUnauthorized, so
// callers cannot enumerate accounts.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.Session, error) {
	u, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.PwdHash) {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrUnauthorized
	}
	return s.sessions.Issue(u)
}

// Logout ends the session.
func (s *AuthServiceImpl) Logout(sess *model.Session) {
	s.sessions.End(sess)
}
