package service

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bduniv/gradevault/internal/errs"
	"github.com/bduniv/gradevault/internal/model"
)

// sessionClaims carry the identity copy inside the signed token.
type sessionClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues, resumes, and ends authenticated sessions. Each
// session holds a copy of the identity fields taken at login time and an
// HS256-signed token for the boundary layer. Ending a session removes it
// from the live registry, so its token cannot be resumed afterwards.
type SessionManager struct {
	signKey []byte
	ttl     time.Duration

	mu   sync.Mutex
	live map[uuid.UUID]*model.Session
}

// NewSessionManager constructs a manager with the given signing secret and TTL.
func NewSessionManager(signKey []byte, ttl time.Duration) *SessionManager {
	return &SessionManager{
		signKey: signKey,
		ttl:     ttl,
		live:    make(map[uuid.UUID]*model.Session),
	}
}

// Issue creates a live session for an authenticated user.
func (m *SessionManager) Issue(u *model.User) (*model.Session, error) {
	sid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	exp := now.Add(m.ttl)
	claims := sessionClaims{
		Name: u.Name,
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid.String(),
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signKey)
	if err != nil {
		return nil, err
	}

	s := &model.Session{
		ID:        sid,
		UserID:    u.ID,
		Name:      u.Name,
		Role:      u.Role,
		Token:     signed,
		ExpiresAt: exp,
	}
	m.mu.Lock()
	m.live[sid] = s
	m.mu.Unlock()
	return s, nil
}

// Resume verifies a token and returns the matching live session. Invalid,
// expired, or already-ended tokens fail with errs.ErrNotAuthenticated.
func (m *SessionManager) Resume(token string) (*model.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errs.ErrNotAuthenticated
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return nil, errs.ErrNotAuthenticated
	}

	sid, err := uuid.FromString(claims.ID)
	if err != nil {
		return nil, errs.ErrNotAuthenticated
	}
	m.mu.Lock()
	s, ok := m.live[sid]
	m.mu.Unlock()
	if !ok {
		return nil, errs.ErrNotAuthenticated
	}
	return s, nil
}

// End destroys a session. Safe to call with nil or an already-ended session.
func (m *SessionManager) End(s *model.Session) {
	if s == nil {
		return
	}
	m.mu.Lock()
	delete(m.live, s.ID)
	m.mu.Unlock()
}
