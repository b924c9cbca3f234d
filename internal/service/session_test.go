package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bduniv/gradevault/internal/errs"
	"github.com/bduniv/gradevault/internal/model"
)

func TestSessionManager_IssueAndResume(t *testing.T) {
	t.Parallel()

	m := NewSessionManager([]byte("secret"), time.Minute)
	u := &model.User{ID: 7, Name: "Abel Student", Role: model.RoleSubject}

	s, err := m.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if s.UserID != 7 || s.Name != "Abel Student" || s.Role != model.RoleSubject {
		t.Fatalf("identity copy wrong: %+v", s)
	}
	if s.Token == "" || !s.ExpiresAt.After(time.Now()) {
		t.Fatalf("bad token/expiry: %+v", s)
	}

	got, err := m.Resume(s.Token)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if got.ID != s.ID || got.UserID != s.UserID {
		t.Fatalf("resumed a different session: %+v", got)
	}
}

func TestSessionManager_ResumeRejectsBadTokens(t *testing.T) {
	t.Parallel()

	m := NewSessionManager([]byte("secret"), time.Minute)
	u := &model.User{ID: 1, Name: "x", Role: model.RoleReviewer}
	s, err := m.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// tampered token
	bad := s.Token[:len(s.Token)-2] + "xx"
	if _, err := m.Resume(bad); !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Fatalf("tampered token: want ErrNotAuthenticated, got %v", err)
	}

	// token signed by another manager's key
	other := NewSessionManager([]byte("other"), time.Minute)
	foreign, err := other.Issue(u)
	if err != nil {
		t.Fatalf("Issue(other): %v", err)
	}
	if _, err := m.Resume(foreign.Token); !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Fatalf("foreign token: want ErrNotAuthenticated, got %v", err)
	}

	if _, err := m.Resume("garbage"); !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Fatalf("garbage token: want ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionManager_EndDestroysSession(t *testing.T) {
	t.Parallel()

	m := NewSessionManager([]byte("secret"), time.Minute)
	s, err := m.Issue(&model.User{ID: 2, Name: "y", Role: model.RoleSubject})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	m.End(s)
	if _, err := m.Resume(s.Token); !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Fatalf("resume after End: want ErrNotAuthenticated, got %v", err)
	}

	// idempotent, nil-safe
	m.End(s)
	m.End(nil)
}
