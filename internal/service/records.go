package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bduniv/gradevault/internal/errs"
	"github.com/bduniv/gradevault/internal/model"
	"github.com/bduniv/gradevault/internal/repository"
	"github.com/bduniv/gradevault/internal/security"
)

// RecordService defines role-gated access to sealed records.
type RecordService interface {
	// ListAccessible returns the records the session's role permits,
	// with values opened.
	ListAccessible(ctx context.Context, sess *model.Session) ([]model.RecordView, error)
	// Add seals and stores a new record for a subject. Reviewer only.
	Add(ctx context.Context, sess *model.Session, ownerEmail, category, value string) (*model.Record, error)
}

type RecordServiceImpl struct {
	users   repository.UserRepository
	records repository.RecordRepository
	sec     *security.Context
}

// NewRecordService constructs RecordService with required dependencies.
func NewRecordService(users repository.UserRepository, records repository.RecordRepository, sec *security.Context) *RecordServiceImpl {
	return &RecordServiceImpl{users: users, records: records, sec: sec}
}

// requireAuthenticated is the single gate every record operation passes.
func requireAuthenticated(sess *model.Session) error {
	if sess == nil || time.Now().After(sess.ExpiresAt) {
		return errs.ErrNotAuthenticated
	}
	return nil
}

// ListAccessible returns all records for a reviewer, or only the caller's
// own records for a subject. A record that fails to open is a hard error
// for the call, never silently skipped: corruption must surface.
func (s *RecordServiceImpl) ListAccessible(ctx context.Context, sess *model.Session) ([]model.RecordView, error) {
	if err := requireAuthenticated(sess); err != nil {
		return nil, err
	}

	var (
		recs []model.OwnedRecord
		err  error
	)
	if sess.Role == model.RoleReviewer {
		recs, err = s.records.ListAllWithOwner(ctx)
	} else {
		recs, err = s.records.ListForOwner(ctx, sess.UserID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]model.RecordView, 0, len(recs))
	for _, rec := range recs {
		pt, err := s.sec.Cipher().Open(rec.ValueEnc)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		views = append(views, model.RecordView{
			OwnerName: rec.OwnerName,
			Category:  rec.Category,
			Value:     string(pt),
		})
	}
	return views, nil
}

// Add creates a sealed record owned by the subject with the given email.
// Only reviewers may create records, and only for subject-role users.
func (s *RecordServiceImpl) Add(ctx context.Context, sess *model.Session, ownerEmail, category, value string) (*model.Record, error) {
	if err := requireAuthenticated(sess); err != nil {
		return nil, err
	}
	if sess.Role != model.RoleReviewer {
		return nil, errs.ErrForbidden
	}
	if category == "" || value == "" {
		return nil, errors.New("validation: empty category/value")
	}

	owner, err := s.users.GetByEmail(ctx, NormalizeEmail(ownerEmail))
	if err != nil {
		return nil, err
	}
	if owner.Role != model.RoleSubject {
		return nil, fmt.Errorf("validation: owner must have role %s", model.RoleSubject)
	}

	sealed, err := s.sec.Cipher().Seal([]byte(value))
	if err != nil {
		return nil, err
	}
	rec := &model.Record{
		OwnerID:  owner.ID,
		Category: category,
		ValueEnc: sealed,
	}
	if err := s.records.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
