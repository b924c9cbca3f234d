// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/bduniv/gradevault/internal/model"
)

// UserRepository provides persistence for accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the assigned ID.
	// A taken email is reported as errs.ErrDuplicateEmail.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByEmail loads a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
