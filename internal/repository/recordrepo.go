package repository

import (
	"context"

	"github.com/bduniv/gradevault/internal/model"
)

// RecordRepository provides append-only persistence for sealed records.
type RecordRepository interface {
	// Insert stores a new sealed record and fills in the assigned ID.
	Insert(ctx context.Context, rec *model.Record) error
	// ListForOwner returns all records owned by the given user.
	ListForOwner(ctx context.Context, ownerID int64) ([]model.OwnedRecord, error)
	// ListAllWithOwner returns every record joined with its owner's name.
	ListAllWithOwner(ctx context.Context) ([]model.OwnedRecord, error)
}
