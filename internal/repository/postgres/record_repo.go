package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/bduniv/gradevault/internal/model"
)

// RecordRepo implements RecordRepository using PostgreSQL.
type RecordRepo struct{ db *DB }

// NewRecordRepo constructs a record repository.
func NewRecordRepo(db *DB) *RecordRepo { return &RecordRepo{db: db} }

// Insert stores a new sealed record row and fills in the assigned ID.
func (r *RecordRepo) Insert(ctx context.Context, rec *model.Record) error {
	const q = `
INSERT INTO records (owner_id, category, value_enc)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	return r.db.Pool.QueryRow(ctx, q, rec.OwnerID, rec.Category, rec.ValueEnc).
		Scan(&rec.ID, &rec.CreatedAt)
}

// ListForOwner returns the records owned by one user, oldest first.
func (r *RecordRepo) ListForOwner(ctx context.Context, ownerID int64) ([]model.OwnedRecord, error) {
	const q = `
SELECT r.id, r.owner_id, r.category, r.value_enc, r.created_at, u.name
FROM records r
JOIN users u ON u.id = r.owner_id
WHERE r.owner_id = $1
ORDER BY r.id`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOwnedRecords(rows)
}

// ListAllWithOwner returns every record joined with its owner's name, oldest first.
func (r *RecordRepo) ListAllWithOwner(ctx context.Context) ([]model.OwnedRecord, error) {
	const q = `
SELECT r.id, r.owner_id, r.category, r.value_enc, r.created_at, u.name
FROM records r
JOIN users u ON u.id = r.owner_id
ORDER BY r.id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOwnedRecords(rows)
}

func scanOwnedRecords(rows pgx.Rows) ([]model.OwnedRecord, error) {
	out := []model.OwnedRecord{}
	for rows.Next() {
		var rec model.OwnedRecord
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Category, &rec.ValueEnc, &rec.CreatedAt, &rec.OwnerName); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
