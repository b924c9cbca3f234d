// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Role gates what a user may see. Roles are fixed at signup.
type Role string

const (
	// RoleSubject is a user whose own records are the protected data.
	RoleSubject Role = "subject"
	// RoleReviewer is a user authorized to view and create records for all subjects.
	RoleReviewer Role = "reviewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r == RoleSubject || r == RoleReviewer }

// User represents an account. The password is stored only as a salted
// one-way hash; plaintext never reaches this struct.
type User struct {
	ID        int64  // PK
	Name      string // display name
	Email     string // unique, stored lowercased
	PwdHash   []byte // argon2id blob, salt embedded
	Role      Role
	CreatedAt time.Time
}

// Record is one protected value owned by a subject-role user.
// The value is held only in sealed (AEAD) form; rows are append-only.
type Record struct {
	ID        int64
	OwnerID   int64  // FK -> users.id, role must be subject
	Category  string // e.g. course name
	ValueEnc  []byte // nonce-prefixed AEAD ciphertext
	CreatedAt time.Time
}

// OwnedRecord joins a record with its owner's display name, still sealed.
type OwnedRecord struct {
	Record
	OwnerName string
}

// RecordView is what an authorized caller actually receives: the record
// with its value opened. Never persisted, never logged.
type RecordView struct {
	OwnerName string
	Category  string
	Value     string
}

// Session binds a validated identity to one interaction. It holds a copy
// of the identity fields, not a live reference: later changes to the User
// row do not alter an active session's view.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	Name      string
	Role      Role
	Token     string // HS256-signed token for the boundary layer
	ExpiresAt time.Time
}
