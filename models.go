package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserRole is the user's role
type UserRole = string

const (
	// RoleGuest is an guest role (ie. view)
	RoleGuest UserRole = "guest"
	// RoleMember us a member (i.e. view, edit)
	RoleMember UserRole = "member"
	// RoleAdmin is an admin role (i.e. view, edit, create)
	RoleAdmin UserRole = "admin"
	// RoleOwner is an admin role (i.e. view, edit, create, delete)
	RoleOwner UserRole = "owner"
)

// User is the user model. Password holds the stored credential: a bcrypt
// hash, or raw plaintext for rows that predate hashing. See
// ClassifyCredential.
type User struct {
	bun.BaseModel  `bun:"table:users,alias:usr"`
	ID             uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Role           UserRole   `bun:"user_role,notnull" json:"user_role,omitempty"`
	FirstName      string     `bun:"first_name,notnull" json:"first_name,omitempty"`
	LastName       string     `bun:"last_name,notnull" json:"last_name,omitempty"`
	Username       string     `bun:"username,notnull,unique" json:"username,omitempty"`
	Email          string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Password       string     `bun:"password" json:"password,omitempty"`
	Approved       bool       `bun:"approved" json:"approved"`
	Active         bool       `bun:"active" json:"active"`
	PasswordFresh  *time.Time `bun:"password_fresh,nullzero" json:"password_fresh,omitempty"`
	PasswordExpire *time.Time `bun:"password_expire,nullzero" json:"password_expire,omitempty"`
	CreatedAt      *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt      *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Sanitize returns a copy of the user that is safe to hand back to callers,
// with the stored credential stripped. Every record returned by Login goes
// through here.
func (u *User) Sanitize() *User {
	if u == nil {
		return nil
	}
	safe := *u
	safe.Password = ""
	return &safe
}
