package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// UserStore is the persistence collaborator the workflows depend on. The
// in-tree Users repository implements it; tests substitute mocks. Lookups
// report a miss with a repository record-not-found error, which is what the
// workflows classify on.
type UserStore interface {
	// GetByEmail does an exact match on the email column.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByUsername does a case-insensitive exact match on username.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// UsernamesByPrefix returns usernames matching prefix case-insensitively.
	UsernamesByPrefix(ctx context.Context, prefix string) ([]string, error)
	// Create inserts the record and returns it with its assigned id.
	Create(ctx context.Context, record *User) (*User, error)
	// UpdatePassword rewrites the stored credential for the given id.
	UpdatePassword(ctx context.Context, id uuid.UUID, credential string) error
}

// Notifier is the outbound notification collaborator. The approval and
// rejection actions use it; delivery is someone else's problem.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// PasswordAuthenticator authenticates passwords
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] IDENTITY "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] IDENTITY "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] IDENTITY "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
