package identity

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// Authenticator verifies credentials against stored accounts.
type Authenticator struct {
	store  UserStore
	logger Logger
}

// NewAuthenticator will create a new Authenticator backed by the given store.
func NewAuthenticator(store UserStore) *Authenticator {
	return &Authenticator{
		store:  store,
		logger: defLogger{},
	}
}

func (a *Authenticator) WithLogger(l Logger) *Authenticator {
	a.logger = l
	return a
}

// Login resolves the username case-insensitively, enforces the approval
// gate, and verifies the password against the stored credential. A valid
// legacy plaintext credential gets rewritten to a hash in the background;
// that write is never awaited and its failure only logged. The returned
// record has the credential stripped.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*User, error) {
	user, err := a.store.GetByUsername(ctx, username)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve account during login")
	}

	if user == nil {
		return nil, ErrAccountNotFound
	}

	// The gate comes before the password check: an unapproved account is
	// pending regardless of credential validity.
	if !user.Approved {
		return nil, ErrPendingApproval
	}

	valid, legacy := VerifyPassword(password, user.Password)
	if !valid {
		return nil, ErrIncorrectPassword
	}

	if legacy {
		a.migrateLegacyCredential(user.ID.String(), password)
	}

	return user.Sanitize(), nil
}

// migrateLegacyCredential rehashes a plaintext credential in a detached
// goroutine. Login already answered by the time this runs; a failed rewrite
// leaves the row on plaintext until the next successful login.
func (a *Authenticator) migrateLegacyCredential(id, password string) {
	store, logger := a.store, a.logger

	go func() {
		uid, err := parseUserID(id)
		if err != nil {
			logger.Error("legacy credential migration: bad id", "id", id, "error", err)
			return
		}

		hash, err := HashPassword(password)
		if err != nil {
			logger.Error("legacy credential migration: hash failed", "id", id, "error", err)
			return
		}

		if err := store.UpdatePassword(context.Background(), uid, hash); err != nil {
			logger.Error("legacy credential migration: update failed", "id", id, "error", err)
		}
	}()
}
