package identity

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// Accounts answers read-only account questions by email.
type Accounts struct {
	store UserStore
}

// NewAccounts will create a new Accounts query facade.
func NewAccounts(store UserStore) *Accounts {
	return &Accounts{store: store}
}

// Role returns the role of the account registered under email.
func (a *Accounts) Role(ctx context.Context, email string) (UserRole, error) {
	user, err := a.lookup(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// IsActive returns the active flag of the account registered under email.
func (a *Accounts) IsActive(ctx context.Context, email string) (bool, error) {
	user, err := a.lookup(ctx, email)
	if err != nil {
		return false, err
	}
	return user.Active, nil
}

func (a *Accounts) lookup(ctx context.Context, email string) (*User, error) {
	user, err := a.store.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve account")
	}

	if user == nil {
		return nil, ErrAccountNotFound
	}

	return user, nil
}
