package identity

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	repository.Validator
	repository.TransactionManager
	Users() Users
}

type mngr struct {
	db    *bun.DB
	users Users
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:    db,
		users: NewUsersRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users {
	return m.users
}

// userStoreAdapter narrows the Users repository down to the UserStore
// collaborator the workflows depend on.
type userStoreAdapter struct {
	users Users
}

// NewUserStore adapts a Users repository into the UserStore interface.
func NewUserStore(users Users) UserStore {
	return userStoreAdapter{users: users}
}

func (a userStoreAdapter) GetByEmail(ctx context.Context, email string) (*User, error) {
	return a.users.GetByEmail(ctx, email)
}

func (a userStoreAdapter) GetByUsername(ctx context.Context, username string) (*User, error) {
	return a.users.GetByUsername(ctx, username)
}

func (a userStoreAdapter) UsernamesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	return a.users.UsernamesByPrefix(ctx, prefix)
}

func (a userStoreAdapter) Create(ctx context.Context, record *User) (*User, error) {
	return a.users.Create(ctx, record)
}

func (a userStoreAdapter) UpdatePassword(ctx context.Context, id uuid.UUID, credential string) error {
	return a.users.UpdatePassword(ctx, id, credential)
}
