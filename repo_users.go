package identity

import (
	"context"
	"database/sql"
	"errors"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var UpdateUserPasswordSQL = `UPDATE "users" AS "usr"
SET
	"password" = ?
WHERE
	"usr"."id" = ?
RETURNING *;`

var SetUserApprovalSQL = `UPDATE "users" AS "usr"
SET
	"approved" = ?
WHERE
	"usr"."id" = ?
RETURNING *;`

// Users is the repository for user records. It implements UserStore plus the
// generic repository surface.
type Users interface {
	repository.Repository[*User]

	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*User, error)
	UsernamesByPrefix(ctx context.Context, prefix string) ([]string, error)
	UsernamesByPrefixTx(ctx context.Context, tx bun.IDB, prefix string) ([]string, error)

	Create(ctx context.Context, record *User, criteria ...repository.InsertCriteria) (*User, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error)

	UpdatePassword(ctx context.Context, id uuid.UUID, credential string) error
	UpdatePasswordTx(ctx context.Context, tx bun.IDB, id uuid.UUID, credential string) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	SetApprovalTx(ctx context.Context, tx bun.IDB, id uuid.UUID, approved bool) error
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ Users                        = (*users)(nil)
	_ repository.Repository[*User] = (*users)(nil)
)

func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return a.GetByEmailTx(ctx, a.db, email)
}

func (a *users) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"email": email,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *users) GetByUsername(ctx context.Context, username string) (*User, error) {
	return a.GetByUsernameTx(ctx, a.db, username)
}

func (a *users) GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("lower(?TableAlias.username) = lower(?)", username).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"username": username,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *users) UsernamesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	return a.UsernamesByPrefixTx(ctx, a.db, prefix)
}

func (a *users) UsernamesByPrefixTx(ctx context.Context, tx bun.IDB, prefix string) ([]string, error) {
	var names []string
	err := tx.NewSelect().
		Model((*User)(nil)).
		Column("username").
		Where("lower(?TableAlias.username) LIKE lower(?) || '%'", prefix).
		Scan(ctx, &names)

	if err != nil {
		return nil, err
	}

	return names, nil
}

func (a *users) Create(ctx context.Context, record *User, criteria ...repository.InsertCriteria) (*User, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *users) CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error) {
	prepareUserDefaults(record)
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

func (a *users) UpdatePassword(ctx context.Context, id uuid.UUID, credential string) error {
	return a.UpdatePasswordTx(ctx, a.db, id, credential)
}

// UpdatePasswordTx rewrites the stored credential and nothing else. The lazy
// legacy migration rides on this; the freshness window must survive it.
func (a *users) UpdatePasswordTx(ctx context.Context, tx bun.IDB, id uuid.UUID, credential string) error {
	res, err := a.Repository.RawTx(ctx, tx, UpdateUserPasswordSQL, credential, id.String())
	if err != nil {
		return err
	}

	if len(res) == 0 {
		return repository.NewRecordNotFound().
			WithMetadata(map[string]any{
				"id": id.String(),
			})
	}

	return nil
}

func (a *users) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	return a.SetApprovalTx(ctx, a.db, id, approved)
}

func (a *users) SetApprovalTx(ctx context.Context, tx bun.IDB, id uuid.UUID, approved bool) error {
	res, err := a.Repository.RawTx(ctx, tx, SetUserApprovalSQL, approved, id.String())
	if err != nil {
		return err
	}

	if len(res) == 0 {
		return repository.NewRecordNotFound().
			WithMetadata(map[string]any{
				"id": id.String(),
			})
	}

	return nil
}

func prepareUserDefaults(record *User) {
	if record == nil {
		return
	}

	if record.Role == "" {
		record.Role = RoleGuest
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}
