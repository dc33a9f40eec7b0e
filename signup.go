package identity

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
)

// SignupInput carries everything a caller supplies for a new account. The
// username arrives verbatim; derivation and collision resolution are the
// caller's concern (see DeriveUsername, EnsureUniqueUsername).
type SignupInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	// DeterministicID derives the record id from the email instead of
	// generating a random one.
	DeterministicID bool `json:"-"`
}

// Validate will run validation rules
func (r SignupInput) Validate() *goerrors.Error {
	return goerrors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(
				&r.Email,
				validation.Required,
				is.Email,
			),
			validation.Field(
				&r.Username,
				validation.Required,
			),
			validation.Field(
				&r.Password,
				validation.Required,
			),
		)
	}, "Invalid signup payload")
}

// SignupAck acknowledges an accepted signup. No user record is returned;
// approval happens asynchronously and the account cannot authenticate until
// then.
type SignupAck struct {
	Message string `json:"message"`
}

// Registrar handles new account signups.
type Registrar struct {
	store  UserStore
	logger Logger
}

// NewRegistrar will create a new Registrar backed by the given store.
func NewRegistrar(store UserStore) *Registrar {
	return &Registrar{
		store:  store,
		logger: defLogger{},
	}
}

func (r *Registrar) WithLogger(l Logger) *Registrar {
	r.logger = l
	return r
}

// Signup creates a pending account. The email must be new; the password is
// hashed before it touches the store; the record is inserted unapproved with
// a fresh credential window. Exactly one insert on the happy path, none on
// rejection.
func (r *Registrar) Signup(ctx context.Context, input SignupInput) (*SignupAck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.store.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !repository.IsRecordNotFound(err) {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check for existing account")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return nil, richErr
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	fresh, expire := PasswordFreshness(time.Now())

	user := &User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Username:       input.Username,
		Email:          input.Email,
		Password:       hash,
		Role:           input.Role,
		Active:         input.Active,
		Approved:       false,
		PasswordFresh:  &fresh,
		PasswordExpire: &expire,
	}

	if input.DeterministicID {
		if id, err := hashid.NewUUID(input.Email); err == nil {
			user.ID = id
		}
	}

	if _, err := r.store.Create(ctx, user); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not create user")
	}

	r.logger.Info("signup accepted", "email", input.Email, "username", input.Username)

	return &SignupAck{Message: "signup received, pending approval"}, nil
}
