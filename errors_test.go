package identity_test

import (
	"errors"
	"testing"

	identity "github.com/castellan/go-identity"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
)

func TestStructuredErrorProperties(t *testing.T) {
	t.Run("ErrDuplicateEmail", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryConflict, identity.ErrDuplicateEmail.Category)
		assert.Equal(t, identity.TextCodeDuplicateEmail, identity.ErrDuplicateEmail.TextCode)
	})

	t.Run("ErrAccountNotFound", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryNotFound, identity.ErrAccountNotFound.Category)
		assert.Equal(t, identity.TextCodeAccountNotFound, identity.ErrAccountNotFound.TextCode)
	})

	t.Run("ErrPendingApproval", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryAuth, identity.ErrPendingApproval.Category)
		assert.Equal(t, identity.TextCodePendingApproval, identity.ErrPendingApproval.TextCode)
	})

	t.Run("ErrIncorrectPassword", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryAuth, identity.ErrIncorrectPassword.Category)
		assert.Equal(t, identity.TextCodeInvalidCreds, identity.ErrIncorrectPassword.TextCode)
		assert.Equal(t, "the credentials provided are invalid", identity.ErrIncorrectPassword.Message)
	})

	t.Run("ErrNoEmptyString", func(t *testing.T) {
		assert.Equal(t, goerrors.CategoryValidation, identity.ErrNoEmptyString.Category)
		assert.Equal(t, identity.TextCodeEmptyPassword, identity.ErrNoEmptyString.TextCode)
	})
}

func TestErrorClassifiers(t *testing.T) {
	t.Run("IsPendingApproval", func(t *testing.T) {
		assert.True(t, identity.IsPendingApproval(identity.ErrPendingApproval))
		assert.False(t, identity.IsPendingApproval(identity.ErrIncorrectPassword))
		assert.False(t, identity.IsPendingApproval(errors.New("unrelated")))
		assert.False(t, identity.IsPendingApproval(nil))
	})

	t.Run("IsDuplicateEmail", func(t *testing.T) {
		assert.True(t, identity.IsDuplicateEmail(identity.ErrDuplicateEmail))
		assert.False(t, identity.IsDuplicateEmail(identity.ErrAccountNotFound))
		assert.False(t, identity.IsDuplicateEmail(nil))
	})

	t.Run("Distinct kinds for forbidden vs unauthorized mapping", func(t *testing.T) {
		// transport relies on these never collapsing into one kind
		assert.NotEqual(t, identity.ErrPendingApproval.TextCode, identity.ErrIncorrectPassword.TextCode)
		assert.NotEqual(t, identity.ErrPendingApproval.TextCode, identity.ErrAccountNotFound.TextCode)
	})
}
