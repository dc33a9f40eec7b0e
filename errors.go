package identity

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	// TextCodeDuplicateEmail marks signup attempts for an email we know
	TextCodeDuplicateEmail = "DUPLICATE_EMAIL"
	// TextCodeAccountNotFound marks logins for an unknown username
	TextCodeAccountNotFound = "ACCOUNT_NOT_FOUND"
	// TextCodePendingApproval marks logins blocked by the approval gate
	TextCodePendingApproval = "PENDING_APPROVAL"
	// TextCodeInvalidCreds marks failed credential comparisons
	TextCodeInvalidCreds = "INVALID_CREDENTIALS"
	// TextCodeEmptyPassword marks hash requests with no input
	TextCodeEmptyPassword = "EMPTY_PASSWORD"
)

// ErrDuplicateEmail is returned by Signup when the email already has a row.
// No insert happens.
var ErrDuplicateEmail = goerrors.New("an account with this email already exists", goerrors.CategoryConflict).
	WithTextCode(TextCodeDuplicateEmail)

// ErrAccountNotFound is returned by Login when the username matches no row.
var ErrAccountNotFound = goerrors.New("account not found", goerrors.CategoryNotFound).
	WithTextCode(TextCodeAccountNotFound)

// ErrPendingApproval is returned by Login for accounts that were created but
// not yet approved. Kept distinct from credential failures so the transport
// layer can answer forbidden rather than unauthorized.
var ErrPendingApproval = goerrors.New("account is pending approval", goerrors.CategoryAuth).
	WithTextCode(TextCodePendingApproval)

// ErrIncorrectPassword is returned by Login when the credentials do not match.
var ErrIncorrectPassword = goerrors.New("the credentials provided are invalid", goerrors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds)

// ErrNoEmptyString rejects empty passwords before they reach bcrypt.
var ErrNoEmptyString = goerrors.New("password cannot be empty", goerrors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword)

// IsPendingApproval reports whether err is the approval-gate rejection.
func IsPendingApproval(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == TextCodePendingApproval
}

// IsDuplicateEmail reports whether err is the duplicate-email rejection.
func IsDuplicateEmail(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == TextCodeDuplicateEmail
}
