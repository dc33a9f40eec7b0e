package identity

import (
	"crypto/subtle"
	"strings"
)

// CredentialKind tags how a stored credential is encoded.
type CredentialKind int

const (
	// CredentialHashed is a bcrypt hash.
	CredentialHashed CredentialKind = iota
	// CredentialLegacy is raw plaintext from rows that predate hashing.
	// Supported so old accounts keep working; Login rewrites them on the
	// first successful verification.
	CredentialLegacy
)

// Credential is a stored credential classified at the store boundary, so the
// hashed-vs-legacy decision lives in one place instead of prefix checks
// inside every verifier.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// bcrypt hashes start with a "$2" version marker ($2a$, $2b$, $2y$).
const bcryptMarker = "$2"

// ClassifyCredential inspects a stored credential and tags it.
func ClassifyCredential(stored string) Credential {
	if strings.HasPrefix(stored, bcryptMarker) {
		return Credential{Kind: CredentialHashed, Value: stored}
	}
	return Credential{Kind: CredentialLegacy, Value: stored}
}

// IsLegacy reports whether the credential predates hashing.
func (c Credential) IsLegacy() bool {
	return c.Kind == CredentialLegacy
}

// Verify compares the given cleartext password against the credential.
func (c Credential) Verify(password string) bool {
	if c.Kind == CredentialHashed {
		return ComparePasswordAndHash(password, c.Value) == nil
	}
	return subtle.ConstantTimeCompare([]byte(c.Value), []byte(password)) == 1
}

// VerifyPassword classifies the stored credential and checks password
// against it. legacy reports whether the match was against plaintext, which
// tells Login to schedule a rehash.
func VerifyPassword(password, stored string) (valid, legacy bool) {
	cred := ClassifyCredential(stored)
	return cred.Verify(password), cred.IsLegacy()
}
