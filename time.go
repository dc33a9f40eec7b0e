package identity

import "time"

// PasswordExpiryMonths is the credential freshness window.
var PasswordExpiryMonths = 3

// PasswordFreshness returns the freshness and expiry stamps for a credential
// set at the given time.
func PasswordFreshness(at time.Time) (fresh, expire time.Time) {
	return at, at.AddDate(0, PasswordExpiryMonths, 0)
}

// IsPasswordExpired checks the user's credential against its expiry stamp.
// Users with no stamp are treated as current; they predate the window.
func IsPasswordExpired(u *User, now time.Time) bool {
	if u == nil || u.PasswordExpire == nil {
		return false
	}
	return now.After(*u.PasswordExpire)
}
