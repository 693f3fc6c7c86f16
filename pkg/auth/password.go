package auth

import "crypto/subtle"

// CheckPassword compares a candidate against the configured admin password in
// constant time. This deliberately stays a plain shared-secret comparison:
// the gate deters casual access to the dashboard, it is not an authentication
// system to harden.
func CheckPassword(candidate, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(configured)) == 1
}
