package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthenticator checks the admin password against a configured bcrypt hash.
type AdminAuthenticator struct {
	hash []byte
}

// NewAdminAuthenticator creates an authenticator. An empty hash disables admin login.
func NewAdminAuthenticator(passwordHash string) *AdminAuthenticator {
	return &AdminAuthenticator{hash: []byte(passwordHash)}
}

// Enabled reports whether an admin password is configured.
func (a *AdminAuthenticator) Enabled() bool {
	return len(a.hash) > 0
}

// Check reports whether password matches the configured hash.
func (a *AdminAuthenticator) Check(password string) bool {
	if !a.Enabled() || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil
}
