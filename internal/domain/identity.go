package domain

import "context"

// Identity is the authenticated caller of a request.
// The zero value is the anonymous identity.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// IsAuthenticated reports whether the identity belongs to a signed-in user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}

// SessionVerifier resolves the identity carried by a session token.
type SessionVerifier interface {
	// Verify validates the token and returns the identity it represents.
	Verify(ctx context.Context, token string) (Identity, error)
}
