package auth

import (
	"context"
	"fmt"
)

// Resolver turns raw bearer tokens into the user they identify. It is
// the single choke point between "untrusted string from the wire" and
// "authenticated user": every protected operation goes through Resolve.
type Resolver struct {
	users  UserRepository
	secret string
}

// NewResolver creates a Resolver bound to a user store and signing secret.
func NewResolver(users UserRepository, secret string) *Resolver {
	return &Resolver{users: users, secret: secret}
}

// Resolve validates a raw token and loads the user it names.
//
// Every failure mode collapses to ErrUnauthenticated: bad signature,
// expiry, missing subject, and a subject that no longer exists in the
// user store (the account was deleted after the token was issued).
func (r *Resolver) Resolve(ctx context.Context, rawToken string) (*User, error) {
	claims, err := ParseToken(rawToken, r.secret)
	if err != nil {
		return nil, err
	}

	user, err := r.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown subject", ErrUnauthenticated)
	}
	return user, nil
}
