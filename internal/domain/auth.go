package domain

import "context"

// Identity is the verified claim set of an externally issued ID token.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Verifier validates a raw bearer token against the trusted key set.
// Any failed check collapses to ErrUnauthorized; callers only ever see
// a binary verified/not-verified outcome.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (Identity, error)
}

// Directory resolves a verified identity to the local user, creating
// one the first time the subject is seen.
type Directory interface {
	Resolve(ctx context.Context, identity Identity) (User, error)
}
