package usecase

import (
	"context"
	"fmt"

	"jobdesk/internal/domain"
)

// UserDirectory maps verified identities to local users, provisioning
// on first sight. Resolving the same subject always yields the same
// user id; the store's uniqueness guarantee makes that hold under
// concurrent first-time logins too.
type UserDirectory struct {
	Users UserRepository
}

func NewUserDirectory(users UserRepository) *UserDirectory {
	return &UserDirectory{Users: users}
}

func (d *UserDirectory) Resolve(ctx context.Context, identity domain.Identity) (domain.User, error) {
	if d == nil || d.Users == nil {
		return domain.User{}, fmt.Errorf("user directory not configured")
	}
	if identity.Subject == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	return d.Users.GetOrCreate(ctx, identity)
}
