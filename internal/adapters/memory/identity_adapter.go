package memory

import (
	"context"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
)

// localAccessToken is the static session credential issued when no
// remote auth subsystem exists.
const localAccessToken = "local-session"

// IdentityAdapter implements the IdentityRepository interface with the
// store's fixed identity. Without a remote backend there is nobody to
// reject: CurrentUser never returns nil and any credential signs in.
type IdentityAdapter struct {
	store *Store
}

// NewIdentityAdapter creates a new identity adapter
func NewIdentityAdapter(store *Store) repositories.IdentityRepository {
	return &IdentityAdapter{store: store}
}

// CurrentUser returns the fixed local identity unconditionally
func (a *IdentityAdapter) CurrentUser(ctx context.Context, accessToken string) (*entities.User, error) {
	user := a.store.CurrentUser()
	return &user, nil
}

// SignIn accepts any credentials and returns the fixed identity
func (a *IdentityAdapter) SignIn(ctx context.Context, email, password string) (*repositories.Session, error) {
	user := a.store.CurrentUser()
	return &repositories.Session{
		AccessToken: localAccessToken,
		User:        &user,
	}, nil
}

// SignUp behaves like SignIn; no account is actually created
func (a *IdentityAdapter) SignUp(ctx context.Context, email, password string) (*repositories.Session, error) {
	return a.SignIn(ctx, email, password)
}
