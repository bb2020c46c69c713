package repositories

import (
	"context"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
)

// Session is an authenticated session with its resolved user profile
type Session struct {
	AccessToken string         `json:"accessToken"`
	User        *entities.User `json:"user"`
}

// IdentityRepository resolves the authenticated operator
type IdentityRepository interface {
	// CurrentUser resolves the principal behind accessToken and its
	// profile. Returns (nil, nil) when no principal is authenticated.
	// The local backend ignores the token and always returns its fixed
	// identity.
	CurrentUser(ctx context.Context, accessToken string) (*entities.User, error)

	// SignIn authenticates with email and password
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignUp registers a new operator account
	SignUp(ctx context.Context, email, password string) (*Session, error)
}
