package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/providers"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

const defaultRole = "Dentist"

// IdentityAdapter resolves the authenticated operator against the
// remote auth subsystem and the profiles table.
type IdentityAdapter struct {
	auth   providers.AuthProvider
	client *postgres.Client
	db     *goqu.Database
}

// NewIdentityAdapter creates a new identity adapter
func NewIdentityAdapter(auth providers.AuthProvider, client *postgres.Client) repositories.IdentityRepository {
	return &IdentityAdapter{
		auth:   auth,
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// CurrentUser resolves the principal behind accessToken, then its
// profile row. When no profile row exists the display name is derived
// from the email local-part and the role and avatar fall back to
// defaults. Returns (nil, nil) when no principal is authenticated.
func (a *IdentityAdapter) CurrentUser(ctx context.Context, accessToken string) (*entities.User, error) {
	principal, err := a.auth.GetUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, nil
	}

	user := &entities.User{
		ID:    principal.ID,
		Email: principal.Email,
	}

	query, args, err := a.db.Select("full_name", "role", "avatar_url").
		From("profiles").
		Where(goqu.Ex{"id": principal.ID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build profile query", err)
	}

	var fullName, role, avatarURL sql.NullString
	err = a.client.QueryRowContext(ctx, "profiles.get", query, args...).Scan(&fullName, &role, &avatarURL)
	if err != nil && err != sql.ErrNoRows {
		return nil, apperrors.NewInternalError("failed to get profile", err)
	}

	user.Name = fullName.String
	if user.Name == "" {
		user.Name = displayNameFromEmail(principal.Email)
	}
	user.Role = role.String
	if user.Role == "" {
		user.Role = defaultRole
	}
	user.Avatar = avatarURL.String
	if user.Avatar == "" {
		user.Avatar = entities.DefaultAvatarURL
	}

	return user, nil
}

// SignIn authenticates with the remote auth subsystem and resolves the
// session's user profile
func (a *IdentityAdapter) SignIn(ctx context.Context, email, password string) (*repositories.Session, error) {
	token, err := a.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.sessionFromToken(ctx, token)
}

// SignUp registers a new operator account
func (a *IdentityAdapter) SignUp(ctx context.Context, email, password string) (*repositories.Session, error) {
	token, err := a.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.sessionFromToken(ctx, token)
}

func (a *IdentityAdapter) sessionFromToken(ctx context.Context, token *providers.Token) (*repositories.Session, error) {
	user, err := a.CurrentUser(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewUnauthorizedError("issued token resolved to no principal")
	}
	return &repositories.Session{
		AccessToken: token.AccessToken,
		User:        user,
	}, nil
}

func displayNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "User"
	}
	return local
}
