package services

import (
	"context"
	"strings"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

// AccountService handles the signed-in user's account
type AccountService struct {
	repo repositories.IdentityRepository
}

// NewAccountService creates a new account service
func NewAccountService(repo repositories.IdentityRepository) *AccountService {
	return &AccountService{repo: repo}
}

// CurrentUser resolves the user behind the given access token. A nil
// user means nobody is signed in, which is not an error.
func (s *AccountService) CurrentUser(ctx context.Context, accessToken string) (*entities.User, error) {
	return s.repo.CurrentUser(ctx, accessToken)
}

// SignIn exchanges credentials for a session
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*repositories.Session, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}
	return s.repo.SignIn(ctx, email, password)
}

// SignUp registers a new account and signs it in
func (s *AccountService) SignUp(ctx context.Context, email, password string) (*repositories.Session, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	if len(password) < 6 {
		return nil, apperrors.NewValidationError("password must be at least 6 characters")
	}
	return s.repo.SignUp(ctx, email, password)
}
