package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dentalflow/clinic-backend/internal/domain/entities"
	"github.com/dentalflow/clinic-backend/internal/domain/repositories"
)

// AccountService defines the interface for account operations
type AccountService interface {
	CurrentUser(ctx context.Context, accessToken string) (*entities.User, error)
	SignIn(ctx context.Context, email, password string) (*repositories.Session, error)
	SignUp(ctx context.Context, email, password string) (*repositories.Session, error)
}

// CredentialsRequest is the payload for the sign-in and sign-up routes
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountHandler handles account requests
type AccountHandler struct {
	service AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{
		service: service,
	}
}

// GetCurrentUser handles GET /api/me
func (h *AccountHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r.Context(), bearerToken(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// SignIn handles POST /api/auth/signin
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}

// SignUp handles POST /api/auth/signup
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session, err := h.service.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, session)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}
