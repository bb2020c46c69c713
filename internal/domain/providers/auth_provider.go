package providers

import "context"

// Principal is the raw authenticated identity held by the remote auth
// subsystem, before profile resolution.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Token is a credential issued by the remote auth subsystem
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// AuthProvider is the contract of the remote auth subsystem. The
// concrete transport is out of the data layer's hands; it only depends
// on these three operations.
type AuthProvider interface {
	// SignIn exchanges email and password for a token
	SignIn(ctx context.Context, email, password string) (*Token, error)

	// SignUp registers a new account and returns its first token
	SignUp(ctx context.Context, email, password string) (*Token, error)

	// GetUser resolves the principal behind a token. Returns (nil, nil)
	// when the token is missing, expired or rejected.
	GetUser(ctx context.Context, accessToken string) (*Principal, error)
}
