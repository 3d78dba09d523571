package ports

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Bio       string
	Interests []string
}

// Credentials is a username/password pair for the token exchange.
type Credentials struct {
	Username string
	Password string
}

// TokenResult is the backend's answer to a successful credential exchange.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

// AuthClient talks to the authentication endpoints.
type AuthClient interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Token(ctx context.Context, creds Credentials) (*TokenResult, error)
}
