package httpapi

import (
	"context"
	"net/url"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

type registerPayload struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Bio       string   `json:"bio,omitempty"`
	Interests []string `json:"interests"`
}

// Register creates an account. No session is required or created; the
// caller logs in afterwards via Token.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	payload := registerPayload{
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		Bio:       in.Bio,
		Interests: in.Interests,
	}
	if payload.Interests == nil {
		payload.Interests = []string{}
	}

	var user domain.User
	if err := c.postJSON(ctx, "/auth/register", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Token exchanges credentials for a bearer token. The endpoint is
// form-encoded (OAuth2 password flow).
func (c *Client) Token(ctx context.Context, creds ports.Credentials) (*ports.TokenResult, error) {
	form := url.Values{
		"username": {creds.Username},
		"password": {creds.Password},
	}

	var res ports.TokenResult
	if err := c.postForm(ctx, "/auth/token", form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
