package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Me fetches the current user's profile with groups and stats.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sends a partial profile update as multipart form data.
// Interests are comma-joined, matching what the endpoint expects.
func (c *Client) UpdateProfile(ctx context.Context, in ports.ProfileUpdateInput) (*domain.User, error) {
	m := newMultipartBody()
	if in.Bio != nil {
		m.field("bio", *in.Bio)
	}
	if in.Interests != nil {
		m.field("interests", strings.Join(in.Interests, ","))
	}
	if in.PhotoPath != "" {
		data, name, err := preparePhoto(in.PhotoPath)
		if err != nil {
			return nil, err
		}
		m.file("profile_photo", name, data)
	}

	var user domain.User
	if err := c.submitMultipart(ctx, http.MethodPut, "/users/profile", m, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Interests fetches the catalog of selectable interests.
func (c *Client) Interests(ctx context.Context) ([]domain.Interest, error) {
	var interests []domain.Interest
	if err := c.getJSON(ctx, "/interests", &interests); err != nil {
		return nil, err
	}
	return interests, nil
}
