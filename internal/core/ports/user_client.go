package ports

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// ProfileUpdateInput carries a partial profile update. Nil fields are left
// untouched server-side.
type ProfileUpdateInput struct {
	Bio       *string
	Interests []string // nil means unchanged; empty clears
	PhotoPath string   // local path of a new profile photo, optional
}

// UserClient reads and updates the current user's profile.
type UserClient interface {
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in ProfileUpdateInput) (*domain.User, error)
	Interests(ctx context.Context) ([]domain.Interest, error)
}
