package ports

import (
	"context"

	"github.com/teedesigner/design-api/internal/core/domain"
)

// UserService defines profile and user-administration use cases.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies the self-service patch (name/email only).
	UpdateProfile(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
