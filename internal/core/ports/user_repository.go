package ports

import (
	"context"

	"github.com/teedesigner/design-api/internal/core/domain"
)

// UserPatch carries the mutable profile fields. Nil means "leave unchanged".
// Role is deliberately absent: it is settable only by direct administrative
// repository action, never through the self-service update path.
type UserPatch struct {
	Name  *string
	Email *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
