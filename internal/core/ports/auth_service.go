package ports

import (
	"context"

	"github.com/teedesigner/design-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the user role and returns it together
	// with a signed token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
