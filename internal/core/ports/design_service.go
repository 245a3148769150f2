package ports

import (
	"context"

	"github.com/teedesigner/design-api/internal/core/domain"
)

// CreateDesignInput carries the data for a new design. OwnerID is taken from
// the authenticated actor by the handler, never from the request body.
type CreateDesignInput struct {
	OwnerID          string
	Name             string
	BaseColor        string
	HasHood          bool
	SleeveLeftColor  string
	SleeveRightColor string
	CollarColor      string
	HasBorders       bool
	BorderColor      string
	HasZipper        bool
	ZipperColor      string
	Elements         []domain.Element
	IsPublic         bool
	Preview          string
}

// DesignService defines use-case operations for designs. It performs no
// authorization; handlers run the access controller before calling it.
type DesignService interface {
	Create(ctx context.Context, input CreateDesignInput) (*domain.Design, error)
	GetByID(ctx context.Context, id string) (*domain.Design, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Design, error)
	ListPublic(ctx context.Context) ([]*domain.Design, error)
	Search(ctx context.Context, query string) ([]*domain.Design, error)
	Update(ctx context.Context, id string, patch DesignPatch) (*domain.Design, error)
	Delete(ctx context.Context, id string) error
}
