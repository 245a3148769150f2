package ports

import (
	"context"

	"github.com/teedesigner/design-api/internal/core/domain"
)

// DesignPatch carries the whitelisted mutable fields of a design. Nil means
// "leave unchanged"; unrecognized request fields never reach this struct.
type DesignPatch struct {
	Name             *string
	BaseColor        *string
	HasHood          *bool
	SleeveLeftColor  *string
	SleeveRightColor *string
	CollarColor      *string
	HasBorders       *bool
	BorderColor      *string
	HasZipper        *bool
	ZipperColor      *string
	Elements         *[]domain.Element
	IsPublic         *bool
	Preview          *string
}

// DesignRepository defines persistence operations for designs.
type DesignRepository interface {
	Create(ctx context.Context, d *domain.Design) (*domain.Design, error)
	FindByID(ctx context.Context, id string) (*domain.Design, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Design, error)
	// FindPublic returns designs with is_public=true only.
	FindPublic(ctx context.Context) ([]*domain.Design, error)
	// SearchByName runs a text search scoped to public designs; private
	// designs never appear in results regardless of the requester.
	SearchByName(ctx context.Context, query string) ([]*domain.Design, error)
	Update(ctx context.Context, id string, patch DesignPatch) (*domain.Design, error)
	Delete(ctx context.Context, id string) error
}
