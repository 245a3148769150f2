package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/teedesigner/design-api/internal/api/metrics"
	"github.com/teedesigner/design-api/internal/core/domain"
	"github.com/teedesigner/design-api/internal/core/ports"
)

// Garment defaults applied when a create request omits an attribute.
const (
	defaultGarmentColor = "#FFFFFF"
	defaultAccentColor  = "#000000"
)

// PublicListingCache abstracts the Redis-backed cache for the public design
// listing. Get returns (nil, nil) on a cache miss.
type PublicListingCache interface {
	Get(ctx context.Context) ([]*domain.Design, error)
	Set(ctx context.Context, designs []*domain.Design) error
	Invalidate(ctx context.Context) error
}

// DesignService is thin orchestration over the repository: authorization has
// already happened in the handler by the time it is called, and repository
// failures propagate unchanged.
type DesignService struct {
	repo   ports.DesignRepository
	cache  PublicListingCache
	logger zerolog.Logger
}

func NewDesignService(repo ports.DesignRepository, cache PublicListingCache, logger zerolog.Logger) *DesignService {
	return &DesignService{repo: repo, cache: cache, logger: logger}
}

// Create persists a new design owned by input.OwnerID. Visibility defaults
// to private; omitted colors fall back to the garment defaults.
func (s *DesignService) Create(ctx context.Context, input ports.CreateDesignInput) (*domain.Design, error) {
	now := time.Now().UTC()
	design := &domain.Design{
		OwnerID:          input.OwnerID,
		Name:             input.Name,
		BaseColor:        orDefault(input.BaseColor, defaultGarmentColor),
		HasHood:          input.HasHood,
		SleeveLeftColor:  orDefault(input.SleeveLeftColor, defaultGarmentColor),
		SleeveRightColor: orDefault(input.SleeveRightColor, defaultGarmentColor),
		CollarColor:      orDefault(input.CollarColor, defaultGarmentColor),
		HasBorders:       input.HasBorders,
		BorderColor:      orDefault(input.BorderColor, defaultAccentColor),
		HasZipper:        input.HasZipper,
		ZipperColor:      orDefault(input.ZipperColor, defaultAccentColor),
		Elements:         input.Elements,
		IsPublic:         input.IsPublic,
		Preview:          input.Preview,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if design.Elements == nil {
		design.Elements = []domain.Element{}
	}

	created, err := s.repo.Create(ctx, design)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create design")
		return nil, err
	}

	metrics.DesignsCreatedTotal.WithLabelValues(visibilityLabel(created.IsPublic)).Inc()
	s.invalidateListing(ctx)
	s.logger.Info().Str("design_id", created.ID).Str("owner_id", created.OwnerID).Msg("design created")
	return created, nil
}

func (s *DesignService) GetByID(ctx context.Context, id string) (*domain.Design, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DesignService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Design, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// ListPublic serves the public listing from the cache when possible.
func (s *DesignService) ListPublic(ctx context.Context) ([]*domain.Design, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("public listing cache read failed, falling back to repository")
	} else if cached != nil {
		metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.ListingCacheTotal.WithLabelValues("miss").Inc()

	designs, err := s.repo.FindPublic(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, designs); err != nil {
		s.logger.Warn().Err(err).Msg("failed to populate public listing cache")
	}
	return designs, nil
}

func (s *DesignService) Search(ctx context.Context, query string) ([]*domain.Design, error) {
	return s.repo.SearchByName(ctx, query)
}

func (s *DesignService) Update(ctx context.Context, id string, patch ports.DesignPatch) (*domain.Design, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	s.logger.Info().Str("design_id", id).Msg("design updated")
	return updated, nil
}

func (s *DesignService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListing(ctx)
	s.logger.Info().Str("design_id", id).Msg("design deleted")
	return nil
}

// invalidateListing drops the cached public listing after any write. Cache
// failures are logged, never surfaced: the listing would merely be stale for
// one TTL window.
func (s *DesignService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate public listing cache")
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func visibilityLabel(isPublic bool) string {
	if isPublic {
		return "public"
	}
	return "private"
}
