package usecase

import (
	"context"
	"errors"
	"fmt"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
	"crm_cotizador/internal/infrastructure/metrics"
	"crm_cotizador/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCatalogNotReady    = errors.New("price catalog not ready")
	ErrInvalidPriceScheme = errors.New("invalid price scheme")
)

// IPriceCatalogUseCase loads the price scheme that backs every calculation.
type IPriceCatalogUseCase interface {
	Catalog(ctx context.Context) (*pricing.Catalog, error)
	Entries(ctx context.Context) (entities.PriceScheme, error)
	Invalidate(ctx context.Context) error
}

type PriceCatalogUseCase struct {
	repo    interfaces.IPriceSchemeRepository
	cache   interfaces.IPriceCatalogCache
	metrics *metrics.Registry
	logger  *zap.Logger
}

var _ IPriceCatalogUseCase = (*PriceCatalogUseCase)(nil)

// NewPriceCatalogUseCase builds the use case. cache and registry may be nil.
func NewPriceCatalogUseCase(repo interfaces.IPriceSchemeRepository, cache interfaces.IPriceCatalogCache, registry *metrics.Registry, logger *zap.Logger) *PriceCatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceCatalogUseCase{repo: repo, cache: cache, metrics: registry, logger: logger}
}

// Catalog returns the cached scheme when present, otherwise loads it from the
// provider, validates it and refreshes the cache. A scheme without tiers is
// reported as ErrCatalogNotReady.
func (u *PriceCatalogUseCase) Catalog(ctx context.Context) (*pricing.Catalog, error) {
	if u.cache != nil {
		s, ok, err := u.cache.Get(ctx)
		if err != nil {
			u.logger.Warn("price catalog cache read failed", zap.Error(err))
		} else if ok {
			if cat := pricing.NewCatalogFromScheme(s); cat.Ready() {
				u.metrics.IncCatalogLoad(metrics.SourceCache)
				return cat, nil
			}
		}
	}

	if u.repo == nil {
		return nil, ErrCatalogNotReady
	}
	s, err := u.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogNotReady, err)
	}
	cat := pricing.NewCatalogFromScheme(s)
	if !cat.Ready() {
		return nil, ErrCatalogNotReady
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPriceScheme, err)
	}
	u.metrics.IncCatalogLoad(metrics.SourceDynamoDB)

	if u.cache != nil {
		if err := u.cache.Set(ctx, cat.Scheme()); err != nil {
			u.logger.Warn("price catalog cache write failed", zap.Error(err))
		}
	}
	u.logger.Debug("price catalog loaded", zap.Int("tiers", len(s.Entries)))
	return cat, nil
}

// Entries returns the loaded scheme ordered by module id and lower bound.
func (u *PriceCatalogUseCase) Entries(ctx context.Context) (entities.PriceScheme, error) {
	cat, err := u.Catalog(ctx)
	if err != nil {
		return entities.PriceScheme{}, err
	}
	return cat.Scheme(), nil
}

// Invalidate drops the cached scheme so the next request reloads it.
func (u *PriceCatalogUseCase) Invalidate(ctx context.Context) error {
	if u.cache == nil {
		return nil
	}
	return u.cache.Invalidate(ctx)
}
