package interfaces

import (
	"context"

	"crm_cotizador/internal/domain/entities"
)

// IPriceSchemeRepository is the catalog provider: module tiers plus the extra
// user and extra stamp rates.
type IPriceSchemeRepository interface {
	Load(ctx context.Context) (entities.PriceScheme, error)
}

// IPriceCatalogCache keeps the last loaded price scheme between requests.
type IPriceCatalogCache interface {
	Get(ctx context.Context) (entities.PriceScheme, bool, error)
	Set(ctx context.Context, s entities.PriceScheme) error
	Invalidate(ctx context.Context) error
}
