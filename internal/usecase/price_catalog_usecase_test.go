package usecase

import (
	"context"
	"errors"
	"testing"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
	"crm_cotizador/internal/infrastructure/metrics"
	mock_interfaces "crm_cotizador/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPriceCatalogUseCase_Catalog(t *testing.T) {
	t.Run("cache hit skips provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceCatalogCache(ctrl)
		uc := NewPriceCatalogUseCase(repo, cache, metrics.NewRegistry(), nil)

		cache.EXPECT().Get(gomock.Any()).Return(testScheme(), true, nil)

		cat, err := uc.Catalog(context.Background())
		if err != nil || !cat.Ready() {
			t.Fatalf("expected ready catalog, err=%v", err)
		}
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceCatalogCache(ctrl)
		uc := NewPriceCatalogUseCase(repo, cache, nil, nil)

		cache.EXPECT().Get(gomock.Any()).Return(entities.PriceScheme{}, false, nil)
		repo.EXPECT().Load(gomock.Any()).Return(testScheme(), nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.PriceScheme) error {
			if len(s.Entries) != 3 || s.Rates.ExtraUserMonthly != 99 {
				t.Fatalf("unexpected cached scheme: %+v", s)
			}
			return nil
		})

		cat, err := uc.Catalog(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tier, ok := cat.FindTier(entities.ModuleNomina, 60); !ok || tier.MonthlyUnitPrice != 900 {
			t.Fatalf("unexpected tier: %+v ok=%v", tier, ok)
		}
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
		cache := mock_interfaces.NewMockIPriceCatalogCache(ctrl)
		uc := NewPriceCatalogUseCase(repo, cache, nil, nil)

		cache.EXPECT().Get(gomock.Any()).Return(entities.PriceScheme{}, false, errors.New("redis down"))
		repo.EXPECT().Load(gomock.Any()).Return(testScheme(), nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Catalog(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
		uc := NewPriceCatalogUseCase(repo, nil, nil, nil)

		repo.EXPECT().Load(gomock.Any()).Return(entities.PriceScheme{}, errors.New("dynamo"))

		_, err := uc.Catalog(context.Background())
		if !errors.Is(err, ErrCatalogNotReady) {
			t.Fatalf("expected ErrCatalogNotReady, got %v", err)
		}
	})

	t.Run("empty scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
		uc := NewPriceCatalogUseCase(repo, nil, nil, nil)

		repo.EXPECT().Load(gomock.Any()).Return(entities.PriceScheme{}, nil)

		_, err := uc.Catalog(context.Background())
		if !errors.Is(err, ErrCatalogNotReady) {
			t.Fatalf("expected ErrCatalogNotReady, got %v", err)
		}
	})

	t.Run("overlapping tiers rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
		uc := NewPriceCatalogUseCase(repo, nil, nil, nil)

		s := testScheme()
		s.Entries = append(s.Entries, entities.PriceSchemeEntry{ModuleID: entities.ModuleNomina, MinEmployees: 40, MaxEmployees: 60})
		repo.EXPECT().Load(gomock.Any()).Return(s, nil)

		_, err := uc.Catalog(context.Background())
		if !errors.Is(err, ErrInvalidPriceScheme) || !errors.Is(err, pricing.ErrOverlappingTiers) {
			t.Fatalf("expected ErrInvalidPriceScheme wrapping ErrOverlappingTiers, got %v", err)
		}
	})

	t.Run("no provider", func(t *testing.T) {
		uc := NewPriceCatalogUseCase(nil, nil, nil, nil)
		if _, err := uc.Catalog(context.Background()); !errors.Is(err, ErrCatalogNotReady) {
			t.Fatalf("expected ErrCatalogNotReady, got %v", err)
		}
	})
}

func TestPriceCatalogUseCase_EntriesAndInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
	cache := mock_interfaces.NewMockIPriceCatalogCache(ctrl)
	uc := NewPriceCatalogUseCase(repo, cache, nil, nil)

	cache.EXPECT().Get(gomock.Any()).Return(testScheme(), true, nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	s, err := uc.Entries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Entries) != 3 || s.Entries[0].ModuleID != entities.ModuleNomina || s.Entries[0].MinEmployees != 1 {
		t.Fatalf("unexpected entries: %+v", s.Entries)
	}
	if err := uc.Invalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewPriceCatalogUseCase(repo, nil, nil, nil).Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate without cache should be a no-op, got %v", err)
	}
}
