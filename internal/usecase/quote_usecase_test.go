package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
	"crm_cotizador/internal/infrastructure/metrics"
	mock_interfaces "crm_cotizador/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)

func newQuoteUseCase(t *testing.T, schemeErr error) (*QuoteUseCase, *mock_interfaces.MockIQuoteRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	schemes := mock_interfaces.NewMockIPriceSchemeRepository(ctrl)
	if schemeErr != nil {
		schemes.EXPECT().Load(gomock.Any()).Return(entities.PriceScheme{}, schemeErr).AnyTimes()
	} else {
		schemes.EXPECT().Load(gomock.Any()).Return(testScheme(), nil).AnyTimes()
	}
	catalog := NewPriceCatalogUseCase(schemes, nil, nil, nil)
	sellers := []entities.Seller{{ID: "s-1", Name: "Ana López", Email: "ana@example.com"}}
	uc := NewQuoteUseCase(repo, catalog, sellers, metrics.NewRegistry(), nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func TestQuoteUseCase_New(t *testing.T) {
	uc, _ := newQuoteUseCase(t, nil)

	q, err := uc.New(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Months != 1 || len(q.ModuleDetails) != len(entities.InitialModules()) || len(q.ProductDetails) != len(entities.InitialProducts()) {
		t.Fatalf("unexpected default quote: %+v", q)
	}
	if q.TotalMonthly != 0 || q.TotalProducts != 0 {
		t.Fatalf("expected zero totals, got %+v", q.QuoteTotals)
	}
}

func TestQuoteUseCase_Calculate(t *testing.T) {
	t.Run("prices the form and ignores client totals", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		form := formWith("ACME", map[string]int{entities.ModuleNomina: 10, "UNKNOWN": 5})
		form.TotalMonthly = 1

		q, err := uc.Calculate(context.Background(), form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.TotalMonthly != 580 || q.TotalAnual != 5800 {
			t.Fatalf("unexpected totals: %+v", q.QuoteTotals)
		}
		if q.Module("UNKNOWN") >= 0 {
			t.Fatalf("unknown module should be dropped")
		}
	})

	t.Run("catalog unavailable passes totals through", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, errors.New("dynamo"))
		form := formWith("ACME", map[string]int{entities.ModuleNomina: 10})
		form.TotalMonthly = 123.45

		q, err := uc.Calculate(context.Background(), form)
		if err != nil {
			t.Fatalf("calculation must not fail, got %v", err)
		}
		if q.TotalMonthly != 123.45 {
			t.Fatalf("expected totals preserved, got %v", q.TotalMonthly)
		}
	})
}

func TestQuoteUseCase_ApplyEdit(t *testing.T) {
	t.Run("switching to prenomina clears nomina and stamps", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		form := formWith("ACME", map[string]int{entities.ModuleNomina: 10})
		form.ModuleDetails = append(form.ModuleDetails, entities.ModuleDetail{ModuleID: entities.ModulePrenomina, EmployeeNumber: 10})
		form.RequiresStamps = true
		form.NumberOfExtraRings = 20

		q, err := uc.ApplyEdit(context.Background(), form, pricing.Edit{Kind: pricing.EditToggleModule, TargetID: entities.ModulePrenomina, Value: "true"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.IsModuleActive(entities.ModuleNomina) || !q.IsModuleActive(entities.ModulePrenomina) {
			t.Fatalf("expected only prenomina active")
		}
		if q.RequiresStamps || q.NumberOfExtraRings != 0 || q.AmountStampMonthly != 0 {
			t.Fatalf("expected stamps cleared")
		}
		if q.TotalMonthly != 348 {
			t.Fatalf("expected 300 + 16%% = 348, got %v", q.TotalMonthly)
		}
	})

	t.Run("one recalculation per edit", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		form := formWith("ACME", map[string]int{entities.ModuleNomina: 10})

		if _, err := uc.ApplyEdit(context.Background(), form, pricing.Edit{Kind: pricing.EditModuleEmployees, TargetID: entities.ModuleNomina, Value: "0"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		w := httptest.NewRecorder()
		uc.metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		body := w.Body.String()
		for _, line := range []string{
			`quote_recalculations_total{operation="edit"} 1`,
			`quote_missing_pricing_tier_total{module="NOMINA"} 1`,
		} {
			if !strings.Contains(body, line) {
				t.Fatalf("expected %q in metrics output", line)
			}
		}
	})

	t.Run("unknown edit", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		_, err := uc.ApplyEdit(context.Background(), formWith("ACME", nil), pricing.Edit{Kind: "colour"})
		if !errors.Is(err, pricing.ErrUnknownEdit) {
			t.Fatalf("expected ErrUnknownEdit, got %v", err)
		}
	})
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("missing company", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		_, err := uc.Create(context.Background(), formWith("  ", nil))
		if !errors.Is(err, ErrInvalidQuote) {
			t.Fatalf("expected ErrInvalidQuote, got %v", err)
		}
	})

	t.Run("unknown seller", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		form := formWith("ACME", nil)
		form.SellerID = "nobody"
		_, err := uc.Create(context.Background(), form)
		if !errors.Is(err, ErrUnknownSeller) {
			t.Fatalf("expected ErrUnknownSeller, got %v", err)
		}
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, errors.New("dynamo"))
		_, err := uc.Create(context.Background(), formWith("ACME", nil))
		if !errors.Is(err, ErrCatalogNotReady) {
			t.Fatalf("expected ErrCatalogNotReady, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Create(context.Background(), formWith("ACME", nil))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		form := formWith("ACME", map[string]int{entities.ModuleNomina: 60})
		form.ID = "client-supplied"
		form.Status = entities.QuoteStatusAprobada
		form.SellerID = "s-1"
		form.NumberOfExtraUsers = 2

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.ID == "client-supplied" {
					t.Fatalf("expected generated id, got %q", q.ID)
				}
				if !strings.HasPrefix(q.Folio, "COT-20240131-") || len(q.Folio) != len("COT-20240131-")+8 {
					t.Fatalf("unexpected folio %q", q.Folio)
				}
				if q.Status != entities.QuoteStatusPendiente || q.SellerName != "Ana López" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if !q.CreatedAt.Equal(fixedNow) || !q.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps")
				}
				// 900 + 2 * 99 = 1098, plus 16% VAT.
				if q.SubTotalMonthly != 1098 || q.TotalMonthly != 1273.68 {
					t.Fatalf("unexpected totals: %+v", q.QuoteTotals)
				}
				return q, nil
			},
		)

		res, err := uc.Create(context.Background(), form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	stored := entities.Quote{
		ID:        "q-1",
		Folio:     "COT-20240101-AAAA0000",
		Status:    entities.QuoteStatusPendiente,
		CreatedAt: fixedNow.Add(-24 * time.Hour),
	}

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		_, err := uc.Update(context.Background(), " ", formWith("ACME", nil))
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), "q-1", formWith("ACME", nil))
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("closed quote", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		closed := stored
		closed.Status = entities.QuoteStatusCancelada
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(closed, nil)

		_, err := uc.Update(context.Background(), "q-1", formWith("ACME", nil))
		if !errors.Is(err, ErrQuoteClosed) {
			t.Fatalf("expected ErrQuoteClosed, got %v", err)
		}
	})

	t.Run("update success keeps identity", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "q-1" || q.Folio != stored.Folio || q.Status != entities.QuoteStatusPendiente {
					t.Fatalf("identity not kept: %+v", q)
				}
				if !q.CreatedAt.Equal(stored.CreatedAt) || !q.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected timestamps: %v %v", q.CreatedAt, q.UpdatedAt)
				}
				if q.TotalMonthly != 580 {
					t.Fatalf("expected recalculated totals, got %v", q.TotalMonthly)
				}
				return q, nil
			},
		)

		form := formWith("ACME", map[string]int{entities.ModuleNomina: 10})
		form.ID = "other"
		if _, err := uc.Update(context.Background(), " q-1 ", form); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("record vanished during update", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), "q-1", formWith("ACME", nil))
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "q-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("stored prices are refreshed", func(t *testing.T) {
		uc, repo := newQuoteUseCase(t, nil)
		stored := formWith("ACME", map[string]int{entities.ModuleNomina: 10})
		stored.ID = "q-1"
		stored.Months = 0
		stored.TotalMonthly = 1
		stored.ModuleDetails[0].MonthlyPrice = 1
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)

		q, err := uc.GetByID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Months != 1 || q.TotalMonthly != 580 || len(q.ModuleDetails) != len(entities.InitialModules()) {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "approve", call: (*QuoteUseCase).ApproveByID, status: entities.QuoteStatusAprobada},
		{name: "reject", call: (*QuoteUseCase).RejectByID, status: entities.QuoteStatusRechazada},
		{name: "cancel", call: (*QuoteUseCase).CancelByID, status: entities.QuoteStatusCancelada},
	}
	pending := entities.Quote{ID: "q-1", Status: entities.QuoteStatusPendiente}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc, _ := newQuoteUseCase(t, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			uc, repo := newQuoteUseCase(t, nil)
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "q-1")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" already closed", func(t *testing.T) {
			uc, repo := newQuoteUseCase(t, nil)
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRechazada}, nil)

			_, err := tc.call(uc, context.Background(), "q-1")
			if !errors.Is(err, ErrQuoteClosed) {
				t.Fatalf("expected ErrQuoteClosed, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			uc, repo := newQuoteUseCase(t, nil)
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.status).Return(entities.Quote{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "q-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			uc, repo := newQuoteUseCase(t, nil)
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.status).Return(entities.Quote{ID: "q-1", Status: tc.status}, nil)

			res, err := tc.call(uc, context.Background(), " q-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, res.Status)
			}
		})
	}
}

func TestQuoteUseCase_Document(t *testing.T) {
	uc, repo := newQuoteUseCase(t, nil)
	stored := formWith("ACME", map[string]int{entities.ModuleNomina: 10})
	stored.ID = "q-1"
	stored.Folio = "COT-20240131-ABCDEF12"
	stored.ModuleDetails = append(stored.ModuleDetails, entities.ModuleDetail{ModuleID: entities.ModuleAsistencia, IsActive: true})
	stored.ProductDetails = []entities.ProductDetail{{ProductID: entities.ProductReloj, Quantity: 1}}
	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)

	doc, err := uc.Document(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Folio != stored.Folio || len(doc.Modules) != 1 || len(doc.Products) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.TotalMonthly != 580 || doc.TotalProducts != 5220 {
		t.Fatalf("unexpected document totals: %+v", doc)
	}
}

func TestNewFolio(t *testing.T) {
	got := newFolio(fixedNow, "1a2b3c4d-0000-4000-8000-000000000000")
	if got != "COT-20240131-1A2B3C4D" {
		t.Fatalf("unexpected folio %q", got)
	}
}
