package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"crm_cotizador/internal/adapter/http/handlers/mocks"
	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/usecase"
)

func newPaymentRouter(t *testing.T, mock bool) (*gin.Engine, *mocks.MockIQuotePaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuotePaymentUseCase(ctrl)
	h := NewQuotePaymentHandler(uc, mock, nil)

	r := gin.New()
	r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)
	r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)
	r.GET("/v1/payments/:quote_id/history", h.ListPaymentsByQuoteID)
	r.GET("/v1/payments/:quote_id/:payment_id", h.GetPayment)
	return r, uc
}

func TestQuotePaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		if w := doJSON(r, http.MethodPost, "/v1/payments/q-1", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		r, _ := newPaymentRouter(t, false)
		if w := doJSON(r, http.MethodPost, "/v1/payments/q-1", `{"mp_payload":null}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode", func(t *testing.T) {
		r, uc := newPaymentRouter(t, true)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", entities.PaymentPlanMonthly, json.RawMessage("{}")).
			Return(entities.QuotePayment{ID: "pay-1", QuoteID: "q-1", Status: entities.PaymentStatusAprobado}, nil)

		if w := doJSON(r, http.MethodPost, "/v1/payments/q-1", "{"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unwraps envelope and reads plan", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", entities.PaymentPlanAnnual, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, _ entities.PaymentPlan, payload json.RawMessage) (entities.QuotePayment, error) {
				var m map[string]interface{}
				if err := json.Unmarshal(payload, &m); err != nil || m["token"] != "tok" {
					t.Fatalf("unexpected payload forwarded: %s", payload)
				}
				return entities.QuotePayment{ID: "pay-1", QuoteID: "q-1", Plan: entities.PaymentPlanAnnual, Amount: 16356}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/payments/q-1?plan=anual", `{"mp_payload":{"token":"tok"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"quote not approved", usecase.ErrQuoteNotApproved, http.StatusConflict},
		{"nothing to charge", usecase.ErrNothingToCharge, http.StatusConflict},
		{"catalog not ready", usecase.ErrCatalogNotReady, http.StatusServiceUnavailable},
		{"quote not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"invalid plan", usecase.ErrInvalidPaymentPlan, http.StatusBadRequest},
		{"gateway unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"gateway missing", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t, false)
			uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).Return(entities.QuotePayment{}, tc.err)

			if w := doJSON(r, http.MethodPost, "/v1/payments/q-1", `{}`); w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestQuotePaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)

		if w := doJSON(r, http.MethodGet, "/v1/payments/q-1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest wins", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{
			{ID: "pay-old", QuoteID: "q-1", Date: old},
			{ID: "pay-new", QuoteID: "q-1", Date: old.Add(time.Hour)},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-new" {
			t.Fatalf("expected latest payment, got %v", body["id"])
		}
	})

	t.Run("history", func(t *testing.T) {
		r, uc := newPaymentRouter(t, false)
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{{ID: "a"}, {ID: "b"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/q-1/history", "")
		var body []map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestQuotePaymentHandler_GetPayment(t *testing.T) {
	r, uc := newPaymentRouter(t, false)
	uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.QuotePayment{ID: "pay-1", QuoteID: "q-1"}, nil).Times(2)

	if w := doJSON(r, http.MethodGet, "/v1/payments/q-1/pay-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/payments/q-2/pay-1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for payment of another quote, got %d", w.Code)
	}
}
