package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "crm_cotizador/internal/adapter/http/dto/request"
	response "crm_cotizador/internal/adapter/http/dto/response"
	"crm_cotizador/internal/usecase"
	"crm_cotizador/pkg"
)

// QuotePaymentHandler handles HTTP requests for the first charge of an
// approved quote.
type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
	logger  *zap.Logger
	// mock accepts unreadable payloads and lets the use case fake the gateway.
	mock bool
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, mock bool, logger *zap.Logger) *QuotePaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotePaymentHandler{usecase: uc, logger: logger, mock: mock}
}

// CreatePaymentByQuoteID charges an approved quote through Mercado Pago.
//
// @Summary Charge an approved quote
// @Tags Payments
// @Accept json
// @Produce json
// @Param quote_id path string true "Quote id"
// @Param plan query string false "mensual (default) or anual"
// @Param payment body request.QuotePaymentCreateRequest false "Mercado Pago payment payload"
// @Success 200 {object} response.QuotePaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /payments/{quote_id} [post]
func (h *QuotePaymentHandler) CreatePaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	plan := request.ResolvePlan(c.Query("plan"))
	log := h.logger.With(zap.String("quote_id", quoteID), zap.String("plan", string(plan)))
	log.Debug("create payment start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mock {
			log.Info("payload invalid in mock mode; fallback to empty payload", zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			log.Info("invalid payment payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteID, plan, mpPayload)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Error("create payment failed", zap.Error(err))
		} else {
			log.Info("create payment rejected", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("create payment success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetPaymentByQuoteID returns the latest payment for a quote.
//
// @Summary Latest payment of a quote
// @Tags Payments
// @Produce json
// @Param quote_id path string true "Quote id"
// @Success 200 {object} response.QuotePaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{quote_id} [get]
func (h *QuotePaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		h.logger.Info("get payment by quote failed", zap.String("quote_id", quoteID), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// ListPaymentsByQuoteID returns every payment attempt for a quote.
//
// @Summary Payment history of a quote
// @Tags Payments
// @Produce json
// @Param quote_id path string true "Quote id"
// @Success 200 {array} response.QuotePaymentResponse
// @Router /payments/{quote_id}/history [get]
func (h *QuotePaymentHandler) ListPaymentsByQuoteID(c *gin.Context) {
	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.QuotePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, response.FromQuotePayment(p))
	}
	c.JSON(http.StatusOK, out)
}

// GetPayment returns one payment of a quote.
//
// @Summary Get a payment
// @Tags Payments
// @Produce json
// @Param quote_id path string true "Quote id"
// @Param payment_id path string true "Payment id"
// @Success 200 {object} response.QuotePaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{quote_id}/{payment_id} [get]
func (h *QuotePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err == nil && p.QuoteID != strings.TrimSpace(c.Param("quote_id")) {
		err = usecase.ErrQuotePaymentNotFound
	}
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(p))
}

// readMPPayload accepts either the bare Mercado Pago payload or one wrapped
// in {"mp_payload": ...}. An empty body is an empty object.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req request.QuotePaymentCreateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			wrapped := strings.TrimSpace(string(req.MPPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return req.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentPlan):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_PLAN", "Plan must be mensual or anual", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCatalogNotReady), errors.Is(err, usecase.ErrInvalidPriceScheme):
		return pkg.NewDomainError("CATALOG_NOT_READY", "Price catalog not available", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Quote total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
