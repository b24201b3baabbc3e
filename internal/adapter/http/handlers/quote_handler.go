package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "crm_cotizador/internal/adapter/http/dto/request"
	response "crm_cotizador/internal/adapter/http/dto/response"
	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
	"crm_cotizador/internal/usecase"
	"crm_cotizador/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler serves the quote editor: live recalculation, persistence and
// the sales status actions.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	logger  *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, logger: logger}
}

// NewQuote returns an empty form with every module and product line.
//
// @Summary New quote form
// @Tags Quotes
// @Produce json
// @Success 200 {object} response.QuoteResponse
// @Router /quotes/new [get]
func (h *QuoteHandler) NewQuote(c *gin.Context) {
	q, err := h.usecase.New(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Calculate recomputes every derived field of the posted form.
//
// @Summary Recalculate quote totals
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body request.QuoteRequest true "Quote form"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /quotes/calculate [post]
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Calculate(c.Request.Context(), payload.ToQuote())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ApplyEdit applies a single field change and returns the recalculated form.
//
// @Summary Apply a form edit
// @Tags Quotes
// @Accept json
// @Produce json
// @Param edit body request.QuoteEditRequest true "Current form and edited field"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /quotes/edits [post]
func (h *QuoteHandler) ApplyEdit(c *gin.Context) {
	var payload request.QuoteEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.ApplyEdit(c.Request.Context(), payload.Quote.ToQuote(), payload.ToEdit())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CreateQuote stores the form as a new pending quote.
//
// @Summary Save a new quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body request.QuoteRequest true "Quote form"
// @Success 201 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), payload.ToQuote())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// UpdateQuote replaces the editable fields of a pending quote.
//
// @Summary Update a pending quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote id"
// @Param quote body request.QuoteRequest true "Quote form"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToQuote())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetQuote loads a stored quote, recalculated against the current catalog.
//
// @Summary Get a quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetQuoteDocument returns the export payload with contracted lines only.
//
// @Summary Quote document data
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote id"
// @Success 200 {object} response.QuoteDocumentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotes/{id}/document [get]
func (h *QuoteHandler) GetQuoteDocument(c *gin.Context) {
	doc, err := h.usecase.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDocument(doc))
}

// @Summary Approve a quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ApproveByID)
}

// @Summary Reject a quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.RejectByID)
}

// @Summary Cancel a quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote id"
// @Success 200 {object} response.QuoteResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /quotes/{id}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.CancelByID)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	q, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) writeError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("quote request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuote):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownEdit), errors.Is(err, pricing.ErrUnknownTarget):
		return pkg.NewDomainErrorSimple("INVALID_EDIT", "Unknown field or line", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownSeller):
		return pkg.NewDomainErrorSimple("UNKNOWN_SELLER", "Seller not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteClosed):
		return pkg.NewDomainErrorSimple("QUOTE_CLOSED", "Quote is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogNotReady), errors.Is(err, usecase.ErrInvalidPriceScheme):
		return pkg.NewDomainError("PRICE_CATALOG_UNAVAILABLE", "Price catalog is not available", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
