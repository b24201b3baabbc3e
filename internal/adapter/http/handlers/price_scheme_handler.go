package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "crm_cotizador/internal/adapter/http/dto/response"
	"crm_cotizador/internal/usecase"
)

// PriceSchemeHandler exposes the loaded price catalog.
type PriceSchemeHandler struct {
	usecase usecase.IPriceCatalogUseCase
	logger  *zap.Logger
}

func NewPriceSchemeHandler(uc usecase.IPriceCatalogUseCase, logger *zap.Logger) *PriceSchemeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceSchemeHandler{usecase: uc, logger: logger}
}

// GetPriceScheme returns the tiers and extra rates the engine prices with.
//
// @Summary Current price scheme
// @Tags Price schemes
// @Produce json
// @Success 200 {object} response.PriceSchemeResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /price-schemes [get]
func (h *PriceSchemeHandler) GetPriceScheme(c *gin.Context) {
	s, err := h.usecase.Entries(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		h.logger.Warn("price scheme unavailable", zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceScheme(s))
}

// RefreshPriceScheme drops the cached catalog and loads it again.
//
// @Summary Reload the price scheme
// @Tags Price schemes
// @Produce json
// @Success 200 {object} response.PriceSchemeResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /price-schemes/refresh [post]
func (h *PriceSchemeHandler) RefreshPriceScheme(c *gin.Context) {
	if err := h.usecase.Invalidate(c.Request.Context()); err != nil {
		h.logger.Warn("price scheme cache invalidation failed", zap.Error(err))
	}
	h.GetPriceScheme(c)
}
