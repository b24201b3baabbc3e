package routes

import (
	"github.com/gin-gonic/gin"

	"crm_cotizador/internal/adapter/http/handlers"
)

const (
	PathQuotes       = "/quotes"
	PathPayments     = "/payments"
	PathPriceSchemes = "/price-schemes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	if quoteHandler == nil {
		return
	}
	quotes := rg.Group(PathQuotes)
	{
		// Editor operations, nothing is stored.
		quotes.GET("/new", quoteHandler.NewQuote)
		quotes.POST("/calculate", quoteHandler.Calculate)
		quotes.POST("/edits", quoteHandler.ApplyEdit)

		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.GET("/:id/document", quoteHandler.GetQuoteDocument)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.QuotePaymentHandler) {
	if paymentHandler == nil {
		return
	}
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
		payments.GET("/:quote_id/history", paymentHandler.ListPaymentsByQuoteID)
		payments.GET("/:quote_id/:payment_id", paymentHandler.GetPayment)
	}
}

func addPriceSchemeRoutes(rg *gin.RouterGroup, priceSchemeHandler *handlers.PriceSchemeHandler) {
	if priceSchemeHandler == nil {
		return
	}
	schemes := rg.Group(PathPriceSchemes)
	{
		schemes.GET("", priceSchemeHandler.GetPriceScheme)
		schemes.POST("/refresh", priceSchemeHandler.RefreshPriceScheme)
	}
}
