package response

import (
	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
)

// QuoteResponse is a quote with every money value rounded to cents.
type QuoteResponse struct {
	entities.Quote
}

func FromQuote(q entities.Quote) QuoteResponse {
	out := q.Clone()
	if out.ModuleDetails == nil {
		out.ModuleDetails = []entities.ModuleDetail{}
	}
	if out.ProductDetails == nil {
		out.ProductDetails = []entities.ProductDetail{}
	}
	out.MonthlyDiscount = pricing.Round2(out.MonthlyDiscount)
	out.AnualDiscount = pricing.Round2(out.AnualDiscount)
	roundModules(out.ModuleDetails)
	roundProducts(out.ProductDetails)
	out.QuoteTotals = roundQuoteTotals(out.QuoteTotals)
	out.ProductTotals = roundProductTotals(out.ProductTotals)
	return QuoteResponse{Quote: out}
}

// QuoteDocumentResponse is the export payload for a stored quote.
type QuoteDocumentResponse struct {
	pricing.QuoteDocument
}

func FromQuoteDocument(d pricing.QuoteDocument) QuoteDocumentResponse {
	out := d
	out.Modules = append([]entities.ModuleDetail{}, d.Modules...)
	out.Products = append([]entities.ProductDetail{}, d.Products...)
	out.MonthlyDiscount = pricing.Round2(out.MonthlyDiscount)
	out.AnualDiscount = pricing.Round2(out.AnualDiscount)
	roundModules(out.Modules)
	roundProducts(out.Products)
	out.QuoteTotals = roundQuoteTotals(out.QuoteTotals)
	out.ProductTotals = roundProductTotals(out.ProductTotals)
	return QuoteDocumentResponse{QuoteDocument: out}
}

func roundModules(ms []entities.ModuleDetail) {
	for i := range ms {
		ms[i].MonthlyPrice = pricing.Round2(ms[i].MonthlyPrice)
		ms[i].AnnualPrice = pricing.Round2(ms[i].AnnualPrice)
	}
}

func roundProducts(ps []entities.ProductDetail) {
	for i := range ps {
		ps[i].Price = pricing.Round2(ps[i].Price)
		ps[i].Total = pricing.Round2(ps[i].Total)
	}
}

func roundQuoteTotals(t entities.QuoteTotals) entities.QuoteTotals {
	return entities.QuoteTotals{
		ModuleSupTotalMonthly:   pricing.Round2(t.ModuleSupTotalMonthly),
		ModuleSupTotalAnual:     pricing.Round2(t.ModuleSupTotalAnual),
		AmountExtraUsersMonthly: pricing.Round2(t.AmountExtraUsersMonthly),
		AmountStampMonthly:      pricing.Round2(t.AmountStampMonthly),
		AmountDiscountMonthly:   pricing.Round2(t.AmountDiscountMonthly),
		SubTotalMonthly:         pricing.Round2(t.SubTotalMonthly),
		IvaMonthly:              pricing.Round2(t.IvaMonthly),
		TotalMonthly:            pricing.Round2(t.TotalMonthly),
		AmountDiscountAnual:     pricing.Round2(t.AmountDiscountAnual),
		SubTotalAnual:           pricing.Round2(t.SubTotalAnual),
		IvaAnual:                pricing.Round2(t.IvaAnual),
		TotalAnual:              pricing.Round2(t.TotalAnual),
	}
}

func roundProductTotals(t entities.ProductTotals) entities.ProductTotals {
	return entities.ProductTotals{
		SubTotalProducts: pricing.Round2(t.SubTotalProducts),
		IvaProducts:      pricing.Round2(t.IvaProducts),
		TotalProducts:    pricing.Round2(t.TotalProducts),
	}
}
