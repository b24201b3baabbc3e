package request

import (
	"strings"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
)

type ModuleDetailRequest struct {
	ModuleID         string     `json:"moduleId"`
	Name             string     `json:"name"`
	IsActive         FlexBool   `json:"isActive"`
	EmployeeNumber   FlexCount  `json:"employeeNumber"`
	MonthlyPrice     FlexNumber `json:"monthlyPrice"`
	AnnualPrice      FlexNumber `json:"annualPrice"`
	Stamp            FlexCount  `json:"stamp"`
	PricingAvailable FlexBool   `json:"pricingAvailable"`
}

type ProductDetailRequest struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	Price     FlexNumber `json:"price"`
	Quantity  FlexCount  `json:"quantity"`
	Total     FlexNumber `json:"total"`
}

// QuoteRequest is the quote as held by the editor form.
//
// Derived prices and totals are accepted so a quote can be echoed back while
// the price catalog is unavailable; they are recomputed whenever it is ready.
type QuoteRequest struct {
	ID          string `json:"id"`
	Folio       string `json:"folio"`
	CompanyName string `json:"companyName"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	EmployeeID  string `json:"employeeId"`
	SellerID    string `json:"sellerId"`

	MonthlyDiscount FlexNumber `json:"monthlyDiscount"`
	AnualDiscount   FlexNumber `json:"anualDiscount"`
	Months          FlexCount  `json:"months"`

	NumberOfExtraUsers FlexCount `json:"numberOfExtraUsers"`
	RequiresStamps     FlexBool  `json:"requiresStamps"`
	NumberOfExtraRings FlexCount `json:"numberOfExtraRings"`

	ModuleDetails  []ModuleDetailRequest  `json:"moduleDetails"`
	ProductDetails []ProductDetailRequest `json:"productDetails"`

	entities.QuoteTotals
	entities.ProductTotals
}

// ToQuote maps the form into a quote entity. Status, seller name and
// timestamps are owned by the server and never read from the request.
func (r QuoteRequest) ToQuote() entities.Quote {
	q := entities.Quote{
		ID:                 strings.TrimSpace(r.ID),
		Folio:              strings.TrimSpace(r.Folio),
		CompanyName:        strings.TrimSpace(r.CompanyName),
		ClientName:         strings.TrimSpace(r.ClientName),
		ClientEmail:        strings.TrimSpace(r.ClientEmail),
		EmployeeID:         strings.TrimSpace(r.EmployeeID),
		SellerID:           strings.TrimSpace(r.SellerID),
		MonthlyDiscount:    float64(r.MonthlyDiscount),
		AnualDiscount:      float64(r.AnualDiscount),
		Months:             int(r.Months),
		NumberOfExtraUsers: int(r.NumberOfExtraUsers),
		RequiresStamps:     bool(r.RequiresStamps),
		NumberOfExtraRings: int(r.NumberOfExtraRings),
		QuoteTotals:        r.QuoteTotals,
		ProductTotals:      r.ProductTotals,
	}
	for _, m := range r.ModuleDetails {
		q.ModuleDetails = append(q.ModuleDetails, entities.ModuleDetail{
			ModuleID:         strings.TrimSpace(m.ModuleID),
			Name:             m.Name,
			IsActive:         bool(m.IsActive),
			EmployeeNumber:   int(m.EmployeeNumber),
			MonthlyPrice:     float64(m.MonthlyPrice),
			AnnualPrice:      float64(m.AnnualPrice),
			Stamp:            int(m.Stamp),
			PricingAvailable: bool(m.PricingAvailable),
		})
	}
	for _, p := range r.ProductDetails {
		q.ProductDetails = append(q.ProductDetails, entities.ProductDetail{
			ProductID: strings.TrimSpace(p.ProductID),
			Name:      p.Name,
			Price:     float64(p.Price),
			Quantity:  int(p.Quantity),
			Total:     float64(p.Total),
		})
	}
	return q
}

// QuoteEditRequest carries the current form plus the single field that changed.
type QuoteEditRequest struct {
	Quote    QuoteRequest `json:"quote"`
	Kind     string       `json:"kind" binding:"required"`
	TargetID string       `json:"targetId"`
	Value    FlexText     `json:"value"`
}

func (r QuoteEditRequest) ToEdit() pricing.Edit {
	return pricing.Edit{
		Kind:     pricing.EditKind(strings.TrimSpace(r.Kind)),
		TargetID: strings.TrimSpace(r.TargetID),
		Value:    string(r.Value),
	}
}
