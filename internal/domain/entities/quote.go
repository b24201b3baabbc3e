package entities

import "time"

// QuoteStatus represents the lifecycle of a price quote (cotización).
//
// Quotes are created as pendiente and are closed by a sales action:
// the client approves, rejects, or the seller cancels it.
type QuoteStatus string

const (
	QuoteStatusPendiente QuoteStatus = "pendiente"
	QuoteStatusAprobada  QuoteStatus = "aprobada"
	QuoteStatusRechazada QuoteStatus = "rechazada"
	QuoteStatusCancelada QuoteStatus = "cancelada"
)

// ModuleDetail is the per-quote state of one contractible module.
//
// MonthlyPrice, AnnualPrice, Stamp and PricingAvailable are derived by the
// pricing engine and overwritten on every recalculation.
type ModuleDetail struct {
	ModuleID         string  `json:"moduleId"`
	Name             string  `json:"name"`
	IsActive         bool    `json:"isActive"`
	EmployeeNumber   int     `json:"employeeNumber"`
	MonthlyPrice     float64 `json:"monthlyPrice"`
	AnnualPrice      float64 `json:"annualPrice"`
	Stamp            int     `json:"stamp"`
	PricingAvailable bool    `json:"pricingAvailable"`
}

// ProductDetail is a one-time hardware line item. Total is derived.
type ProductDetail struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// QuoteTotals holds the derived monthly and annual subscription totals.
type QuoteTotals struct {
	ModuleSupTotalMonthly   float64 `json:"moduleSupTotalMonthly"`
	ModuleSupTotalAnual     float64 `json:"moduleSupTotalAnual"`
	AmountExtraUsersMonthly float64 `json:"amountExtraUsersMonthly"`
	AmountStampMonthly      float64 `json:"amountStampMonthly"`
	AmountDiscountMonthly   float64 `json:"amountDiscountMonthly"`
	SubTotalMonthly         float64 `json:"subTotalMonthly"`
	IvaMonthly              float64 `json:"ivaMonthly"`
	TotalMonthly            float64 `json:"totalMonthly"`
	AmountDiscountAnual     float64 `json:"amountDiscountAnual"`
	SubTotalAnual           float64 `json:"subTotalAnual"`
	IvaAnual                float64 `json:"ivaAnual"`
	TotalAnual              float64 `json:"totalAnual"`
}

// ProductTotals holds the derived one-time hardware totals.
type ProductTotals struct {
	SubTotalProducts float64 `json:"subTotalProducts"`
	IvaProducts      float64 `json:"ivaProducts"`
	TotalProducts    float64 `json:"totalProducts"`
}

// Quote is the aggregate root edited by sales staff.
//
// Identifying fields are opaque to the pricing engine. Every field in
// QuoteTotals and ProductTotals is a pure function of the remaining fields and
// the price scheme catalog.
type Quote struct {
	ID          string      `json:"id"`
	Folio       string      `json:"folio"`
	CompanyName string      `json:"companyName"`
	ClientName  string      `json:"clientName"`
	ClientEmail string      `json:"clientEmail"`
	EmployeeID  string      `json:"employeeId"`
	SellerID    string      `json:"sellerId"`
	SellerName  string      `json:"sellerName"`
	Status      QuoteStatus `json:"status"`

	MonthlyDiscount float64 `json:"monthlyDiscount"`
	AnualDiscount   float64 `json:"anualDiscount"`
	Months          int     `json:"months"`

	NumberOfExtraUsers int  `json:"numberOfExtraUsers"`
	RequiresStamps     bool `json:"requiresStamps"`
	NumberOfExtraRings int  `json:"numberOfExtraRings"`

	ModuleDetails  []ModuleDetail  `json:"moduleDetails"`
	ProductDetails []ProductDetail `json:"productDetails"`

	QuoteTotals
	ProductTotals

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Module returns the index of the module with the given id, or -1.
func (q Quote) Module(moduleID string) int {
	for i, m := range q.ModuleDetails {
		if m.ModuleID == moduleID {
			return i
		}
	}
	return -1
}

// Product returns the index of the product with the given id, or -1.
func (q Quote) Product(productID string) int {
	for i, p := range q.ProductDetails {
		if p.ProductID == productID {
			return i
		}
	}
	return -1
}

// IsModuleActive reports whether the module exists in the quote and is active.
func (q Quote) IsModuleActive(moduleID string) bool {
	i := q.Module(moduleID)
	return i >= 0 && q.ModuleDetails[i].IsActive
}

// Clone returns a copy that shares no slices with q.
func (q Quote) Clone() Quote {
	out := q
	if q.ModuleDetails != nil {
		out.ModuleDetails = make([]ModuleDetail, len(q.ModuleDetails))
		copy(out.ModuleDetails, q.ModuleDetails)
	}
	if q.ProductDetails != nil {
		out.ProductDetails = make([]ProductDetail, len(q.ProductDetails))
		copy(out.ProductDetails, q.ProductDetails)
	}
	return out
}
