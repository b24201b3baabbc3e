package pricing

import (
	"crm_cotizador/internal/domain/entities"
)

// QuoteDocument is the data handed to the document export collaborator.
// Only lines that are actually contracted are listed.
type QuoteDocument struct {
	Folio              string                   `json:"folio"`
	CompanyName        string                   `json:"companyName"`
	ClientName         string                   `json:"clientName"`
	SellerName         string                   `json:"sellerName"`
	Months             int                      `json:"months"`
	MonthlyDiscount    float64                  `json:"monthlyDiscount"`
	AnualDiscount      float64                  `json:"anualDiscount"`
	NumberOfExtraUsers int                      `json:"numberOfExtraUsers"`
	NumberOfExtraRings int                      `json:"numberOfExtraRings"`
	Modules            []entities.ModuleDetail  `json:"modules"`
	Products           []entities.ProductDetail `json:"products"`
	entities.QuoteTotals
	entities.ProductTotals
}

// BuildDocument keeps active modules with employees and products with a
// quantity; the editor still shows every line.
func BuildDocument(q entities.Quote) QuoteDocument {
	doc := QuoteDocument{
		Folio:              q.Folio,
		CompanyName:        q.CompanyName,
		ClientName:         q.ClientName,
		SellerName:         q.SellerName,
		Months:             q.Months,
		MonthlyDiscount:    q.MonthlyDiscount,
		AnualDiscount:      q.AnualDiscount,
		NumberOfExtraUsers: q.NumberOfExtraUsers,
		NumberOfExtraRings: q.NumberOfExtraRings,
		Modules:            []entities.ModuleDetail{},
		Products:           []entities.ProductDetail{},
		QuoteTotals:        q.QuoteTotals,
		ProductTotals:      q.ProductTotals,
	}
	for _, m := range q.ModuleDetails {
		if m.IsActive && m.EmployeeNumber > 0 {
			doc.Modules = append(doc.Modules, m)
		}
	}
	for _, p := range q.ProductDetails {
		if p.Quantity > 0 {
			doc.Products = append(doc.Products, p)
		}
	}
	if !q.RequiresStamps {
		doc.NumberOfExtraRings = 0
	}
	return doc
}
