package pricing

import (
	"crm_cotizador/internal/domain/entities"
)

// NewQuote returns the form shown for a new quote: every catalog module
// inactive, every product at quantity 0 and a one month term.
func NewQuote() entities.Quote {
	return entities.Quote{
		Months:         1,
		ModuleDetails:  entities.InitialModules(),
		ProductDetails: entities.InitialProducts(),
	}
}

// MergeStored lays a stored quote over the fixed local catalog. Lines are
// matched by id; stored lines unknown locally are dropped and local lines
// missing from the record stay inactive with quantity 0. Names and unit prices
// always come from the local catalog.
func MergeStored(stored entities.Quote) entities.Quote {
	out := stored.Clone()
	if out.Months < 1 {
		out.Months = 1
	}

	modules := entities.InitialModules()
	for i := range modules {
		if j := stored.Module(modules[i].ModuleID); j >= 0 {
			src := stored.ModuleDetails[j]
			modules[i].IsActive = src.IsActive
			modules[i].EmployeeNumber = max(src.EmployeeNumber, 0)
			modules[i].MonthlyPrice = src.MonthlyPrice
			modules[i].AnnualPrice = src.AnnualPrice
			modules[i].Stamp = src.Stamp
			modules[i].PricingAvailable = src.PricingAvailable
		}
	}
	out.ModuleDetails = modules

	products := entities.InitialProducts()
	for i := range products {
		if j := stored.Product(products[i].ProductID); j >= 0 {
			products[i].Quantity = max(stored.ProductDetails[j].Quantity, 0)
			products[i].Total = stored.ProductDetails[j].Total
		}
	}
	out.ProductDetails = products
	return out
}
