package pricing

import (
	"crm_cotizador/internal/domain/entities"
)

func testCatalog() *Catalog {
	return NewCatalog([]entities.PriceSchemeEntry{
		{ModuleID: entities.ModuleNomina, MinEmployees: 51, MaxEmployees: 200, MonthlyUnitPrice: 900, AnnualUnitPrice: 9000, StampAllotment: 250},
		{ModuleID: entities.ModuleNomina, MinEmployees: 1, MaxEmployees: 50, MonthlyUnitPrice: 500, AnnualUnitPrice: 5000, StampAllotment: 60},
		{ModuleID: entities.ModuleNomina, MinEmployees: 201, MaxEmployees: 0, MonthlyUnitPrice: 1500, AnnualUnitPrice: 15000, StampAllotment: 600},
		{ModuleID: entities.ModulePrenomina, MinEmployees: 1, MaxEmployees: 50, MonthlyUnitPrice: 300, AnnualUnitPrice: 3000},
		{ModuleID: entities.ModulePrenomina, MinEmployees: 51, MaxEmployees: 0, MonthlyUnitPrice: 600, AnnualUnitPrice: 6000},
		{ModuleID: entities.ModuleAsistencia, MinEmployees: 1, MaxEmployees: 100, MonthlyUnitPrice: 250, AnnualUnitPrice: 2500},
	}, entities.ExtraRates{ExtraUserMonthly: 99, ExtraStampMonthly: 2.5})
}

// quoteWith returns a new quote with the given modules switched on.
func quoteWith(active map[string]int) entities.Quote {
	q := NewQuote()
	for id, employees := range active {
		i := q.Module(id)
		q.ModuleDetails[i].IsActive = true
		q.ModuleDetails[i].EmployeeNumber = employees
	}
	return q
}
