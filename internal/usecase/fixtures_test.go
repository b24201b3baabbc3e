package usecase

import (
	"crm_cotizador/internal/domain/entities"
)

func testScheme() entities.PriceScheme {
	return entities.PriceScheme{
		Entries: []entities.PriceSchemeEntry{
			{ModuleID: entities.ModuleNomina, MinEmployees: 1, MaxEmployees: 50, MonthlyUnitPrice: 500, AnnualUnitPrice: 5000, StampAllotment: 60},
			{ModuleID: entities.ModuleNomina, MinEmployees: 51, MaxEmployees: 0, MonthlyUnitPrice: 900, AnnualUnitPrice: 9000, StampAllotment: 250},
			{ModuleID: entities.ModulePrenomina, MinEmployees: 1, MaxEmployees: 0, MonthlyUnitPrice: 300, AnnualUnitPrice: 3000},
		},
		Rates: entities.ExtraRates{ExtraUserMonthly: 99, ExtraStampMonthly: 2.5},
	}
}

// formWith returns a bare client form with the given modules switched on.
func formWith(company string, active map[string]int) entities.Quote {
	q := entities.Quote{CompanyName: company, Months: 1}
	for id, employees := range active {
		q.ModuleDetails = append(q.ModuleDetails, entities.ModuleDetail{ModuleID: id, IsActive: true, EmployeeNumber: employees})
	}
	return q
}
