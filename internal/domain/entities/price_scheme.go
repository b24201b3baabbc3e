package entities

// PriceSchemeEntry is one employee-count tier of pricing for one module.
//
// Tier prices already cover the whole bracket; they are not multiplied by the
// employee count. MaxEmployees <= 0 means the tier has no upper bound.
type PriceSchemeEntry struct {
	ModuleID         string  `json:"moduleId"`
	MinEmployees     int     `json:"minEmployees"`
	MaxEmployees     int     `json:"maxEmployees"`
	MonthlyUnitPrice float64 `json:"monthlyUnitPrice"`
	AnnualUnitPrice  float64 `json:"annualUnitPrice"`
	StampAllotment   int     `json:"stampAllotment"`
}

// ExtraRates are the flat monthly surcharges that are not tied to a module.
type ExtraRates struct {
	ExtraUserMonthly  float64 `json:"extraUserMonthly"`
	ExtraStampMonthly float64 `json:"extraStampMonthly"`
}

// PriceScheme is the full catalog as supplied by the catalog provider.
type PriceScheme struct {
	Entries []PriceSchemeEntry `json:"entries"`
	Rates   ExtraRates         `json:"rates"`
}
