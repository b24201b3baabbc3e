package pricing

import (
	"crm_cotizador/internal/domain/entities"
)

// Report describes conditions the engine recovered from while calculating.
// None of them is an error: the returned quote is always complete.
type Report struct {
	// CatalogReady is false when totals were passed through unchanged.
	CatalogReady bool
	// MissingTiers lists active modules whose employee count matched no tier.
	MissingTiers []string
}

// Calculator is the single recalculation entry point. It is pure: the same
// quote and catalog always produce the same result, and inputs are never
// mutated.
type Calculator struct {
	catalog *Catalog
}

func NewCalculator(catalog *Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

func (c *Calculator) Ready() bool {
	return c != nil && c.catalog.Ready()
}

// CalculateTotals applies the module rules and recomputes the monthly and
// annual totals. While the catalog is not loaded the quote is returned as is.
func (c *Calculator) CalculateTotals(q entities.Quote) entities.Quote {
	out, _ := c.calculateTotals(q)
	return out
}

// CalculateProducts recomputes product line totals and the one-time totals.
func (c *Calculator) CalculateProducts(q entities.Quote) entities.Quote {
	out := q.Clone()
	out.ProductTotals = priceProducts(out.ProductDetails)
	return out
}

// Recalculate runs CalculateTotals and CalculateProducts in sequence.
func (c *Calculator) Recalculate(q entities.Quote) entities.Quote {
	out, _ := c.Evaluate(q)
	return out
}

// Evaluate is Recalculate plus a report of the recovered conditions.
func (c *Calculator) Evaluate(q entities.Quote) (entities.Quote, Report) {
	out, report := c.calculateTotals(q)
	return c.CalculateProducts(out), report
}

func (c *Calculator) calculateTotals(q entities.Quote) (entities.Quote, Report) {
	if !c.Ready() {
		return q, Report{}
	}
	out := q.Clone()
	enforceModuleRules(&out)
	missing := priceModules(out.ModuleDetails, c.catalog)
	out.QuoteTotals = quoteTotals(out, c.catalog.Rates())
	return out, Report{CatalogReady: true, MissingTiers: missing}
}
