package pricing

import (
	"crm_cotizador/internal/domain/entities"
)

// exclusiveWith lists module pairs that can never be active together.
var exclusiveWith = map[string]string{
	entities.ModuleNomina:    entities.ModulePrenomina,
	entities.ModulePrenomina: entities.ModuleNomina,
}

// setModuleActive toggles a module in place and applies the side effects of the
// toggle in the same update: the exclusive partner is switched off when the
// module is activated, and stamp extras are cleared when NOMINA goes off.
func setModuleActive(q *entities.Quote, idx int, active bool) {
	m := &q.ModuleDetails[idx]
	m.IsActive = active
	if active {
		if partner, ok := exclusiveWith[m.ModuleID]; ok {
			if p := q.Module(partner); p >= 0 {
				q.ModuleDetails[p].IsActive = false
			}
		}
	}
	enforceModuleRules(q)
}

// enforceModuleRules restores the module invariants on a form that carries no
// toggle history. If both NOMINA and PRENOMINA are active, NOMINA is kept.
func enforceModuleRules(q *entities.Quote) {
	if q.IsModuleActive(entities.ModuleNomina) {
		if p := q.Module(entities.ModulePrenomina); p >= 0 {
			q.ModuleDetails[p].IsActive = false
		}
		return
	}
	q.RequiresStamps = false
	q.NumberOfExtraRings = 0
}

// priceModules overwrites the derived fields of every module and returns the
// ids of active modules with no matching tier.
func priceModules(modules []entities.ModuleDetail, c *Catalog) []string {
	var missing []string
	for i := range modules {
		m := &modules[i]
		m.MonthlyPrice, m.AnnualPrice, m.Stamp = 0, 0, 0
		if !m.IsActive {
			m.PricingAvailable = false
			continue
		}
		tier, ok := c.FindTier(m.ModuleID, m.EmployeeNumber)
		m.PricingAvailable = ok
		if !ok {
			missing = append(missing, m.ModuleID)
			continue
		}
		m.MonthlyPrice = toMoney(floorZero(dec(tier.MonthlyUnitPrice)))
		m.AnnualPrice = toMoney(floorZero(dec(tier.AnnualUnitPrice)))
		if tier.StampAllotment > 0 {
			m.Stamp = tier.StampAllotment
		}
	}
	return missing
}
