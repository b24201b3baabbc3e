package pricing

import (
	"github.com/shopspring/decimal"

	"crm_cotizador/internal/domain/entities"
)

// quoteTotals aggregates the priced modules with the quote level extras,
// discounts and VAT. months is metadata only and does not scale the totals.
func quoteTotals(q entities.Quote, rates entities.ExtraRates) entities.QuoteTotals {
	supMonthly, supAnual := decimal.Zero, decimal.Zero
	for _, m := range q.ModuleDetails {
		if !m.IsActive {
			continue
		}
		supMonthly = supMonthly.Add(dec(m.MonthlyPrice))
		supAnual = supAnual.Add(dec(m.AnnualPrice))
	}

	extraUsers := count(q.NumberOfExtraUsers).Mul(floorZero(dec(rates.ExtraUserMonthly)))
	stamps := decimal.Zero
	if q.RequiresStamps {
		stamps = count(q.NumberOfExtraRings).Mul(floorZero(dec(rates.ExtraStampMonthly)))
	}

	gross := supMonthly.Add(extraUsers).Add(stamps)
	discountMonthly := gross.Mul(clampPercent(q.MonthlyDiscount)).Div(hundred)
	subMonthly := floorZero(gross.Sub(discountMonthly))
	ivaMonthly := subMonthly.Mul(ivaRate)

	discountAnual := supAnual.Mul(clampPercent(q.AnualDiscount)).Div(hundred)
	subAnual := floorZero(supAnual.Sub(discountAnual))
	ivaAnual := subAnual.Mul(ivaRate)

	return entities.QuoteTotals{
		ModuleSupTotalMonthly:   toMoney(supMonthly),
		ModuleSupTotalAnual:     toMoney(supAnual),
		AmountExtraUsersMonthly: toMoney(extraUsers),
		AmountStampMonthly:      toMoney(stamps),
		AmountDiscountMonthly:   toMoney(discountMonthly),
		SubTotalMonthly:         toMoney(subMonthly),
		IvaMonthly:              toMoney(ivaMonthly),
		TotalMonthly:            toMoney(subMonthly.Add(ivaMonthly)),
		AmountDiscountAnual:     toMoney(discountAnual),
		SubTotalAnual:           toMoney(subAnual),
		IvaAnual:                toMoney(ivaAnual),
		TotalAnual:              toMoney(subAnual.Add(ivaAnual)),
	}
}
