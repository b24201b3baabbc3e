package pricing

import (
	"github.com/shopspring/decimal"

	"crm_cotizador/internal/domain/entities"
)

// priceProducts overwrites each line total in place. Lines with quantity 0 stay
// in the slice with a zero total.
func priceProducts(products []entities.ProductDetail) entities.ProductTotals {
	sub := decimal.Zero
	for i := range products {
		p := &products[i]
		if p.Quantity <= 0 {
			p.Total = 0
			continue
		}
		line := floorZero(count(p.Quantity).Mul(dec(p.Price)))
		p.Total = toMoney(line)
		sub = sub.Add(line)
	}
	iva := sub.Mul(ivaRate)
	return entities.ProductTotals{
		SubTotalProducts: toMoney(sub),
		IvaProducts:      toMoney(iva),
		TotalProducts:    toMoney(sub.Add(iva)),
	}
}
