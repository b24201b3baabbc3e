package response

import (
	"encoding/json"
	"testing"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
)

func TestFromQuote_RoundsMoney(t *testing.T) {
	q := entities.Quote{
		ID:              "q-1",
		CompanyName:     "ACME",
		MonthlyDiscount: 10.555,
		ModuleDetails: []entities.ModuleDetail{
			{ModuleID: entities.ModuleNomina, IsActive: true, EmployeeNumber: 60, MonthlyPrice: 900.004},
		},
		ProductDetails: []entities.ProductDetail{
			{ProductID: entities.ProductReloj, Price: 4500, Quantity: 1, Total: 4500.005},
		},
		QuoteTotals:   entities.QuoteTotals{IvaMonthly: 175.6799999, TotalMonthly: 1273.675},
		ProductTotals: entities.ProductTotals{TotalProducts: 5220.0000001},
	}

	res := FromQuote(q)
	if res.MonthlyDiscount != 10.56 {
		t.Fatalf("unexpected discount: %v", res.MonthlyDiscount)
	}
	if res.ModuleDetails[0].MonthlyPrice != 900 || res.ProductDetails[0].Total != 4500.01 {
		t.Fatalf("unexpected lines: %+v %+v", res.ModuleDetails[0], res.ProductDetails[0])
	}
	if res.IvaMonthly != 175.68 || res.TotalMonthly != 1273.68 || res.TotalProducts != 5220 {
		t.Fatalf("unexpected totals: %+v %+v", res.QuoteTotals, res.ProductTotals)
	}
	if q.ModuleDetails[0].MonthlyPrice != 900.004 {
		t.Fatalf("input must not be modified")
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var flat map[string]interface{}
	if err := json.Unmarshal(raw, &flat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flat["totalMonthly"] != 1273.68 || flat["companyName"] != "ACME" {
		t.Fatalf("expected flat camelCase payload, got %s", raw)
	}
}

func TestFromQuote_EmptyLinesAreArrays(t *testing.T) {
	raw, err := json.Marshal(FromQuote(entities.Quote{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var flat map[string]interface{}
	_ = json.Unmarshal(raw, &flat)
	if _, ok := flat["moduleDetails"].([]interface{}); !ok {
		t.Fatalf("expected moduleDetails array, got %s", raw)
	}
}

func TestFromQuoteDocument(t *testing.T) {
	doc := pricing.QuoteDocument{
		Folio:    "COT-1",
		Modules:  []entities.ModuleDetail{{ModuleID: entities.ModuleNomina, MonthlyPrice: 580.004}},
		Products: nil,
	}
	doc.TotalAnual = 16356.0049

	res := FromQuoteDocument(doc)
	if res.Folio != "COT-1" || res.Modules[0].MonthlyPrice != 580 || res.TotalAnual != 16356 {
		t.Fatalf("unexpected document: %+v", res)
	}
	if res.Products == nil {
		t.Fatalf("expected empty products slice")
	}
}

func TestFromPriceScheme(t *testing.T) {
	empty := FromPriceScheme(entities.PriceScheme{})
	if empty.Ready || empty.Entries == nil {
		t.Fatalf("unexpected empty scheme: %+v", empty)
	}

	res := FromPriceScheme(entities.PriceScheme{
		Entries: []entities.PriceSchemeEntry{{ModuleID: entities.ModuleNomina, MinEmployees: 1}},
		Rates:   entities.ExtraRates{ExtraUserMonthly: 99},
	})
	if !res.Ready || len(res.Entries) != 1 || res.Rates.ExtraUserMonthly != 99 {
		t.Fatalf("unexpected scheme: %+v", res)
	}
}
