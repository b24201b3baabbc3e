package response

import "crm_cotizador/internal/domain/entities"

type PriceSchemeResponse struct {
	Ready   bool                        `json:"ready"`
	Entries []entities.PriceSchemeEntry `json:"entries"`
	Rates   entities.ExtraRates         `json:"rates"`
}

func FromPriceScheme(s entities.PriceScheme) PriceSchemeResponse {
	entries := s.Entries
	if entries == nil {
		entries = []entities.PriceSchemeEntry{}
	}
	return PriceSchemeResponse{
		Ready:   len(s.Entries) > 0,
		Entries: entries,
		Rates:   s.Rates,
	}
}
