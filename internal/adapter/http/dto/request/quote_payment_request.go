package request

import (
	"encoding/json"
	"strings"

	"crm_cotizador/internal/domain/entities"
)

// QuotePaymentCreateRequest is the payload for the "charge approved quote" route.
//
// `mp_payload` is forwarded as-is to support varying Mercado Pago schemas.
type QuotePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ResolvePlan maps the plan query parameter; empty means monthly.
func ResolvePlan(raw string) entities.PaymentPlan {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "mensual", "monthly":
		return entities.PaymentPlanMonthly
	case "anual", "annual", "yearly":
		return entities.PaymentPlanAnnual
	default:
		return entities.PaymentPlan(strings.ToLower(strings.TrimSpace(raw)))
	}
}
