package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusRechazado PaymentStatus = "rechazado"
)

// PaymentPlan selects which subscription total is charged together with the
// one-time hardware total.
type PaymentPlan string

const (
	PaymentPlanMonthly PaymentPlan = "mensual"
	PaymentPlanAnnual  PaymentPlan = "anual"
)

// QuotePayment is the first charge of an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// MPPayloadRaw keeps the Mercado Pago response body for traceability; MPPayload
// is its parsed form.
type QuotePayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Plan    PaymentPlan   `json:"plan"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
