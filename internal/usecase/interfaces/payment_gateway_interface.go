package interfaces

import (
	"context"
	"encoding/json"
)

// GatewayPayment is what the provider answered for one charge.
type GatewayPayment struct {
	ProviderID string
	Status     string
	// Response is the provider body, stored with the quote payment.
	Response json.RawMessage
}

// IPaymentGateway charges a quote through an external provider (Mercado Pago).
// The request is the provider payload already completed with the quote amount.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, request json.RawMessage) (GatewayPayment, error)
}
