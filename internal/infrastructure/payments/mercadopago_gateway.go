package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"

	appconfig "crm_cotizador/internal/infrastructure/config"
	"crm_cotizador/internal/usecase/interfaces"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// paymentCreator is the part of the SDK payment client the gateway calls.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway creates quote charges through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client  paymentCreator
	sandbox bool
	logger  *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.AccessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, err
	}
	g := &MercadoPagoGateway{
		client:  payment.NewClient(sdkCfg),
		sandbox: cfg.SandboxToken(),
		logger:  logger.Named("mercadopago"),
	}
	g.logger.Info("client initialized", zap.Bool("sandbox", g.sandbox))
	return g, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, request json.RawMessage) (interfaces.GatewayPayment, error) {
	if g == nil || g.client == nil {
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.Debug("create start", zap.Int("payload_len", len(request)))

	var req payment.Request
	if err := json.Unmarshal(request, &req); err != nil {
		return interfaces.GatewayPayment{}, fmt.Errorf("decode payment request: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("sdk create failed", zap.Bool("sandbox", g.sandbox), zap.Error(err))
		return interfaces.GatewayPayment{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	out := interfaces.GatewayPayment{
		ProviderID: fmt.Sprintf("%d", resp.ID),
		Status:     resp.Status,
		Response:   b,
	}
	g.logger.Info("create success",
		zap.String("provider_payment_id", out.ProviderID),
		zap.String("provider_status", out.Status),
	)
	return out, nil
}
