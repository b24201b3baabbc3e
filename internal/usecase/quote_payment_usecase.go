package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
	"crm_cotizador/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuotePaymentNotFound           = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID          = errors.New("invalid quote_id")
	ErrInvalidPaymentPlan             = errors.New("invalid payment plan")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotApproved               = errors.New("quote not approved")
	ErrNothingToCharge                = errors.New("quote has nothing to charge")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions carries the Mercado Pago settings the use case needs.
type PaymentOptions struct {
	// Mock skips the external gateway and approves every payment.
	Mock bool
	// SandboxToken is true when the access token is a TEST- token.
	SandboxToken    bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IQuotePaymentUseCase charges the first period of an approved quote.
type IQuotePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, plan entities.PaymentPlan, mpPayload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	catalog   IPriceCatalogUseCase
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
	logger    *zap.Logger
	now       func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quoteRepo interfaces.IQuoteRepository, catalog IPriceCatalogUseCase, gateway interfaces.IPaymentGateway, opts PaymentOptions, logger *zap.Logger) *QuotePaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotePaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		catalog:   catalog,
		gateway:   gateway,
		opts:      opts,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ChargeAmount is what the first payment of a quote collects: the one-time
// hardware total plus the subscription total of the chosen plan.
func ChargeAmount(q entities.Quote, plan entities.PaymentPlan) float64 {
	subscription := q.TotalMonthly
	if plan == entities.PaymentPlanAnnual {
		subscription = q.TotalAnual
	}
	return pricing.Round2(q.TotalProducts + subscription)
}

func (u *QuotePaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, plan entities.PaymentPlan, mpPayload json.RawMessage) (entities.QuotePayment, error) {
	log := u.logger.With(zap.String("quote_id", strings.TrimSpace(quoteID)))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if plan == "" {
		plan = entities.PaymentPlanMonthly
	}
	if plan != entities.PaymentPlanMonthly && plan != entities.PaymentPlanAnnual {
		return entities.QuotePayment{}, ErrInvalidPaymentPlan
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Info("invalid payment payload")
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.quoteRepo == nil {
		return entities.QuotePayment{}, errors.New("quote repository not configured")
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Error("failed loading quote", zap.Error(err))
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAprobada {
		log.Info("quote not approved", zap.String("status", string(q.Status)))
		return entities.QuotePayment{}, ErrQuoteNotApproved
	}
	q, err = u.reprice(ctx, q)
	if err != nil {
		log.Warn("cannot price quote for payment", zap.Error(err))
		return entities.QuotePayment{}, err
	}
	amount := ChargeAmount(q, plan)
	if amount <= 0 {
		return entities.QuotePayment{}, ErrNothingToCharge
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.Mock {
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("missing payment_method_id")
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("missing or invalid payer")
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.Folio
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Cotización %s (%s)", q.Folio, plan)
	}
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	var result interfaces.GatewayPayment
	if u.opts.Mock {
		log.Info("payment gateway mock mode; skipping provider call")
		result, err = u.mockPayment(reqMap)
		if err != nil {
			return entities.QuotePayment{}, err
		}
	} else {
		result, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Warn("payment gateway failed", zap.Error(err))
			return entities.QuotePayment{}, classifyGatewayError(err)
		}
	}
	log.Info("payment gateway success", zap.String("provider_payment_id", result.ProviderID), zap.String("provider_status", result.Status))

	var parsed map[string]interface{}
	if err := json.Unmarshal(result.Response, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.QuotePayment{
		ID:           result.ProviderID,
		QuoteID:      quoteID,
		Plan:         plan,
		Amount:       amount,
		Date:         u.now(),
		Status:       paymentStatusFromProvider(result.Status),
		MPPayloadRaw: result.Response,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.QuotePayment{}, err
	}
	return created, nil
}

// reprice recalculates a stored quote against the current catalog, the same
// way the quote is shown to the client. Stored totals are never charged.
func (u *QuotePaymentUseCase) reprice(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if u.catalog == nil {
		return entities.Quote{}, ErrCatalogNotReady
	}
	cat, err := u.catalog.Catalog(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	calc := pricing.NewCalculator(cat)
	if !calc.Ready() {
		return entities.Quote{}, ErrCatalogNotReady
	}
	return calc.Recalculate(pricing.MergeStored(q)), nil
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func (u *QuotePaymentUseCase) mockPayment(req map[string]any) (interfaces.GatewayPayment, error) {
	now := u.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	return interfaces.GatewayPayment{ProviderID: id, Status: "approved", Response: b}, nil
}

func (u *QuotePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.opts.SandboxToken {
			payer["email"] = "test_user_mx@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps the configured test user id for its email, which
// is what the sandbox expects for card payments.
func (u *QuotePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.SandboxToken || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	u.logger.Debug("mapped sandbox payer user id to email")
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprobado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRechazado
	default:
		return entities.PaymentStatusPendiente
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
