package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/domain/pricing"
	"crm_cotizador/internal/infrastructure/metrics"
	"crm_cotizador/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
	ErrInvalidQuote   = errors.New("invalid quote")
	ErrQuoteClosed    = errors.New("quote is no longer pending")
	ErrUnknownSeller  = errors.New("unknown seller")
)

// Recalculation operations, used as metric labels.
const (
	opNew       = "new"
	opCalculate = "calculate"
	opEdit      = "edit"
	opCreate    = "create"
	opUpdate    = "update"
	opLoad      = "load"
)

// IQuoteUseCase exposes the quote editor operations.
//
// Every path that returns a quote goes through the pricing calculator, so
// derived fields sent by a client are never trusted.
type IQuoteUseCase interface {
	New(ctx context.Context) (entities.Quote, error)
	Calculate(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ApplyEdit(ctx context.Context, q entities.Quote, edit pricing.Edit) (entities.Quote, error)
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, id string, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ApproveByID(ctx context.Context, id string) (entities.Quote, error)
	RejectByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
	Document(ctx context.Context, id string) (pricing.QuoteDocument, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	catalog IPriceCatalogUseCase
	sellers map[string]entities.Seller
	metrics *metrics.Registry
	logger  *zap.Logger
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalog IPriceCatalogUseCase, sellers []entities.Seller, registry *metrics.Registry, logger *zap.Logger) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	table := make(map[string]entities.Seller, len(sellers))
	for _, s := range sellers {
		table[s.ID] = s
	}
	return &QuoteUseCase{
		repo:    repo,
		catalog: catalog,
		sellers: table,
		metrics: registry,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// New returns the default form priced against the current catalog.
func (u *QuoteUseCase) New(ctx context.Context) (entities.Quote, error) {
	calc := u.calculator(ctx)
	return u.evaluate(calc, opNew, pricing.NewQuote()), nil
}

// Calculate normalizes a form onto the local catalog and recalculates it.
// While the catalog is unavailable the form comes back unchanged.
func (u *QuoteUseCase) Calculate(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	calc := u.calculator(ctx)
	return u.evaluate(calc, opCalculate, pricing.MergeStored(q)), nil
}

func (u *QuoteUseCase) ApplyEdit(ctx context.Context, q entities.Quote, edit pricing.Edit) (entities.Quote, error) {
	calc := u.calculator(ctx)
	out, report, err := calc.EvaluateEdit(pricing.MergeStored(q), edit)
	if err != nil {
		return entities.Quote{}, err
	}
	u.record(opEdit, report)
	return out, nil
}

// Create stores a new pending quote. The id and folio are always generated
// here; totals are recalculated and the catalog must be available.
func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if strings.TrimSpace(q.CompanyName) == "" {
		return entities.Quote{}, ErrInvalidQuote
	}
	seller, err := u.resolveSeller(q)
	if err != nil {
		return entities.Quote{}, err
	}
	calc := u.calculator(ctx)
	if !calc.Ready() {
		return entities.Quote{}, ErrCatalogNotReady
	}

	now := u.now()
	in := pricing.MergeStored(q)
	in.ID = uuid.NewString()
	in.Folio = newFolio(now, in.ID)
	in.Status = entities.QuoteStatusPendiente
	in.SellerName = seller
	in.CreatedAt = now
	in.UpdatedAt = now

	created, err := u.repo.Create(ctx, u.evaluate(calc, opCreate, in))
	if err != nil {
		return entities.Quote{}, err
	}
	u.logger.Info("quote created", zap.String("quote_id", created.ID), zap.String("folio", created.Folio))
	return created, nil
}

// Update replaces the editable fields of a pending quote. Identity, folio,
// status and creation time are kept from the stored record.
func (u *QuoteUseCase) Update(ctx context.Context, id string, q entities.Quote) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if strings.TrimSpace(q.CompanyName) == "" {
		return entities.Quote{}, ErrInvalidQuote
	}
	existing, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.Status != entities.QuoteStatusPendiente {
		return entities.Quote{}, ErrQuoteClosed
	}
	seller, err := u.resolveSeller(q)
	if err != nil {
		return entities.Quote{}, err
	}
	calc := u.calculator(ctx)
	if !calc.Ready() {
		return entities.Quote{}, ErrCatalogNotReady
	}

	in := pricing.MergeStored(q)
	in.ID = existing.ID
	in.Folio = existing.Folio
	in.Status = existing.Status
	in.SellerName = seller
	in.CreatedAt = existing.CreatedAt
	in.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, u.evaluate(calc, opUpdate, in))
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// GetByID loads a stored quote onto the local catalog and recalculates it, so
// records saved with older prices are shown with current ones.
func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	stored, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	calc := u.calculator(ctx)
	return u.evaluate(calc, opLoad, pricing.MergeStored(stored)), nil
}

func (u *QuoteUseCase) ApproveByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusAprobada)
}

func (u *QuoteUseCase) RejectByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusRechazada)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusCancelada)
}

// Document returns the export data of a stored quote.
func (u *QuoteUseCase) Document(ctx context.Context, id string) (pricing.QuoteDocument, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return pricing.QuoteDocument{}, err
	}
	return pricing.BuildDocument(q), nil
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	existing, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.Status != entities.QuoteStatusPendiente {
		return entities.Quote{}, ErrQuoteClosed
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.logger.Info("quote status changed", zap.String("quote_id", id), zap.String("status", string(status)))
	return updated, nil
}

func (u *QuoteUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// calculator never fails: an unavailable catalog yields a pass-through
// calculator and is only logged.
func (u *QuoteUseCase) calculator(ctx context.Context) *pricing.Calculator {
	if u.catalog == nil {
		return pricing.NewCalculator(nil)
	}
	cat, err := u.catalog.Catalog(ctx)
	if err != nil {
		u.logger.Warn("price catalog unavailable", zap.Error(err))
		return pricing.NewCalculator(nil)
	}
	return pricing.NewCalculator(cat)
}

func (u *QuoteUseCase) evaluate(calc *pricing.Calculator, op string, q entities.Quote) entities.Quote {
	out, report := calc.Evaluate(q)
	u.record(op, report)
	return out
}

// record counts one recalculation and the conditions it recovered from.
func (u *QuoteUseCase) record(op string, report pricing.Report) {
	u.metrics.IncRecalculation(op)
	if !report.CatalogReady {
		u.metrics.IncCatalogNotReady()
		return
	}
	for _, id := range report.MissingTiers {
		u.metrics.IncMissingTier(id)
		u.logger.Info("no pricing tier for module", zap.String("module_id", id), zap.String("operation", op))
	}
}

func (u *QuoteUseCase) resolveSeller(q entities.Quote) (string, error) {
	id := strings.TrimSpace(q.SellerID)
	if id == "" || len(u.sellers) == 0 {
		return q.SellerName, nil
	}
	s, ok := u.sellers[id]
	if !ok {
		return "", ErrUnknownSeller
	}
	return s.Name, nil
}

// newFolio builds the human readable quote number, e.g. COT-20240131-1A2B3C4D.
func newFolio(now time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return "COT-" + now.Format("20060102") + "-" + suffix
}
