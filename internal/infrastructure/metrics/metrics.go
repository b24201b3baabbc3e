package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalog load sources.
const (
	SourceCache    = "cache"
	SourceDynamoDB = "dynamodb"
)

// Registry holds the quote engine collectors on a private prometheus registry.
// A nil *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	recalculations  *prometheus.CounterVec
	missingTiers    *prometheus.CounterVec
	catalogLoads    *prometheus.CounterVec
	catalogNotReady prometheus.Counter
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		recalculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_recalculations_total",
			Help: "Quote recalculations by operation.",
		}, []string{"operation"}),
		missingTiers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_missing_pricing_tier_total",
			Help: "Active modules whose employee count matched no pricing tier.",
		}, []string{"module"}),
		catalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_catalog_loads_total",
			Help: "Price catalog loads by source.",
		}, []string{"source"}),
		catalogNotReady: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quote_catalog_not_ready_total",
			Help: "Calculations served while the price catalog was unavailable.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.recalculations,
		r.missingTiers,
		r.catalogLoads,
		r.catalogNotReady,
	)
	return r
}

// Handler serves the registry in the prometheus text format.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Registry) IncRecalculation(operation string) {
	if r == nil {
		return
	}
	r.recalculations.WithLabelValues(operation).Inc()
}

func (r *Registry) IncMissingTier(moduleID string) {
	if r == nil {
		return
	}
	r.missingTiers.WithLabelValues(moduleID).Inc()
}

func (r *Registry) IncCatalogLoad(source string) {
	if r == nil {
		return
	}
	r.catalogLoads.WithLabelValues(source).Inc()
}

func (r *Registry) IncCatalogNotReady() {
	if r == nil {
		return
	}
	r.catalogNotReady.Inc()
}
