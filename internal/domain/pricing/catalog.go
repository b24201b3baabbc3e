package pricing

import (
	"errors"
	"fmt"
	"sort"

	"crm_cotizador/internal/domain/entities"
)

var (
	// ErrOverlappingTiers is returned by Validate when two tiers of the same
	// module match the same employee count.
	ErrOverlappingTiers = errors.New("overlapping price scheme tiers")
	// ErrInvalidTier is returned by Validate for a tier whose bounds are inverted.
	ErrInvalidTier = errors.New("invalid price scheme tier")
)

// Catalog is the immutable price scheme table the engine reads from.
//
// A nil or empty Catalog is valid and reports Ready() == false.
type Catalog struct {
	tiers map[string][]entities.PriceSchemeEntry
	rates entities.ExtraRates
}

func NewCatalog(entries []entities.PriceSchemeEntry, rates entities.ExtraRates) *Catalog {
	tiers := make(map[string][]entities.PriceSchemeEntry)
	for _, e := range entries {
		if e.ModuleID == "" {
			continue
		}
		tiers[e.ModuleID] = append(tiers[e.ModuleID], e)
	}
	for id := range tiers {
		list := tiers[id]
		sort.SliceStable(list, func(i, j int) bool { return list[i].MinEmployees < list[j].MinEmployees })
	}
	return &Catalog{tiers: tiers, rates: rates}
}

func NewCatalogFromScheme(s entities.PriceScheme) *Catalog {
	return NewCatalog(s.Entries, s.Rates)
}

// Ready reports whether the catalog holds at least one module tier.
func (c *Catalog) Ready() bool {
	return c != nil && len(c.tiers) > 0
}

func (c *Catalog) Rates() entities.ExtraRates {
	if c == nil {
		return entities.ExtraRates{}
	}
	return c.rates
}

// FindTier returns the tier of moduleID whose bracket contains employees.
// Employee counts <= 0 never match.
func (c *Catalog) FindTier(moduleID string, employees int) (entities.PriceSchemeEntry, bool) {
	if c == nil || employees <= 0 {
		return entities.PriceSchemeEntry{}, false
	}
	for _, t := range c.tiers[moduleID] {
		if employees < t.MinEmployees {
			break
		}
		if t.MaxEmployees <= 0 || employees <= t.MaxEmployees {
			return t, true
		}
	}
	return entities.PriceSchemeEntry{}, false
}

// Validate checks that, per module, tiers are well formed and do not overlap.
func (c *Catalog) Validate() error {
	if c == nil {
		return nil
	}
	for _, id := range c.moduleIDs() {
		list := c.tiers[id]
		for i, t := range list {
			if t.MaxEmployees > 0 && t.MaxEmployees < t.MinEmployees {
				return fmt.Errorf("%w: module %s [%d-%d]", ErrInvalidTier, id, t.MinEmployees, t.MaxEmployees)
			}
			if i == 0 {
				continue
			}
			prev := list[i-1]
			if prev.MaxEmployees <= 0 || t.MinEmployees <= prev.MaxEmployees {
				return fmt.Errorf("%w: module %s at %d employees", ErrOverlappingTiers, id, t.MinEmployees)
			}
		}
	}
	return nil
}

// Scheme returns the catalog contents ordered by module and tier.
func (c *Catalog) Scheme() entities.PriceScheme {
	if c == nil {
		return entities.PriceScheme{}
	}
	entries := make([]entities.PriceSchemeEntry, 0)
	for _, id := range c.moduleIDs() {
		entries = append(entries, c.tiers[id]...)
	}
	return entities.PriceScheme{Entries: entries, Rates: c.rates}
}

func (c *Catalog) moduleIDs() []string {
	ids := make([]string, 0, len(c.tiers))
	for id := range c.tiers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
