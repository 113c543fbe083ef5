package catalog

import (
	"log/slog"
	"strings"

	"mecabot/app/util/textnorm"

	"github.com/elliotchance/pie/v2"
)

// Filter states reported in the per-turn diagnostics.
const (
	FilterNone     = "sin filtros agresivos"
	FilterClass    = "filtro PLC activo"
	FilterReverted = "filtro demasiado estricto, mostrando resultados crudos"
	FilterSkipped  = "memoria (sin busqueda)"
)

const classMinPrice = 500

// Cheap panel accessories that match "plc" searches by description alone.
var accessoryTerms = []string{"tapa", "boton", "conector", "receptaculo", "marco"}

// SearchKeyword is the historical non-vector configuration: substring match
// across name, description and category, then a product-class cleanup
// filter. Returns the candidates, the pre-filter count and the filter state.
func (s *Service) SearchKeyword(term string, limit int) ([]Product, int, string) {
	return keywordSearch(s.products, term, limit)
}

func keywordSearch(products []Product, term string, limit int) ([]Product, int, string) {
	term, _, _ = strings.Cut(term, "\n")
	term = strings.TrimSpace(strings.ReplaceAll(term, ".", ""))

	folded := textnorm.Fold(term)
	if len(folded) < 2 {
		return nil, 0, FilterSkipped
	}

	raw := pie.Filter(products, func(p Product) bool {
		return strings.Contains(textnorm.Fold(p.Name), folded) ||
			strings.Contains(textnorm.Fold(p.Description), folded) ||
			strings.Contains(textnorm.Fold(p.Category), folded)
	})

	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	clean, filterLog := applyClassFilter(folded, raw)

	return clean, len(raw), filterLog
}

// applyClassFilter drops accessory noise from controller-class searches.
// If the cleanup empties a non-empty result set, the raw set is returned
// instead: a filter may narrow results, never starve them.
func applyClassFilter(term string, raw []Product) ([]Product, string) {
	if !strings.Contains(term, "plc") {
		return raw, FilterNone
	}

	clean := pie.Filter(raw, func(p Product) bool {
		name := textnorm.Fold(p.Name)

		if p.Price < classMinPrice && !strings.Contains(name, "plc") {
			return false
		}

		for _, bad := range accessoryTerms {
			if strings.Contains(name, bad) {
				return false
			}
		}

		return true
	})

	if len(clean) == 0 && len(raw) > 0 {
		slog.Warn("Class filter removed every candidate, reverting",
			"term", term,
			"raw_count", len(raw))
		return raw, FilterReverted
	}

	return clean, FilterClass
}
