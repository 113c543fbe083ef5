// Package ranking reorders retrieved candidates by the detected price
// directive and truncates them to the grounding set shown to the user.
package ranking

import (
	"math"
	"sort"

	"mecabot/app/service/catalog"
	"mecabot/app/service/intent"
)

const (
	// MaxResults bounds the grounding set passed to the reply model.
	MaxResults = 3

	// A price directive widens retrieval so sorting has something to work
	// with; without one the store's top matches are taken as-is.
	budgetDefault     = 3
	budgetPriceIntent = 12
)

// Budget returns how many candidates retrieval should request for the
// given price intent.
func Budget(pi intent.PriceIntent) int {
	if pi.IsNone() {
		return budgetDefault
	}

	return budgetPriceIntent
}

// Rank sorts candidates by the price directive and truncates to MaxResults.
// The sort is stable: candidates with equal keys keep their retrieval order.
func Rank(candidates []catalog.Product, pi intent.PriceIntent) []catalog.Product {
	result := make([]catalog.Product, len(candidates))
	copy(result, candidates)

	switch pi.Kind {
	case intent.PriceCheapest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case intent.PriceMostExpensive:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case intent.PriceTarget:
		sort.SliceStable(result, func(i, j int) bool {
			return math.Abs(result[i].Price-pi.Target) < math.Abs(result[j].Price-pi.Target)
		})
	}

	if len(result) > MaxResults {
		result = result[:MaxResults]
	}

	return result
}
