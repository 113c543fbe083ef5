package intent

import (
	"regexp"
	"strconv"
	"strings"

	"mecabot/app/util/textnorm"
)

// Numbers at or below this are assumed to be model numbers, counts or
// voltages ("24v"), not prices. Unit-suffixed figures above it still slip
// through; that is a known false-positive risk, kept as-is.
const minTargetAmount = 50

var digitRun = regexp.MustCompile(`[0-9]+`)

var cheapTerms = []string{
	"barato",
	"baratos",
	"barata",
	"baratas",
	"economico",
	"economica",
	"menor precio",
	"menos cuesta",
	"bajo costo",
	"cheap",
}

var expensiveTerms = []string{
	"caro",
	"caros",
	"cara",
	"caras",
	"costoso",
	"costosa",
	"mayor precio",
	"premium",
	"top",
	"lujo",
	"expensive",
}

// ParsePrice extracts the price directive from free text.
//
// An explicit amount wins over cheap/expensive vocabulary: "algo barato de
// unos 2000" is Target(2000), not Cheapest. The first qualifying number in
// text order is taken, not the largest.
func ParsePrice(text string) PriceIntent {
	folded := textnorm.Fold(text)
	tokens := textnorm.Tokens(text)

	stripped := strings.NewReplacer("$", "", "€", "", ",", "").Replace(folded)

	for _, run := range digitRun.FindAllString(stripped, -1) {
		value, err := strconv.ParseFloat(run, 64)
		if err != nil {
			continue
		}

		if value > minTargetAmount {
			return PriceIntent{Kind: PriceTarget, Target: value}
		}
	}

	if containsAny(folded, tokens, cheapTerms) {
		return PriceIntent{Kind: PriceCheapest}
	}

	if containsAny(folded, tokens, expensiveTerms) {
		return PriceIntent{Kind: PriceMostExpensive}
	}

	return PriceIntent{Kind: PriceNone}
}
