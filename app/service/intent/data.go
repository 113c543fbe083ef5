package intent

import "fmt"

// PriceKind tells how the user wants candidates ordered by price.
type PriceKind int

const (
	PriceNone PriceKind = iota
	PriceCheapest
	PriceMostExpensive
	PriceTarget
)

// PriceIntent is derived once per user turn and never merged across turns.
type PriceIntent struct {
	Kind PriceKind
	// Target amount, set only when Kind == PriceTarget
	Target float64
}

func (p PriceIntent) IsNone() bool {
	return p.Kind == PriceNone
}

func (p PriceIntent) String() string {
	switch p.Kind {
	case PriceCheapest:
		return "cheapest"
	case PriceMostExpensive:
		return "most_expensive"
	case PriceTarget:
		return fmt.Sprintf("target(%.0f)", p.Target)
	default:
		return "none"
	}
}
