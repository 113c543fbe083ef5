package intent

import "testing"

func TestParsePriceTarget(t *testing.T) {
	cases := []struct {
		text   string
		amount float64
	}{
		{"necesito algo de 4000 pesos", 4000},
		{"tengo un presupuesto de $1,500", 1500},
		{"busco un sensor de 600", 600},
		{"entre 800 y 200 pesos", 800}, // first qualifying number wins, not the largest
	}

	for _, c := range cases {
		got := ParsePrice(c.text)
		if got.Kind != PriceTarget {
			t.Errorf("ParsePrice(%q).Kind = %v, want PriceTarget", c.text, got.Kind)
			continue
		}
		if got.Target != c.amount {
			t.Errorf("ParsePrice(%q).Target = %v, want %v", c.text, got.Target, c.amount)
		}
	}
}

func TestParsePriceTargetBeatsKeywords(t *testing.T) {
	// An explicit amount takes precedence over cheap/expensive vocabulary.
	got := ParsePrice("algo barato de unos 2000 pesos")
	if got.Kind != PriceTarget || got.Target != 2000 {
		t.Errorf("ParsePrice = %v, want target(2000)", got)
	}

	got = ParsePrice("el mas caro de 5000")
	if got.Kind != PriceTarget || got.Target != 5000 {
		t.Errorf("ParsePrice = %v, want target(5000)", got)
	}
}

func TestParsePriceSmallNumbersIgnored(t *testing.T) {
	cases := []string{
		"un sensor de 24v",
		"necesito 3 motores",
		"el modelo 50",
	}

	for _, text := range cases {
		if got := ParsePrice(text); got.Kind == PriceTarget {
			t.Errorf("ParsePrice(%q) = %v, numbers <= 50 must not become targets", text, got)
		}
	}
}

func TestParsePriceCheapest(t *testing.T) {
	cases := []string{
		"cual es el mas barato",
		"algo económico por favor",
		"el de menor precio",
		"el que menos cuesta",
	}

	for _, text := range cases {
		if got := ParsePrice(text); got.Kind != PriceCheapest {
			t.Errorf("ParsePrice(%q) = %v, want PriceCheapest", text, got)
		}
	}
}

func TestParsePriceMostExpensive(t *testing.T) {
	cases := []string{
		"muéstrame el más caro",
		"quiero algo premium",
		"el de mayor precio",
	}

	for _, text := range cases {
		if got := ParsePrice(text); got.Kind != PriceMostExpensive {
			t.Errorf("ParsePrice(%q) = %v, want PriceMostExpensive", text, got)
		}
	}
}

func TestParsePriceNone(t *testing.T) {
	cases := []string{
		"busco un plc delta",
		"necesito una laptop industrial", // "top" inside a word must not fire
		"",
	}

	for _, text := range cases {
		if got := ParsePrice(text); got.Kind != PriceNone {
			t.Errorf("ParsePrice(%q) = %v, want PriceNone", text, got)
		}
	}
}
