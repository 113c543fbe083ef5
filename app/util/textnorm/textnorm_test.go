package textnorm

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"HOLA", "hola"},
		{"¿Qué tal?", "¿que tal?"},
		{"económico", "economico"},
		{"SEÑAL", "senal"},
		{"plc delta", "plc delta"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  Busco  un PLC  Delta ")
	want := []string{"busco", "un", "plc", "delta"}

	if len(got) != len(want) {
		t.Fatalf("Tokens returned %d tokens, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("uno dos tres"); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount of empty = %d, want 0", got)
	}
}
