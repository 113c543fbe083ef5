package rewrite

import (
	"context"
	"testing"

	"mecabot/app/service/session"
)

// A nil client guarantees the test fails loudly if these paths ever try to
// call the model.

func TestRewriteLongMessagePassesThrough(t *testing.T) {
	s := &Service{}

	text := "necesito un plc delta de 8 entradas digitales con fuente de 24 volts para banda transportadora"
	history := []session.Turn{{Role: session.RoleUser, Content: "otro tema"}}

	if got := s.Rewrite(context.Background(), text, history); got != text {
		t.Errorf("Rewrite changed a self-contained message: %q", got)
	}
}

func TestRewriteWithoutPriorUserTurn(t *testing.T) {
	s := &Service{}

	history := []session.Turn{
		{Role: session.RoleAssistant, Content: session.SeedGreeting},
	}

	if got := s.Rewrite(context.Background(), "busco un plc", history); got != "busco un plc" {
		t.Errorf("Rewrite = %q, want the input back when there is no prior topic", got)
	}
}

func TestRewriteIgnoresOwnEcho(t *testing.T) {
	s := &Service{}

	// The only user turn equals the current message (already appended);
	// there is no distinct prior topic, so no rewrite happens.
	history := []session.Turn{
		{Role: session.RoleAssistant, Content: session.SeedGreeting},
		{Role: session.RoleUser, Content: "busco un plc"},
	}

	if got := s.Rewrite(context.Background(), "busco un plc", history); got != "busco un plc" {
		t.Errorf("Rewrite = %q, want the input back", got)
	}
}

func TestCleanPhrase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\"plc delta\"", "plc delta"},
		{"«cable calibre 12»", "cable calibre 12"},
		{"```\nsensor inductivo", "sensor inductivo"},
		{"plc delta\notra línea", "plc delta"},
		{"  plc  ", "plc"},
		{"", ""},
	}

	for _, c := range cases {
		if got := cleanPhrase(c.in); got != c.want {
			t.Errorf("cleanPhrase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
