package intent

import "testing"

func TestSocialGreetings(t *testing.T) {
	cases := []string{
		"hola",
		"HOLA",
		"¿Qué tal?",
		"buenos días",
		"buenas tardes, saludos",
		"hi",
		"hello",
	}

	for _, text := range cases {
		if !Social(text) {
			t.Errorf("Social(%q) = false, want true", text)
		}
	}
}

func TestSocialEmpty(t *testing.T) {
	if !Social("") {
		t.Error("Social(\"\") = false, empty input must be social")
	}
	if !Social("   ") {
		t.Error("Social(blank) = false, blank input must be social")
	}
}

func TestSocialLongMessagesAreTechnical(t *testing.T) {
	// A greeting combined with a product ask must fall through to retrieval.
	text := "hola buenos días estoy buscando un plc delta para mi proyecto"
	if Social(text) {
		t.Errorf("Social(%q) = true, long messages are never pure social", text)
	}
}

func TestSocialShortTechnical(t *testing.T) {
	cases := []string{
		"busco un plc delta",
		"necesito cable calibre 12",
	}

	for _, text := range cases {
		if Social(text) {
			t.Errorf("Social(%q) = true, want false", text)
		}
	}
}
