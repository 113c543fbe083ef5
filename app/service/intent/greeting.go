package intent

import (
	"mecabot/app/util/textnorm"
)

// A message this short with a greeting word in it is small talk; anything
// longer is assumed to also carry a product ask and goes to retrieval.
const maxSocialTokens = 6

var greetingTerms = []string{
	"hola",
	"buenos",
	"buenas",
	"saludos",
	"hi",
	"hello",
	"hey",
	"que tal",
	"buen dia",
	"gracias",
}

// Social reports whether the message is pure chit-chat that needs no
// catalog lookup. Deterministic, no external calls.
func Social(text string) bool {
	folded := textnorm.Fold(text)
	tokens := textnorm.Tokens(text)

	if len(tokens) == 0 {
		return true
	}

	if len(tokens) > maxSocialTokens {
		return false
	}

	return containsAny(folded, tokens, greetingTerms)
}
