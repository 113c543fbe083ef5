package intent

import "strings"

// containsAny matches single-word terms against whole tokens and multi-word
// terms as substrings of the folded text, so "top" does not fire on "laptop".
func containsAny(folded string, tokens []string, terms []string) bool {
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[strings.Trim(tok, ".,;:!?¿¡()\"'")] = struct{}{}
	}

	for _, term := range terms {
		if strings.ContainsRune(term, ' ') {
			if strings.Contains(folded, term) {
				return true
			}
			continue
		}

		if _, ok := tokenSet[term]; ok {
			return true
		}
	}

	return false
}
