package words

import "github.com/Rupeshkotha/Sign-language-generator/pkg/model"

// Pair est un mot normalisé associé à son timestamp (secondes).
type Pair struct {
	Word      string
	Timestamp float64
}

// Dedupe réduit une séquence de paires (mot, timestamp) à ses premières
// occurrences, dans l'ordre de collecte. Le timestamp retenu est celui de la
// première occurrence ; les doublons suivants sont entièrement ignorés.
func Dedupe(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(pairs))
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[p.Word]; dup {
			continue
		}
		seen[p.Word] = struct{}{}
		out = append(out, p)
	}
	return out
}

// NormalizePairs applique la normalisation à chaque occurrence brute et ne
// conserve que celles dont la forme canonique est non vide. L'association
// timestamp/mot est préservée ; l'ordre de collecte aussi.
func NormalizePairs(occs []model.WordOccurrence, minLen int) []Pair {
	out := make([]Pair, 0, len(occs))
	for _, occ := range occs {
		w := NormalizeWithMin(occ.Token, minLen)
		if w == "" {
			continue
		}
		out = append(out, Pair{Word: w, Timestamp: occ.Timestamp})
	}
	return out
}
