// Package words regroupe le traitement lexical pur du pipeline : découpage en
// tokens, normalisation vers la forme canonique du vocabulaire, déduplication
// en ordre de première occurrence. Aucune IO, aucune dépendance externe.
package words

import "strings"

// DefaultMinWordLength : longueur minimale d'un mot canonique accepté.
const DefaultMinWordLength = 2

// contractions mappe chaque contraction connue vers son expansion.
// La table est construite une fois au chargement du package, jamais modifiée.
// La normalisation ne retient que le premier mot de l'expansion.
var contractions = map[string]string{
	"doesn't":   "does not",
	"don't":     "do not",
	"won't":     "will not",
	"can't":     "cannot",
	"isn't":     "is not",
	"ain't":     "is not",
	"aren't":    "are not",
	"wasn't":    "was not",
	"weren't":   "were not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"hadn't":    "had not",
	"wouldn't":  "would not",
	"couldn't":  "could not",
	"shouldn't": "should not",
	"mustn't":   "must not",
	"i'm":       "i am",
	"you're":    "you are",
	"he's":      "he is",
	"she's":     "she is",
	"it's":      "it is",
	"we're":     "we are",
	"they're":   "they are",
	"i've":      "i have",
	"you've":    "you have",
	"we've":     "we have",
	"they've":   "they have",
	"i'd":       "i would",
	"you'd":     "you would",
	"he'd":      "he would",
	"she'd":     "she would",
	"it'd":      "it would",
	"we'd":      "we would",
	"they'd":    "they would",
	"i'll":      "i will",
	"you'll":    "you will",
	"he'll":     "he will",
	"she'll":    "she will",
	"it'll":     "it will",
	"we'll":     "we will",
	"they'll":   "they will",
}

// fillers : mots de remplissage rejetés (bruit de parole).
var fillers = map[string]struct{}{
	"uh":  {},
	"um":  {},
	"ah":  {},
	"er":  {},
	"hm":  {},
	"erm": {},
	"uhm": {},
	"hmm": {},
}

// Normalize ramène un token brut à sa forme canonique de vocabulaire,
// avec la longueur minimale par défaut. Chaîne vide = token rejeté.
func Normalize(token string) string {
	return NormalizeWithMin(token, DefaultMinWordLength)
}

// NormalizeWithMin applique, dans l'ordre :
//  1. minuscules + trim
//  2. contraction exacte -> premier mot de l'expansion ("don't" -> "do")
//  3. sinon, si apostrophe présente -> troncature à la première apostrophe
//  4. suppression de tout caractère hors [a-z]
//  5. rejet des fillers et des mots plus courts que minLen
//
// Fonction pure et idempotente : NormalizeWithMin(NormalizeWithMin(x, n), n)
// == NormalizeWithMin(x, n) pour toute sortie atteignable.
func NormalizeWithMin(token string, minLen int) string {
	if token == "" {
		return ""
	}
	if minLen <= 0 {
		minLen = DefaultMinWordLength
	}

	word := strings.ToLower(strings.TrimSpace(token))

	// contractions avant nettoyage : le match doit être exact
	if exp, ok := contractions[word]; ok {
		word = strings.Fields(exp)[0]
	} else if i := strings.IndexByte(word, '\''); i >= 0 {
		word = word[:i]
	}

	// ne garder que les lettres minuscules
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if _, noise := fillers[cleaned]; noise || len(cleaned) < minLen {
		return ""
	}
	return cleaned
}
