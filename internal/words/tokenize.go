package words

import "regexp"

// wordRunes découpe sur les frontières de mots : une suite de lettres/chiffres
// forme un token, tout le reste est séparateur.
var wordRunes = regexp.MustCompile(`[0-9A-Za-z]+`)

// Tokenize retourne les tokens bruts de s dans l'ordre d'apparition.
// Aucune normalisation ici : les tokens gardent leur casse et leurs chiffres.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	return wordRunes.FindAllString(s, -1)
}
