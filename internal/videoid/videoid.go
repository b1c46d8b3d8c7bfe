// Package videoid résout une référence vidéo brute (URL) vers l'identifiant
// canonique de la vidéo. La résolution est mémoïsée par chaîne d'entrée exacte
// dans un LRU borné : un hit retourne le même identifiant sans re-parser.
package videoid

import (
	"errors"
	"regexp"

	"github.com/Rupeshkotha/Sign-language-generator/internal/cache"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

var ErrInvalidURL = errors.New("URL vidéo invalide ou non reconnue")

// DefaultCacheCapacity : capacité du cache de résolution d'URL.
const DefaultCacheCapacity = 100

// patterns : formes d'URL acceptées, dans l'ordre d'essai. Le premier pattern
// qui matche gagne, on n'essaie pas les suivants. L'identifiant est toujours
// un token de 11 caractères [0-9A-Za-z_-].
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/v/|/embed/|youtu\.be/)([0-9A-Za-z_-]{11})`), // watch, embed, liens courts
	regexp.MustCompile(`(?:watch\?v=)([0-9A-Za-z_-]{11})`),                 // watch explicite
	regexp.MustCompile(`(?:/video/)([0-9A-Za-z_-]{11})`),                   // forme alternative /video/
}

// Resolver résout et mémoïse les identifiants vidéo.
type Resolver struct {
	memo *cache.LRU[string, model.VideoID]
}

// NewResolver construit un Resolver avec un cache de capacité donnée
// (<= 0 : capacité par défaut).
func NewResolver(cacheCapacity int) *Resolver {
	if cacheCapacity <= 0 {
		cacheCapacity = DefaultCacheCapacity
	}
	return &Resolver{
		memo: cache.NewLRU[string, model.VideoID](cacheCapacity),
	}
}

// Resolve extrait l'identifiant canonique de rawURL.
// Retourne ErrInvalidURL si l'entrée est vide ou qu'aucune forme ne matche.
func (r *Resolver) Resolve(rawURL string) (model.VideoID, error) {
	if rawURL == "" {
		return "", ErrInvalidURL
	}

	if id, ok := r.memo.Get(rawURL); ok {
		return id, nil
	}

	id, ok := match(rawURL)
	if !ok {
		return "", ErrInvalidURL
	}

	// seules les résolutions réussies sont mémoïsées
	r.memo.Put(rawURL, id)
	return id, nil
}

func match(rawURL string) (model.VideoID, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return model.VideoID(m[1]), true
		}
	}
	return "", false
}
