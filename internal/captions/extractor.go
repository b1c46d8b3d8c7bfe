package captions

import (
	"context"
	"fmt"

	"github.com/Rupeshkotha/Sign-language-generator/internal/cache"
	"github.com/Rupeshkotha/Sign-language-generator/internal/words"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/logger"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// DefaultCacheCapacity : capacité du cache de résultats par identifiant vidéo.
const DefaultCacheCapacity = 50

// Extractor produit les occurrences brutes (token, timestamp) depuis la piste
// de sous-titres. Les résultats réussis sont mémoïsés par identifiant vidéo :
// une piste est considérée immuable pour la durée de vie du process.
type Extractor struct {
	provider Provider
	memo     *cache.LRU[model.VideoID, []model.WordOccurrence]
	log      logger.Interface
}

// NewExtractor construit l'extracteur. cacheCapacity <= 0 : valeur par défaut.
func NewExtractor(provider Provider, cacheCapacity int, log logger.Interface) *Extractor {
	if cacheCapacity <= 0 {
		cacheCapacity = DefaultCacheCapacity
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Extractor{
		provider: provider,
		memo:     cache.NewLRU[model.VideoID, []model.WordOccurrence](cacheCapacity),
		log:      log,
	}
}

// Extract récupère la piste (un seul appel provider) et la découpe en tokens.
// Chaque cue est tokenisée sur les frontières de mots ; tous les tokens d'une
// même cue portent le timestamp de départ de la cue. Ordre du transcript
// préservé. Retourne ErrNoCaptions (enveloppée) si la piste est absente.
func (e *Extractor) Extract(ctx context.Context, id model.VideoID) ([]model.WordOccurrence, error) {
	if cached, ok := e.memo.Get(id); ok {
		e.log.Infof("captions: cache hit pour %s (%d occurrences)", id, len(cached))
		return cached, nil
	}

	entries, err := e.provider.GetCaptions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("captions %s: %w", id, err)
	}

	occs := tokenizeEntries(entries)
	if len(occs) == 0 {
		return nil, fmt.Errorf("captions %s: piste sans aucun token: %w", id, ErrNoCaptions)
	}

	// seuls les succès sont mémoïsés ; un échec sera retenté à la prochaine requête
	e.memo.Put(id, occs)
	e.log.Infof("captions: %d occurrences extraites pour %s", len(occs), id)
	return occs, nil
}

// tokenizeEntries émet une WordOccurrence par token, entrées traitées dans
// l'ordre du transcript, tokens dans l'ordre d'apparition.
func tokenizeEntries(entries []model.TranscriptEntry) []model.WordOccurrence {
	var out []model.WordOccurrence
	for _, entry := range entries {
		for _, tok := range words.Tokenize(entry.Text) {
			out = append(out, model.WordOccurrence{
				Token:     tok,
				Timestamp: entry.Start,
				Source:    model.SourceCaption,
			})
		}
	}
	return out
}
