package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/Rupeshkotha/Sign-language-generator/internal/words"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/logger"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

const (
	// DefaultChunkDuration : durée d'un chunk de reconnaissance.
	DefaultChunkDuration = 5 * time.Second
	// DefaultChunkTimeout : timeout d'un appel de reconnaissance, un seul
	// essai par chunk, pas de retry.
	DefaultChunkTimeout = 20 * time.Second
	// DefaultMaxVideoDuration : plafond de durée avant tout téléchargement.
	DefaultMaxVideoDuration = 3600 * time.Second
)

// Extractor produit les occurrences brutes (token, timestamp) depuis la piste
// audio. Chemin coûteux : volontairement jamais mémoïsé, invoqué uniquement
// quand les sous-titres ne suffisent pas.
type Extractor struct {
	resolver   StreamResolver
	recognizer Recognizer
	log        logger.Interface

	ChunkDuration    time.Duration
	ChunkTimeout     time.Duration
	MaxVideoDuration time.Duration
}

// NewExtractor construit l'extracteur audio avec les valeurs par défaut pour
// les durées non renseignées (<= 0).
func NewExtractor(resolver StreamResolver, recognizer Recognizer, log logger.Interface) *Extractor {
	if log == nil {
		log = logger.Nop{}
	}
	return &Extractor{
		resolver:         resolver,
		recognizer:       recognizer,
		log:              log,
		ChunkDuration:    DefaultChunkDuration,
		ChunkTimeout:     DefaultChunkTimeout,
		MaxVideoDuration: DefaultMaxVideoDuration,
	}
}

// Extract résout la piste audio, vérifie la durée, télécharge le flux puis le
// traite séquentiellement par chunks de durée fixe :
//  1. reconnaissance vocale du chunk ; en cas de succès, tokenisation du texte
//  2. n tokens -> timestamps répartis uniformément : offset + i*(chunkDur/n)
//     (approximation, pas d'alignement forcé)
//  3. échec de reconnaissance (pas de parole, timeout, erreur transitoire) ->
//     aucun token pour ce chunk, mais offset avance quand même d'un chunk
//  4. arrêt à l'épuisement du flux
//
// Retourne ErrNoAudioStream ou ErrVideoTooLong (enveloppées) avant tout
// téléchargement ; un échec de chunk n'est jamais fatal.
func (e *Extractor) Extract(ctx context.Context, id model.VideoID) ([]model.WordOccurrence, error) {
	info, err := e.resolver.Probe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audio %s: probe: %w", id, err)
	}
	return e.ExtractWithInfo(ctx, id, info)
}

// ExtractWithInfo est Extract sans le probe initial : l'appelant fournit les
// informations de piste déjà résolues (par exemple par la garde de durée de
// l'orchestrateur), évitant une seconde exécution de yt-dlp pour la même
// vidéo. La vérification de durée reste faite ici.
func (e *Extractor) ExtractWithInfo(ctx context.Context, id model.VideoID, info StreamInfo) ([]model.WordOccurrence, error) {
	chunkDur := e.ChunkDuration
	if chunkDur <= 0 {
		chunkDur = DefaultChunkDuration
	}
	maxDur := e.MaxVideoDuration
	if maxDur <= 0 {
		maxDur = DefaultMaxVideoDuration
	}

	// vérification de durée AVANT de tirer le moindre octet
	if info.DurationSeconds > maxDur.Seconds() {
		return nil, fmt.Errorf("audio %s: durée %.0fs > %.0fs: %w",
			id, info.DurationSeconds, maxDur.Seconds(), ErrVideoTooLong)
	}

	data, err := e.resolver.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("audio %s: fetch: %w", id, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("audio %s: flux vide: %w", id, ErrNoAudioStream)
	}

	return e.processChunks(ctx, id, data, info.DurationSeconds, chunkDur), nil
}

// processChunks découpe data en chunks de chunkDur et les reconnaît un par un.
// Strictement sériel : le curseur de buffer est partagé entre chunks.
func (e *Extractor) processChunks(ctx context.Context, id model.VideoID, data []byte, durationSeconds float64, chunkDur time.Duration) []model.WordOccurrence {
	chunkSeconds := chunkDur.Seconds()

	// taille d'un chunk en octets, dérivée de la durée totale du flux
	bytesPerChunk := len(data)
	if durationSeconds > chunkSeconds {
		bytesPerChunk = int(float64(len(data)) * chunkSeconds / durationSeconds)
		if bytesPerChunk <= 0 {
			bytesPerChunk = len(data)
		}
	}

	var out []model.WordOccurrence
	offset := 0.0

	for start := 0; start < len(data); start += bytesPerChunk {
		end := start + bytesPerChunk
		if end > len(data) {
			end = len(data)
		}

		text, err := e.recognizeOnce(ctx, data[start:end])
		if err != nil {
			// un échec de chunk n'est jamais fatal : on avance et on continue
			e.log.Warnf("audio %s: chunk à %.1fs sauté : %v", id, offset, err)
			offset += chunkSeconds
			continue
		}

		toks := words.Tokenize(text)
		if n := len(toks); n > 0 {
			perToken := chunkSeconds / float64(n)
			for i, tok := range toks {
				out = append(out, model.WordOccurrence{
					Token:     tok,
					Timestamp: offset + float64(i)*perToken,
					Source:    model.SourceAudio,
				})
			}
		}
		offset += chunkSeconds
	}
	return out
}

// recognizeOnce : un seul appel de reconnaissance, borné par ChunkTimeout.
// Un timeout est traité comme n'importe quel échec de reconnaissance.
func (e *Extractor) recognizeOnce(ctx context.Context, chunk []byte) (string, error) {
	timeout := e.ChunkTimeout
	if timeout <= 0 {
		timeout = DefaultChunkTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.recognizer.Recognize(cctx, chunk)
}
