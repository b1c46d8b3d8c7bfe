// Package extract orchestre le pipeline d'extraction lexicale : résolution
// d'URL, stratégie sous-titres puis repli audio, normalisation, déduplication
// et plafonnement du résultat. Les échecs de stratégie sont capturés et logués
// ici, jamais remontés bruts à l'appelant ; seuls ErrInvalidURL,
// ErrVideoTooLong et ErrNoWordsExtracted s'échappent.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rupeshkotha/Sign-language-generator/internal/audio"
	"github.com/Rupeshkotha/Sign-language-generator/internal/videoid"
	"github.com/Rupeshkotha/Sign-language-generator/internal/words"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/logger"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// ErrNoWordsExtracted : les deux stratégies n'ont produit aucun mot brut.
// Fatal : aucun résultat partiel n'est retourné avec cette erreur.
var ErrNoWordsExtracted = errors.New("aucun mot extrait, ni par sous-titres ni par audio")

const (
	// DefaultFallbackThreshold : en dessous de ce nombre de mots bruts issus
	// des sous-titres, la stratégie audio est aussi tentée. Heuristique
	// héritée du système d'origine, volontairement conservée telle quelle.
	DefaultFallbackThreshold = 5
	// DefaultMaxWords : plafond de mots uniques dans le résultat final.
	DefaultMaxWords = 100
)

// Strategy est le contrat commun des deux stratégies d'extraction.
type Strategy interface {
	Extract(ctx context.Context, id model.VideoID) ([]model.WordOccurrence, error)
}

// DurationProber donne la durée de la vidéo résolue, pour la vérification du
// plafond avant tout appel sous-titres ou audio.
type DurationProber interface {
	Probe(ctx context.Context, id model.VideoID) (audio.StreamInfo, error)
}

// infoStrategy : stratégie audio capable de réutiliser les informations de
// piste déjà résolues par la garde de durée, pour éviter un second probe de
// la même vidéo dans la même requête.
type infoStrategy interface {
	ExtractWithInfo(ctx context.Context, id model.VideoID, info audio.StreamInfo) ([]model.WordOccurrence, error)
}

// Options regroupe les réglages de l'orchestrateur. Les champs <= 0 prennent
// leur valeur par défaut.
type Options struct {
	FallbackThreshold  int
	MaxWords           int
	MinWordLength      int
	MaxDurationSeconds float64
}

// Orchestrator séquence les deux stratégies sous la politique de repli.
// Par requête le pipeline est séquentiel : les sous-titres sont toujours
// tentés avant l'audio (garantie d'ordre, pas une optimisation). Plusieurs
// requêtes indépendantes peuvent tourner en parallèle, seuls les caches des
// composants sont partagés.
type Orchestrator struct {
	resolver *videoid.Resolver
	captions Strategy
	audio    Strategy
	prober   DurationProber // peut être nil : la vérification reste faite côté audio
	log      logger.Interface
	opts     Options
}

// New construit l'orchestrateur. captions et audio sont requis, prober est
// optionnel, log nil = silencieux.
func New(resolver *videoid.Resolver, captions, audioStrategy Strategy, prober DurationProber, log logger.Interface, opts Options) *Orchestrator {
	if log == nil {
		log = logger.Nop{}
	}
	if opts.FallbackThreshold <= 0 {
		opts.FallbackThreshold = DefaultFallbackThreshold
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultMaxWords
	}
	if opts.MinWordLength <= 0 {
		opts.MinWordLength = words.DefaultMinWordLength
	}
	if opts.MaxDurationSeconds <= 0 {
		opts.MaxDurationSeconds = audio.DefaultMaxVideoDuration.Seconds()
	}
	return &Orchestrator{
		resolver: resolver,
		captions: captions,
		audio:    audioStrategy,
		prober:   prober,
		log:      log,
		opts:     opts,
	}
}

// Run exécute le pipeline complet pour une référence vidéo brute.
// États : résolution -> garde de durée -> sous-titres -> (audio si déclenché)
// -> normalisation -> déduplication -> plafonnement -> assemblage.
func (o *Orchestrator) Run(ctx context.Context, rawURL string) (*model.ExtractionResult, error) {
	id, err := o.resolver.Resolve(rawURL)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", rawURL, err)
	}
	o.log.Infof("extraction: vidéo %s", id)

	// garde de durée avant tout appel sous-titres ou audio ; un probe en
	// échec n'est pas fatal, la garde côté audio reste en place
	var probedInfo *audio.StreamInfo
	if o.prober != nil {
		if info, perr := o.prober.Probe(ctx, id); perr != nil {
			o.log.Warnf("extraction %s: probe de durée impossible : %v", id, perr)
		} else if info.DurationSeconds > o.opts.MaxDurationSeconds {
			return nil, fmt.Errorf("extraction %s: durée %.0fs > %.0fs: %w",
				id, info.DurationSeconds, o.opts.MaxDurationSeconds, audio.ErrVideoTooLong)
		} else {
			probedInfo = &info
		}
	}

	var raw []model.WordOccurrence

	// 1) sous-titres : un échec est capturé et logué, traité comme zéro mot
	captionWords, capErr := o.captions.Extract(ctx, id)
	if capErr != nil {
		o.log.Warnf("extraction %s: stratégie sous-titres en échec : %v", id, capErr)
	} else {
		raw = append(raw, captionWords...)
	}
	captionSuccess := capErr == nil && len(captionWords) > 0

	// 2) décision de repli, évaluée UNE fois, jamais réévaluée après l'audio
	audioNeeded := !captionSuccess || len(raw) < o.opts.FallbackThreshold

	// 3) audio : les mots sont ajoutés APRÈS ceux des sous-titres, jamais en
	// remplacement ; un dépassement de durée détecté ici est fatal
	audioSuccess := false
	if audioNeeded {
		audioWords, audErr := o.runAudio(ctx, id, probedInfo)
		switch {
		case errors.Is(audErr, audio.ErrVideoTooLong):
			return nil, fmt.Errorf("extraction %s: %w", id, audErr)
		case audErr != nil:
			o.log.Warnf("extraction %s: stratégie audio en échec : %v", id, audErr)
		default:
			raw = append(raw, audioWords...)
			audioSuccess = len(audioWords) > 0
		}
	}

	// 4) aucun mot brut des deux côtés -> échec global, pas de résultat partiel
	if len(raw) == 0 {
		return nil, fmt.Errorf("extraction %s: %w", id, ErrNoWordsExtracted)
	}

	// 5-7) normalisation, déduplication en ordre de première occurrence,
	// plafonnement en préservant les mots vus le plus tôt
	pairs := words.Dedupe(words.NormalizePairs(raw, o.opts.MinWordLength))
	if len(pairs) > o.opts.MaxWords {
		pairs = pairs[:o.opts.MaxWords]
	}

	result := &model.ExtractionResult{
		VideoID:    id,
		Words:      make([]string, 0, len(pairs)),
		Timestamps: make([]float64, 0, len(pairs)),
		Metrics: model.Metrics{
			TotalWordsSeen:  len(raw),
			UniqueWordCount: len(pairs),
			CaptionSuccess:  captionSuccess,
			AudioSuccess:    audioSuccess,
		},
	}
	for _, p := range pairs {
		result.Words = append(result.Words, p.Word)
		result.Timestamps = append(result.Timestamps, p.Timestamp)
	}

	o.log.Infof("extraction %s: %d mots uniques (%d bruts, captions=%t, audio=%t)",
		id, result.Metrics.UniqueWordCount, result.Metrics.TotalWordsSeen,
		captionSuccess, audioSuccess)
	return result, nil
}

// runAudio invoque la stratégie audio en réutilisant les informations de piste
// déjà obtenues par la garde de durée quand la stratégie le permet, afin de ne
// pas résoudre deux fois la même vidéo dans la même requête.
func (o *Orchestrator) runAudio(ctx context.Context, id model.VideoID, info *audio.StreamInfo) ([]model.WordOccurrence, error) {
	if info != nil {
		if s, ok := o.audio.(infoStrategy); ok {
			return s.ExtractWithInfo(ctx, id, *info)
		}
	}
	return o.audio.Extract(ctx, id)
}
