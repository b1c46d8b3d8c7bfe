// Package audio implémente la stratégie d'extraction de secours : streaming
// de la piste audio en mémoire puis reconnaissance vocale par chunks de durée
// fixe. Phase intrinsèquement sérielle : chaque chunk consomme la position de
// buffer laissée par le précédent.
package audio

import (
	"context"
	"errors"

	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// Erreurs exportées
var (
	// ErrNoAudioStream : aucune piste audio exploitable pour l'identifiant.
	ErrNoAudioStream = errors.New("aucun flux audio disponible")
	// ErrVideoTooLong : durée au-delà du plafond configuré, vérifiée avant
	// tout téléchargement d'audio.
	ErrVideoTooLong = errors.New("durée de la vidéo au-delà du maximum autorisé")
	// ErrNoSpeech : le service de reconnaissance n'a détecté aucune parole
	// dans le chunk. Jamais fatal : le chunk est sauté.
	ErrNoSpeech = errors.New("aucune parole détectée dans le chunk")
)

// StreamInfo décrit la piste audio résolue, avant téléchargement.
type StreamInfo struct {
	DurationSeconds float64
	MimeType        string
}

// StreamResolver résout et télécharge la piste audio-only d'une vidéo.
// Probe est séparé de Fetch pour que la validation de durée puisse se faire
// avant de tirer le moindre octet d'audio.
type StreamResolver interface {
	// Probe retourne les informations de la piste ; ErrNoAudioStream si absente.
	Probe(ctx context.Context, id model.VideoID) (StreamInfo, error)
	// Fetch télécharge la piste entière dans un buffer mémoire.
	Fetch(ctx context.Context, id model.VideoID) ([]byte, error)
}

// Recognizer transcrit un chunk audio en texte. Peut échouer avec ErrNoSpeech
// ou expirer (timeout via ctx) : ces deux cas sont traités identiquement par
// l'extracteur (chunk sauté).
type Recognizer interface {
	Recognize(ctx context.Context, chunk []byte) (string, error)
}
