// Package captions implémente la stratégie d'extraction par sous-titres :
// récupération de la piste auprès d'un provider externe, découpage de chaque
// cue en tokens horodatés, mémoïsation par identifiant vidéo.
package captions

import (
	"context"
	"errors"

	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// ErrNoCaptions : aucune piste de sous-titres disponible pour cette vidéo
// (piste absente ou appel provider en échec).
var ErrNoCaptions = errors.New("aucun sous-titre disponible pour cette vidéo")

// Provider est l'abstraction du fournisseur de sous-titres. Elle facilite le
// test en autorisant une implémentation factice. Un seul appel réseau par
// extraction ; le provider peut échouer ou expirer (timeout via ctx).
type Provider interface {
	GetCaptions(ctx context.Context, id model.VideoID) ([]model.TranscriptEntry, error)
}
