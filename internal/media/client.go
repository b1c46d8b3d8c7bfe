// Package media résout et télécharge la piste audio d'une vidéo via le
// binaire yt-dlp. C'est l'implémentation de production de audio.StreamResolver
// (et du prober de durée de l'orchestrateur).
package media

import (
	"context"
	"fmt"
	"os"

	"github.com/Rupeshkotha/Sign-language-generator/internal/audio"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// Interface est l'abstraction utilisée par l'application. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	Probe(ctx context.Context, id model.VideoID) (audio.StreamInfo, error)
	Fetch(ctx context.Context, id model.VideoID) ([]byte, error)
}

// NewYtDlp construit une instance. resolvedPath doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

// CheckBinary vérifie que le binaire configuré existe et est un fichier.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	exe := y.Path
	if exe == "" {
		exe = y.Name // fallback : essayer le nom si pas de path résolu
	}

	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) à l'emplacement spécifié : %v", exe, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// watchURL reconstruit l'URL canonique à partir de l'identifiant résolu.
func watchURL(id model.VideoID) string {
	return "https://www.youtube.com/watch?v=" + id.String()
}
