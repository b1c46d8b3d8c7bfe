package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Rupeshkotha/Sign-language-generator/internal/fsutil"
	"github.com/Rupeshkotha/Sign-language-generator/internal/history"
	"github.com/Rupeshkotha/Sign-language-generator/internal/updater"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// SaveResultJSON sauvegarde le résultat d'extraction en JSON indenté dans outDir.
// Écriture atomique via fsutil.WriteFileAtomic. Retourne le chemin final.
func SaveResultJSON(result *model.ExtractionResult, outDir string) (string, error) {
	if result == nil {
		return "", fmt.Errorf("SaveResultJSON: résultat nil")
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("SaveResultJSON: encodage JSON: %w", err)
	}

	path := filepath.Join(outDir, "words.json")
	if werr := fsutil.WriteFileAtomic(path, pretty, 0o644); werr != nil {
		return "", fmt.Errorf("write words.json: %w", werr)
	}
	return path, nil
}

// ShowHistory affiche les n dernières extractions enregistrées dans la base
// locale, les plus récentes d'abord. Utilisé par le flag -history.
func (a *App) ShowHistory(ctx context.Context, n int) error {
	if !a.cfg.History.Enabled {
		return fmt.Errorf("historique désactivé dans la configuration")
	}

	store, err := history.NewStore(a.cfg.History.Path)
	if err != nil {
		return fmt.Errorf("ouverture historique: %w", err)
	}
	defer store.Close()

	runs, err := store.Recent(ctx, n)
	if err != nil {
		return fmt.Errorf("lecture historique: %w", err)
	}
	if len(runs) == 0 {
		a.ui.PrintInfo(ctx, "Aucune extraction dans l'historique.")
		return nil
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("%d dernières extractions :", len(runs)))
	for _, r := range runs {
		a.ui.PrintInfo(ctx, fmt.Sprintf("  %s  %s  %d mots uniques (%d vus, sous-titres=%t, audio=%t)",
			r.CreatedAt.Format("2006-01-02 15:04"), r.VideoID,
			r.UniqueWords, r.TotalWords, r.CaptionSuccess, r.AudioSuccess))
	}
	return nil
}

// YtDlpUpdateCheck compare la version locale de yt-dlp à la dernière release
// GitHub et affiche le lien de téléchargement si une mise à jour existe.
// Non fatal : un échec de vérification est simplement signalé.
func (a *App) YtDlpUpdateCheck(ctx context.Context, timeout time.Duration, version string) error {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckYtDlpUpdate(uc, version)
	if err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("vérification de mise à jour a échoué : %v", err))
		return fmt.Errorf("vérification de mise à jour a échoué : %w", err)
	}

	if check.IsUpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return nil
	}

	a.ui.PrintInfo(ctx, "⚠️ Nouvelle version de yt-dlp disponible :")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	a.ui.PrintInfo(ctx, "Téléchargez-la ici:")
	a.ui.PrintInfo(ctx, check.GetUpdateLink(runtime.GOOS))

	return nil
}
