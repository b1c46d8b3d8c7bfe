// Package app orchestre les différentes dépendances (UI, yt-dlp, pipeline
// d'extraction, persistance) et exécute le flux principal du programme.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rupeshkotha/Sign-language-generator/internal/audio"
	"github.com/Rupeshkotha/Sign-language-generator/internal/captions"
	"github.com/Rupeshkotha/Sign-language-generator/internal/clipboard"
	"github.com/Rupeshkotha/Sign-language-generator/internal/config"
	"github.com/Rupeshkotha/Sign-language-generator/internal/extract"
	"github.com/Rupeshkotha/Sign-language-generator/internal/fsutil"
	"github.com/Rupeshkotha/Sign-language-generator/internal/history"
	"github.com/Rupeshkotha/Sign-language-generator/internal/media"
	"github.com/Rupeshkotha/Sign-language-generator/internal/report"
	"github.com/Rupeshkotha/Sign-language-generator/internal/speech"
	"github.com/Rupeshkotha/Sign-language-generator/internal/ui"
	"github.com/Rupeshkotha/Sign-language-generator/internal/videoid"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/logger"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

const (
	defaultUpdateTimeout  = 15 * time.Second
	defaultExtractTimeout = 10 * time.Minute
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	URL        string
	Auto       bool
	YtDlpPath  string
	History    int // > 0 : afficher les n dernières extractions puis quitter
}

// App orchestre les différentes dépendances (UI, YtDlp, pipeline, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	renderer *report.Renderer
	log      logger.Interface

	dlClient media.Interface // présent : client yt-dlp initialisé dans Run
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, renderer *report.Renderer) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		renderer: renderer,
		log:      logger.New(),
	}
}

// Run exécute le flux principal. Il initialise le client yt-dlp (via InitYtDlp)
// en utilisant le ctx : l'initialisation respecte annulation/signaux.
func (a *App) Run(ctx context.Context) error {
	// Récupération de l'URL : priorité flag > clipboard > prompt
	url := a.flags.URL
	if url == "" {
		u, err := a.ui.GetVideoURL(ctx)
		if err != nil {
			return fmt.Errorf("get url: %w", err)
		}
		url = u
	}

	// si l'utilisateur a passé --yt-dlp-path, l'appliquer et re-resoudre
	if a.flags.YtDlpPath != "" {
		a.cfg.YtDlp.Path = a.flags.YtDlpPath
		a.cfg.ResolveYtDlpPath()
	}

	// Init yt-dlp (CheckBinary + version)
	dl, version, err := media.InitYtDlp(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("yt-dlp init: %w", err)
	}
	a.dlClient = dl

	// Update check (optionnel)
	if a.cfg.YtDlp.AutoUpdateCheck {
		a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version)
	}

	orch := a.buildPipeline(dl)

	// Extraction
	exCtx, exCancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer exCancel()

	result, err := orch.Run(exCtx, url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("opération annulée")
		}
		return fmt.Errorf("extraction: %w", err)
	}
	if verr := result.Validate(); verr != nil {
		return fmt.Errorf("résultat invalide: %w", verr)
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("Vidéo %s : %d mots uniques (%d vus, sous-titres=%t, audio=%t)",
		result.VideoID, result.Metrics.UniqueWordCount, result.Metrics.TotalWordsSeen,
		result.Metrics.CaptionSuccess, result.Metrics.AudioSuccess))

	// préparation dossier de sortie + sauvegardes
	outDir := a.cfg.OutputDir
	if a.cfg.SaveInSubdir {
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(result.VideoID.String()))
	}

	if a.cfg.SaveResultJSON {
		jsonPath, err := SaveResultJSON(result, outDir)
		if err != nil {
			return fmt.Errorf("sauvegarde JSON: %w", err)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Résultat JSON écrit : %s", jsonPath))
	}

	if a.cfg.SaveReport && a.renderer != nil {
		data := report.NewReportData(result, time.Now())
		content, rerr := a.renderer.Render("word_report.md.tmpl", data)
		if rerr != nil {
			return fmt.Errorf("render report: %w", rerr)
		}
		mdPath, werr := fsutil.SaveFileAtomic(outDir, data.Filename, ".md", content, true)
		if werr != nil {
			return fmt.Errorf("sauvegarde rapport: %w", werr)
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Rapport écrit : %s", mdPath))
	}

	if a.cfg.CopyToClipbrd {
		if cerr := clipboard.WriteAll(joinWords(result.Words)); cerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie presse-papier impossible: %v", cerr))
		} else {
			a.ui.PrintInfo(ctx, "Liste des mots copiée dans le presse-papier.")
		}
	}

	// historique local (non fatal)
	if a.cfg.History.Enabled {
		if herr := a.saveHistory(ctx, url, result); herr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: écriture historique: %v", herr))
		}
	}

	if a.cfg.AutoMode {
		return nil
	}
	// Attendre terminaison (Ctrl+C) via UI
	return a.ui.WaitForExit(ctx)
}

// buildPipeline assemble le pipeline d'extraction à partir de la config.
func (a *App) buildPipeline(dl media.Interface) *extract.Orchestrator {
	ext := a.cfg.Extraction

	resolver := videoid.NewResolver(ext.URLCacheSize)

	provider := captions.NewTimedTextProvider(
		a.cfg.Captions.BaseURL,
		a.cfg.Captions.Language,
		time.Duration(a.cfg.Captions.TimeoutSeconds)*time.Second,
		0,
	)
	capStrategy := captions.NewExtractor(provider, ext.CaptionCacheSize, a.log)

	audioStrategy := audio.NewExtractor(dl, a.buildRecognizer(), a.log)
	audioStrategy.ChunkDuration = time.Duration(ext.ChunkDuration) * time.Second
	audioStrategy.MaxVideoDuration = time.Duration(ext.MaxVideoDuration) * time.Second
	if a.cfg.Speech.TimeoutSeconds > 0 {
		audioStrategy.ChunkTimeout = time.Duration(a.cfg.Speech.TimeoutSeconds) * time.Second
	}

	return extract.New(resolver, capStrategy, audioStrategy, dl, a.log, extract.Options{
		FallbackThreshold:  ext.FallbackThreshold,
		MaxWords:           ext.MaxWords,
		MinWordLength:      ext.MinWordLength,
		MaxDurationSeconds: float64(ext.MaxVideoDuration),
	})
}

// buildRecognizer retourne le client de reconnaissance configuré, ou un
// recognizer neutre si l'endpoint est vide (la voie audio échouera proprement
// chunk par chunk, sans casser le pipeline).
func (a *App) buildRecognizer() audio.Recognizer {
	r, err := speech.NewHTTPRecognizer(
		a.cfg.Speech.Endpoint,
		time.Duration(a.cfg.Speech.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		a.log.Warnf("speech: endpoint non configuré, voie audio désactivée")
		return disabledRecognizer{}
	}
	return r
}

// disabledRecognizer : utilisé quand aucun service de reconnaissance n'est
// configuré. Chaque chunk échoue avec ErrNoSpeech.
type disabledRecognizer struct{}

func (disabledRecognizer) Recognize(ctx context.Context, chunk []byte) (string, error) {
	return "", fmt.Errorf("reconnaissance vocale non configurée: %w", audio.ErrNoSpeech)
}

// saveHistory enregistre le résumé de l'extraction dans la base locale.
// Ouverture/fermeture par appel : l'historique n'est écrit qu'une fois par run.
func (a *App) saveHistory(ctx context.Context, url string, result *model.ExtractionResult) error {
	store, err := history.NewStore(a.cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveResult(ctx, url, result)
	return err
}

// joinWords produit la séquence de mots uniques séparés par des espaces, le
// format attendu par les consommateurs du presse-papier.
func joinWords(ws []string) string {
	return strings.Join(ws, " ")
}
