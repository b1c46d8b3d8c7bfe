package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Rupeshkotha/Sign-language-generator/internal/app"
	"github.com/Rupeshkotha/Sign-language-generator/internal/assets"
	"github.com/Rupeshkotha/Sign-language-generator/internal/bootstrap"
	"github.com/Rupeshkotha/Sign-language-generator/internal/config"
	"github.com/Rupeshkotha/Sign-language-generator/internal/report"
	"github.com/Rupeshkotha/Sign-language-generator/internal/ui"
)

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "signwords.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "signwords.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// s'assurer que les templates existent (dans binDir/templates)
	tplDir := filepath.Join(binDir, "templates")
	if err := bootstrap.EnsureTemplatesPresent(
		tplDir,
		assets.Embedded,
		assets.DefaultTemplatePaths,
	); err != nil {
		log.Printf("warning: ensure templates present: %v", err)
	}

	// charger la config depuis flags.ConfigPath
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	if err := cfg.ValidateExtraction(); err != nil {
		log.Fatalf("config invalide: %v", err)
	}
	if warnings, err := cfg.ValidateYtDlpPresence(); err != nil {
		log.Fatalf("config yt-dlp invalide: %v", err)
	} else {
		for _, w := range warnings {
			log.Printf("warning: %s", w)
		}
	}

	// appliquer le flag -auto par-dessus la config
	if flags.Auto {
		cfg.AutoMode = true
	}

	// construction du renderer
	renderer, err := report.DefaultRenderer(exePath)
	if err != nil {
		log.Fatalf("impossible de construire le renderer: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, renderer)

	// -history N : affichage de l'historique seul, sans extraction ni yt-dlp
	if flags.History > 0 {
		if err := a.ShowHistory(ctx, flags.History); err != nil {
			log.Fatalf("historique: %v", err)
		}
		return
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "signwords.yaml", "path to config file")
	flag.StringVar(&f.URL, "url", "", "URL de la vidéo (optionnel)")
	flag.BoolVar(&f.Auto, "auto", false, "exécution automatique sans interaction")
	flag.StringVar(&f.YtDlpPath, "yt-dlp-path", "", "chemin absolu vers l'exécutable yt-dlp")
	flag.IntVar(&f.History, "history", 0, "afficher les N dernières extractions puis quitter")
	flag.Parse()
	return f
}
