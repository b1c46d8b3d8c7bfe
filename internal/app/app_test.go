package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rupeshkotha/Sign-language-generator/internal/config"
	"github.com/Rupeshkotha/Sign-language-generator/internal/history"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// fakeUI capture les messages affichés, pour vérifier les sorties de l'app.
type fakeUI struct {
	infos  []string
	errors []string
}

func (f *fakeUI) GetVideoURL(ctx context.Context) (string, error) { return "", nil }
func (f *fakeUI) WaitForExit(ctx context.Context) error           { return nil }
func (f *fakeUI) PrintInfo(ctx context.Context, s string)         { f.infos = append(f.infos, s) }
func (f *fakeUI) PrintError(ctx context.Context, s string)        { f.errors = append(f.errors, s) }

func seedRun(t *testing.T, dbPath, url, videoID string, unique int) {
	t.Helper()
	store, err := history.NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	res := &model.ExtractionResult{
		VideoID:    model.VideoID(videoID),
		Words:      []string{"hello"},
		Timestamps: []float64{0},
		Metrics: model.Metrics{
			TotalWordsSeen:  unique + 2,
			UniqueWordCount: unique,
			CaptionSuccess:  true,
		},
	}
	if _, err := store.SaveResult(context.Background(), url, res); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
}

func TestShowHistory_PrintsRecentRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	seedRun(t, dbPath, "https://youtu.be/aaaaaaaaaaa", "aaaaaaaaaaa", 3)
	seedRun(t, dbPath, "https://youtu.be/bbbbbbbbbbb", "bbbbbbbbbbb", 7)

	tui := &fakeUI{}
	cfg := &config.Config{}
	cfg.History.Enabled = true
	cfg.History.Path = dbPath
	a := New(cfg, tui, &CLIFlags{}, nil)

	if err := a.ShowHistory(context.Background(), 10); err != nil {
		t.Fatalf("ShowHistory: %v", err)
	}
	if len(tui.infos) != 3 {
		t.Fatalf("%d lignes affichées; want 3 (entête + 2 extractions) : %#v", len(tui.infos), tui.infos)
	}
	// plus récente d'abord
	if !strings.Contains(tui.infos[1], "bbbbbbbbbbb") || !strings.Contains(tui.infos[1], "7 mots uniques") {
		t.Errorf("première ligne = %q; want vidéo bbbbbbbbbbb avec 7 mots uniques", tui.infos[1])
	}
	if !strings.Contains(tui.infos[2], "aaaaaaaaaaa") {
		t.Errorf("seconde ligne = %q; want vidéo aaaaaaaaaaa", tui.infos[2])
	}
}

func TestShowHistory_EmptyDatabase(t *testing.T) {
	tui := &fakeUI{}
	cfg := &config.Config{}
	cfg.History.Enabled = true
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")
	a := New(cfg, tui, &CLIFlags{}, nil)

	if err := a.ShowHistory(context.Background(), 5); err != nil {
		t.Fatalf("ShowHistory: %v", err)
	}
	if len(tui.infos) != 1 || !strings.Contains(tui.infos[0], "Aucune extraction") {
		t.Errorf("infos = %#v; want un seul message d'historique vide", tui.infos)
	}
}

func TestShowHistory_DisabledInConfig(t *testing.T) {
	cfg := &config.Config{}
	a := New(cfg, &fakeUI{}, &CLIFlags{}, nil)

	if err := a.ShowHistory(context.Background(), 5); err == nil {
		t.Fatal("ShowHistory: erreur attendue quand l'historique est désactivé")
	}
}

func TestJoinWords_SpaceSeparated(t *testing.T) {
	got := joinWords([]string{"hello", "world", "sign"})
	if got != "hello world sign" {
		t.Errorf("joinWords = %q; want %q", got, "hello world sign")
	}
	if got := joinWords(nil); got != "" {
		t.Errorf("joinWords(nil) = %q; want vide", got)
	}
}
