// Package history persiste un historique local des extractions dans SQLite.
// Base embarquée (driver pur Go), une ligne par extraction réussie.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// Run est une ligne d'historique : le résumé d'une extraction.
type Run struct {
	ID             int64
	VideoID        string
	URL            string
	TotalWords     int
	UniqueWords    int
	CaptionSuccess bool
	AudioSuccess   bool
	CreatedAt      time.Time
}

// Store encapsule la base SQLite.
type Store struct {
	db *sql.DB
}

// NewStore ouvre (ou crée) la base au chemin donné et applique le schéma.
func NewStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("création répertoire base %s : %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("ouverture base : %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration schéma : %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id        TEXT NOT NULL,
		url             TEXT NOT NULL,
		total_words     INTEGER NOT NULL,
		unique_words    INTEGER NOT NULL,
		caption_success INTEGER NOT NULL,
		audio_success   INTEGER NOT NULL,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_video ON runs(video_id);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close ferme la base.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult enregistre le résumé d'une extraction et retourne l'id de la ligne.
func (s *Store) SaveResult(ctx context.Context, url string, res *model.ExtractionResult) (int64, error) {
	if res == nil {
		return 0, fmt.Errorf("résultat nil")
	}
	out, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (video_id, url, total_words, unique_words, caption_success, audio_success, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(res.VideoID),
		url,
		res.Metrics.TotalWordsSeen,
		res.Metrics.UniqueWordCount,
		boolToInt(res.Metrics.CaptionSuccess),
		boolToInt(res.Metrics.AudioSuccess),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insertion historique : %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("lecture id inséré : %w", err)
	}
	return id, nil
}

// Recent retourne les dernières extractions, les plus récentes d'abord.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, video_id, url, total_words, unique_words, caption_success, audio_success, created_at
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("lecture historique : %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var capOK, audOK int
		var created string
		if err := rows.Scan(&r.ID, &r.VideoID, &r.URL, &r.TotalWords, &r.UniqueWords, &capOK, &audOK, &created); err != nil {
			return nil, fmt.Errorf("scan ligne historique : %w", err)
		}
		r.CaptionSuccess = capOK != 0
		r.AudioSuccess = audOK != 0
		if t, perr := time.Parse(time.RFC3339, created); perr == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
