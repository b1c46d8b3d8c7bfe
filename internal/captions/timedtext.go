package captions

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Rupeshkotha/Sign-language-generator/internal/fetch"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

// DefaultTimedTextBaseURL : endpoint timedtext public, format json3.
const DefaultTimedTextBaseURL = "https://www.youtube.com/api/timedtext"

// rawTimedText représente la structure "brute" du payload json3 telle qu'on
// la récupère depuis l'endpoint timedtext.
type rawTimedText struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
	// On ignore volontairement les autres champs (wpWinPosId, wWinId, etc.)
}

type rawSeg struct {
	Utf8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

// text concatène les segs de l'event en un seul fragment.
// Retourne "" pour un event sans contenu utile (segs vides ou newline seuls).
func (e rawEvent) text() string {
	var b strings.Builder
	for _, s := range e.Segs {
		t := strings.ReplaceAll(s.Utf8, "\\n", " ")
		t = strings.ReplaceAll(t, "\n", " ")
		if strings.TrimSpace(t) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(t))
	}
	return b.String()
}

// TimedTextProvider récupère la piste json3 via HTTP.
type TimedTextProvider struct {
	BaseURL  string
	Lang     string
	Timeout  time.Duration
	MaxBytes int64
}

// NewTimedTextProvider construit un provider avec les valeurs par défaut là où
// la config est vide.
func NewTimedTextProvider(baseURL, lang string, timeout time.Duration, maxBytes int64) *TimedTextProvider {
	if baseURL == "" {
		baseURL = DefaultTimedTextBaseURL
	}
	if lang == "" {
		lang = "en"
	}
	return &TimedTextProvider{
		BaseURL:  baseURL,
		Lang:     lang,
		Timeout:  timeout,
		MaxBytes: maxBytes,
	}
}

// GetCaptions télécharge et parse la piste. Un payload sans aucun event
// textuel est traité comme une absence de piste (ErrNoCaptions).
func (p *TimedTextProvider) GetCaptions(ctx context.Context, id model.VideoID) ([]model.TranscriptEntry, error) {
	reqURL := fmt.Sprintf("%s?v=%s&lang=%s&fmt=json3",
		p.BaseURL, url.QueryEscape(id.String()), url.QueryEscape(p.Lang))

	var raw rawTimedText
	if err := fetch.JSONInto(ctx, reqURL, p.Timeout, p.MaxBytes, &raw); err != nil {
		return nil, fmt.Errorf("timedtext %s: %w", id, err)
	}

	entries := entriesFromRaw(raw)
	if len(entries) == 0 {
		return nil, ErrNoCaptions
	}
	return entries, nil
}

// entriesFromRaw transforme le payload brut en entrées de transcript, dans
// l'ordre du flux. Les events sans timestamp ou sans texte sont ignorés.
func entriesFromRaw(raw rawTimedText) []model.TranscriptEntry {
	var out []model.TranscriptEntry
	for _, ev := range raw.Events {
		txt := ev.text()
		if txt == "" || ev.TStartMs == nil {
			continue
		}
		start := float64(*ev.TStartMs) / 1000.0
		if start < 0 {
			start = 0
		}
		out = append(out, model.TranscriptEntry{Text: txt, Start: start})
	}
	return out
}
