// Package speech fournit le client HTTP du service de reconnaissance vocale.
// C'est l'implémentation de production de audio.Recognizer : un POST du chunk
// audio brut, une réponse JSON {text}. Un seul essai par chunk, le timeout
// vient du contexte appelant.
package speech

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rupeshkotha/Sign-language-generator/internal/audio"
	"github.com/Rupeshkotha/Sign-language-generator/internal/fetch"
)

const (
	defaultContentType = "application/octet-stream"
	// DefaultMaxResponseBytes : un transcript de chunk reste petit.
	DefaultMaxResponseBytes = 1_000_000
)

// recognizeResponse est la réponse JSON du service.
type recognizeResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// HTTPRecognizer soumet chaque chunk à un endpoint de transcription.
type HTTPRecognizer struct {
	Endpoint string
	Timeout  time.Duration
	MaxBytes int64
}

// NewHTTPRecognizer construit le client. endpoint est requis.
func NewHTTPRecognizer(endpoint string, timeout time.Duration) (*HTTPRecognizer, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("speech: endpoint de reconnaissance vide")
	}
	return &HTTPRecognizer{
		Endpoint: endpoint,
		Timeout:  timeout,
		MaxBytes: DefaultMaxResponseBytes,
	}, nil
}

// Recognize envoie le chunk et retourne le texte reconnu.
// Retourne audio.ErrNoSpeech (enveloppée) si le service n'a rien entendu :
// l'appelant saute le chunk et continue.
func (r *HTTPRecognizer) Recognize(ctx context.Context, chunk []byte) (string, error) {
	if len(chunk) == 0 {
		return "", fmt.Errorf("speech: chunk vide: %w", audio.ErrNoSpeech)
	}

	var resp recognizeResponse
	if err := fetch.PostJSONInto(ctx, r.Endpoint, chunk, defaultContentType, r.Timeout, r.MaxBytes, &resp); err != nil {
		return "", fmt.Errorf("speech: recognize: %w", err)
	}

	if resp.Error != "" {
		// le service signale explicitement l'absence de parole
		return "", fmt.Errorf("speech: %s: %w", resp.Error, audio.ErrNoSpeech)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("speech: transcript vide: %w", audio.ErrNoSpeech)
	}
	return resp.Text, nil
}
