package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// countingReader compte le nombre d'octets lus via Read.
type countingReader struct {
	R io.Reader
	N int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	if n > 0 {
		c.N += int64(n)
	}
	return n, err
}

// JSONInto télécharge rawURL et décode le JSON directement dans dst (dst doit
// être un pointeur). Décodage sur reader limité : si le decode a consommé plus
// de maxBytes, on retourne ErrTooLarge.
func JSONInto(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64, dst interface{}) error {
	return doJSON(ctx, http.MethodGet, rawURL, nil, "", timeout, maxBytes, dst)
}

// PostJSONInto envoie body (avec contentType) en POST sur rawURL et décode la
// réponse JSON dans dst. Utilisé pour soumettre un chunk audio au service de
// reconnaissance vocale.
func PostJSONInto(ctx context.Context, rawURL string, body []byte, contentType string, timeout time.Duration, maxBytes int64, dst interface{}) error {
	return doJSON(ctx, http.MethodPost, rawURL, body, contentType, timeout, maxBytes, dst)
}

func doJSON(ctx context.Context, method, rawURL string, body []byte, contentType string, timeout time.Duration, maxBytes int64, dst interface{}) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return fmt.Errorf("fetch json: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("fetch json: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch json: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch json: %w: %s", ErrStatus, resp.Status)
	}

	if resp.ContentLength > 0 && resp.ContentLength > maxBytes {
		return fmt.Errorf("fetch json: %w: content-length %d > %d", ErrTooLarge, resp.ContentLength, maxBytes)
	}

	// reader qui limite et qui compte les octets lus
	limitReader := io.LimitReader(resp.Body, maxBytes+1) // +1 pour détecter dépassement
	cr := &countingReader{R: limitReader}
	dec := json.NewDecoder(cr)

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("fetch json: decode: %w", err)
	}

	// si on a lu plus que maxBytes, le decode a consommé maxBytes+1 => overflow
	if cr.N > maxBytes {
		return ErrTooLarge
	}
	return nil
}
