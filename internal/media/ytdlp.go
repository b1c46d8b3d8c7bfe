package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Rupeshkotha/Sign-language-generator/internal/audio"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}

// Probe exécute `yt-dlp -j <url>` et retourne les informations du flux audio.
// La sortie est validée comme JSON avant usage ; retourne audio.ErrNoAudioStream
// si la vidéo ne porte aucun format audio exploitable.
func (y *YtDlp) Probe(ctx context.Context, id model.VideoID) (audio.StreamInfo, error) {
	var empty audio.StreamInfo

	args := y.Config.BuildProbeArgs(watchURL(id))
	cmd := exec.CommandContext(ctx, y.exe(), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return empty, fmt.Errorf("yt-dlp probe failed: %w, output: %s", err, string(out))
	}

	// yt-dlp peut préfixer des lignes d'avertissement : ne garder que le JSON
	var jsonLine string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "{") {
			jsonLine = line
		}
	}
	if jsonLine == "" {
		return empty, fmt.Errorf("aucun JSON détecté dans la sortie yt-dlp: %s", string(out))
	}

	var probe probeOutput
	if err := json.Unmarshal([]byte(jsonLine), &probe); err != nil {
		return empty, fmt.Errorf("unmarshal probe output: %w", err)
	}

	if !probe.hasAudio() {
		return empty, fmt.Errorf("vidéo %s sans format audio: %w", id, audio.ErrNoAudioStream)
	}

	return audio.StreamInfo{
		DurationSeconds: probe.Duration,
		MimeType:        "audio/unknown",
	}, nil
}

// Fetch tire la piste audio-only entière sur stdout (`-f bestaudio -o -`) et
// la retourne en mémoire. stderr est capturé séparément pour le diagnostic.
func (y *YtDlp) Fetch(ctx context.Context, id model.VideoID) ([]byte, error) {
	args := y.Config.BuildAudioArgs(watchURL(id))
	cmd := exec.CommandContext(ctx, y.exe(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp audio fetch failed: %w, stderr: %s", err, stderr.String())
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("flux audio vide pour %s: %w", id, audio.ErrNoAudioStream)
	}
	return stdout.Bytes(), nil
}
