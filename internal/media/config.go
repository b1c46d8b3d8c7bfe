package media

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	NoWarnings bool // true => ajouter --no-warnings
	NoProgress bool
	NoUpdate   bool
	NoConfig   bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewYtDlpConfig initialise une configuration standard de yt-dlp, showWarning vient du yaml de config
func NewYtDlpConfig(showWarning bool) *YtDlpConfig {
	return &YtDlpConfig{
		NoWarnings: !showWarning,
		NoProgress: true,
		NoUpdate:   true,
		NoConfig:   true, // ignorer les fichiers de config extérieurs (plus prévisible)
	}
}

// baseArgs : flags communs à toutes les invocations.
func (c *YtDlpConfig) baseArgs() []string {
	args := make([]string, 0, 8)
	// mettre --no-config en tête pour éviter que des configs locales modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	return args
}

// BuildProbeArgs construit les arguments pour `yt-dlp -j` (métadonnées seules).
func (c *YtDlpConfig) BuildProbeArgs(url string) []string {
	args := c.baseArgs()
	args = append(args, "-j", "--skip-download", url)
	return args
}

// BuildAudioArgs construit les arguments pour tirer la piste audio-only sur stdout.
func (c *YtDlpConfig) BuildAudioArgs(url string) []string {
	args := c.baseArgs()
	args = append(args, "-f", "bestaudio", "-o", "-", url)
	return args
}
