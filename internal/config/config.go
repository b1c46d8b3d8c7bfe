package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Rupeshkotha/Sign-language-generator/internal/assets"
	"github.com/Rupeshkotha/Sign-language-generator/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Organisation
	SaveInSubdir bool `yaml:"save_in_subdir"`

	// Sorties
	SaveResultJSON bool `yaml:"save_result_json"`
	SaveReport     bool `yaml:"save_report"`
	CopyToClipbrd  bool `yaml:"copy_to_clipboard"`

	// Mode automatique
	AutoMode bool `yaml:"auto_mode"`

	// Extraction
	Extraction struct {
		MaxVideoDuration  int `yaml:"max_video_duration"`
		ChunkDuration     int `yaml:"chunk_duration"`
		MinWordLength     int `yaml:"min_word_length"`
		MaxWords          int `yaml:"max_words"`
		FallbackThreshold int `yaml:"fallback_threshold"`
		URLCacheSize      int `yaml:"url_cache_size"`
		CaptionCacheSize  int `yaml:"caption_cache_size"`
	} `yaml:"extraction"`

	// Sous-titres
	Captions struct {
		BaseURL        string `yaml:"base_url"`
		Language       string `yaml:"language"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"captions"`

	// Reconnaissance vocale
	Speech struct {
		Endpoint       string `yaml:"endpoint"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"speech"`

	// Historique (SQLite)
	History struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"history"`

	// yt-dlp
	YtDlp struct {
		Name            string `yaml:"name"`
		Path            string `yaml:"path"`
		ShowWarnings    bool   `yaml:"show_warnings"`
		AutoUpdateCheck bool   `yaml:"auto_update_check"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."

	// Organisation
	c.SaveInSubdir = true

	// Sorties
	c.SaveResultJSON = true
	c.SaveReport = true
	c.CopyToClipbrd = false

	// Mode automatique
	c.AutoMode = false

	// Extraction
	c.Extraction.MaxVideoDuration = 3600
	c.Extraction.ChunkDuration = 5
	c.Extraction.MinWordLength = 2
	c.Extraction.MaxWords = 100
	c.Extraction.FallbackThreshold = 5
	c.Extraction.URLCacheSize = 100
	c.Extraction.CaptionCacheSize = 50

	// Sous-titres
	c.Captions.BaseURL = "https://www.youtube.com/api/timedtext"
	c.Captions.Language = "en"
	c.Captions.TimeoutSeconds = 15

	// Reconnaissance vocale
	c.Speech.Endpoint = ""
	c.Speech.TimeoutSeconds = 20

	// Historique
	c.History.Enabled = true
	c.History.Path = "signwords.db"

	// yt-dlp
	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false
	c.YtDlp.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "signwords.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	// lire l'asset embarqué via assets.Embedded et DefaultConfigAsset
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// s'assurer que le dossier parent existe
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = "signwords.db"
	}

	// Bornes d'extraction : les valeurs non positives retombent sur les defaults
	d := defaultConfig()
	if c.Extraction.MaxVideoDuration <= 0 {
		c.Extraction.MaxVideoDuration = d.Extraction.MaxVideoDuration
	}
	if c.Extraction.ChunkDuration <= 0 {
		c.Extraction.ChunkDuration = d.Extraction.ChunkDuration
	}
	if c.Extraction.MinWordLength <= 0 {
		c.Extraction.MinWordLength = d.Extraction.MinWordLength
	}
	if c.Extraction.MaxWords <= 0 {
		c.Extraction.MaxWords = d.Extraction.MaxWords
	}
	if c.Extraction.FallbackThreshold < 0 {
		c.Extraction.FallbackThreshold = d.Extraction.FallbackThreshold
	}
	if c.Extraction.URLCacheSize <= 0 {
		c.Extraction.URLCacheSize = d.Extraction.URLCacheSize
	}
	if c.Extraction.CaptionCacheSize <= 0 {
		c.Extraction.CaptionCacheSize = d.Extraction.CaptionCacheSize
	}

	// Sous-titres et reconnaissance
	c.Captions.BaseURL = strings.TrimSpace(c.Captions.BaseURL)
	if c.Captions.BaseURL == "" {
		c.Captions.BaseURL = d.Captions.BaseURL
	}
	c.Captions.Language = strings.TrimSpace(strings.ToLower(c.Captions.Language))
	if c.Captions.Language == "" {
		c.Captions.Language = d.Captions.Language
	}
	if c.Captions.TimeoutSeconds <= 0 {
		c.Captions.TimeoutSeconds = d.Captions.TimeoutSeconds
	}
	c.Speech.Endpoint = strings.TrimSpace(c.Speech.Endpoint)
	if c.Speech.TimeoutSeconds <= 0 {
		c.Speech.TimeoutSeconds = d.Speech.TimeoutSeconds
	}

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	// Normaliser le nom et ajouter .exe sur Windows si nécessaire
	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	// Résolution du chemin
	// si cfg.Path est vide -> "./<exe>"
	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		relativePath := "./" + exeName
		c.YtDlp.ResolvedPath = relativePath
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
