// Package report produit le compte-rendu markdown d'une extraction
// à partir d'un template (embarqué ou sur disque).
package report

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"text/template"
)

// Renderer gère le parsing paresseux (lazy) des templates et fournit des méthodes de rendu.
type Renderer struct {
	templates *template.Template // templates parsés
	fsys      fs.FS              // source des templates (embed.FS ou os.DirFS)
	patterns  []string           // patterns relatifs au fsys, ex: "templates/*.tmpl"
	once      sync.Once          // protège l'initialisation paresseuse
	err       error              // mémorise l'erreur d'initialisation (utile avec once)
}

// NewRendererFromFS construit un Renderer configuré pour parser ultérieurement les patterns
// fournis depuis le fsys (ne parse pas immédiatement).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	// copy patterns pour sécurité
	cp := append([]string(nil), patterns...)
	return &Renderer{
		fsys:     fsys,
		patterns: cp,
	}, nil
}

// DefaultRenderer lit les templates depuis le dossier "templates" à côté du binaire
// et parse tout de suite.
func DefaultRenderer(exePath string) (*Renderer, error) {
	binDir := filepath.Dir(exePath)
	tplDir := filepath.Join(binDir, "templates")

	fsys := os.DirFS(tplDir)

	r, err := NewRendererFromFS(fsys, []string{"word_report.md.tmpl"})
	if err != nil {
		return nil, err
	}
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseTemplates effectue le parsing des templates une seule fois (sync.Once).
func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root")
		var lastErr error
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				lastErr = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				break
			}
		}
		if lastErr != nil {
			r.err = lastErr
			return
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force l'initialisation / parsing immédiat et retourne l'erreur si problème.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// Render exécute le template nommé tmplName (basename du fichier .tmpl) avec data.
// Assure le parsing paresseux avant exécution.
func (r *Renderer) Render(tmplName string, data ReportData) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}
