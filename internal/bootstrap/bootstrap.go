// Package bootstrap installe les fichiers par défaut (config, templates)
// au premier lancement, à partir des assets embarqués.
package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Rupeshkotha/Sign-language-generator/internal/fsutil"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers dstPath
// si dstPath n'existe pas encore.
// - dstPath : chemin complet sur disque (ex: binDir/signwords.yaml)
// - fsys : embed.FS (ou autre fs.FS) contenant l'asset
// - assetPath : chemin dans fsys vers l'asset (ex: "signwords.example.yaml")
// Comportement : idempotent, ne remplace jamais un fichier existant.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) error {
	// sécurité: vérifier parent
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
			}
		} else {
			return fmt.Errorf("échec test parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}

	fmt.Printf("info: created default config at %s\n", dstPath)

	return nil
}

// EnsureTemplatesPresent s'assure que les templates listés existent sur disque.
//
// - tplDir  : dossier destination sur disque (ex: "./templates")
// - fsys    : embed.FS (ou autre fs.FS) contenant les ressources embarquées
// - srcFiles: liste explicite de chemins DANS fsys
//
// Comportement :
//  1. Si tplDir n'existe pas ou est vide -> crée tplDir et copie tous les
//     fichiers listés.
//  2. Sinon -> ne copie que les fichiers absents.
//  3. NE REMPLACE JAMAIS les fichiers existants.
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	copyAll := false

	if _, err := os.Stat(tplDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du répertoire de templates %s : %w", tplDir, err)
		}
		if err := os.MkdirAll(tplDir, 0o755); err != nil {
			return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
		}
		copyAll = true
	} else {
		empty, err := fsutil.IsDirEmpty(tplDir)
		if err != nil {
			return fmt.Errorf("échec lors de la vérification du répertoire %s : %w", tplDir, err)
		}
		copyAll = empty
	}

	for _, src := range srcFiles {
		base := filepath.Base(src)
		dest := filepath.Join(tplDir, base)

		if !copyAll {
			if _, err := os.Stat(dest); err == nil {
				// le fichier existe déjà -> on saute
				continue
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
			}
		}

		data, rerr := fs.ReadFile(fsys, filepath.ToSlash(src))
		if rerr != nil {
			return fmt.Errorf("échec de lecture de la ressource embarquée %s : %w", src, rerr)
		}
		if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
			return fmt.Errorf("échec d'écriture du template %s : %w", dest, err)
		}
	}
	return nil
}
