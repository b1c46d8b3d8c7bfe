package assets

import "embed"

//go:embed signwords.example.yaml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "signwords.example.yaml"

// DefaultTemplatePaths : liste ordonnée des templates "par défaut" embarqués.
// Ce sont des chemins relatifs DANS Embedded.
var DefaultTemplatePaths = []string{
	"templates/word_report.md.tmpl",
}

// TemplateByName donne un accès par clé (map).
var TemplateByName = map[string]string{
	"word_report": "templates/word_report.md.tmpl",
}
