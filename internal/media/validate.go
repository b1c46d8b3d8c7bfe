package media

import "regexp"

var videoURLRegex = regexp.MustCompile(`(?i)https?://(www\.)?(youtube\.com/(watch\?v=|embed/|v/)|youtu\.be/)`)

// IsVideoURL indique si s ressemble à une URL de vidéo acceptée.
// Vérification de forme seulement ; la résolution stricte de l'identifiant
// est faite par le package videoid.
func IsVideoURL(s string) bool {
	return videoURLRegex.MatchString(s)
}
