package media

import "fmt"

// probeOutput représente la sortie JSON brute retournée par yt-dlp pour une
// vidéo. On ne mappe que les champs utiles à la résolution du flux audio ;
// le reste du JSON est ignoré proprement.
type probeOutput struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Duration float64       `json:"duration"` // secondes
	Formats  []probeFormat `json:"formats"`
}

type probeFormat struct {
	FormatID string `json:"format_id"`
	ACodec   string `json:"acodec"`
	VCodec   string `json:"vcodec"`
	Ext      string `json:"ext"`
}

// hasAudio : au moins un format portant une piste audio.
func (p probeOutput) hasAudio() bool {
	for _, f := range p.Formats {
		if f.ACodec != "" && f.ACodec != "none" {
			return true
		}
	}
	return false
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + args.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe
	Config YtDlpConfig
}

func (y YtDlp) ShowPath() {
	fmt.Println("yt-dlp path:", y.Path)
}
