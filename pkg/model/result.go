package model

import "fmt"

// VideoID est l'identifiant canonique d'une vidéo source (token de 11 caractères
// extrait de n'importe quelle forme d'URL acceptée).
type VideoID string

func (id VideoID) String() string {
	return string(id)
}

// TranscriptEntry est une entrée de la piste de sous-titres telle que fournie
// par le provider : un fragment de texte + son offset de départ en secondes.
// Lecture seule, une entrée par cue.
type TranscriptEntry struct {
	Text  string
	Start float64 // secondes, >= 0
}

// WordOccurrence est un token brut émis par une stratégie d'extraction,
// avec son timestamp en secondes et la source qui l'a produit.
type WordOccurrence struct {
	Token     string
	Timestamp float64 // secondes, >= 0
	Source    Source
}

// Metrics résume le déroulement d'une extraction.
type Metrics struct {
	TotalWordsSeen  int  `json:"total_words"`
	UniqueWordCount int  `json:"unique_words"`
	CaptionSuccess  bool `json:"caption_success"`
	AudioSuccess    bool `json:"audio_success"`
}

// ExtractionResult est le résultat final : séquence ordonnée de mots uniques
// et timestamps alignés par index (Words[i] est apparu à Timestamps[i]).
// Invariant : len(Words) == len(Timestamps), toujours.
type ExtractionResult struct {
	VideoID    VideoID   `json:"video_id"`
	Words      []string  `json:"words"`
	Timestamps []float64 `json:"timestamps"`
	Metrics    Metrics   `json:"metrics"`
}

// Validate vérifie les invariants structurels du résultat.
// Utile en test et avant sauvegarde ; ne modifie rien.
func (r *ExtractionResult) Validate() error {
	if r == nil {
		return fmt.Errorf("résultat nil")
	}
	if len(r.Words) != len(r.Timestamps) {
		return fmt.Errorf("désalignement mots/timestamps : %d != %d", len(r.Words), len(r.Timestamps))
	}
	for i, ts := range r.Timestamps {
		if ts < 0 {
			return fmt.Errorf("timestamp négatif à l'index %d : %f", i, ts)
		}
	}
	return nil
}
