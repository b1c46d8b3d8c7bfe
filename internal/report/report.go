package report

import (
	"fmt"
	"time"

	"github.com/Rupeshkotha/Sign-language-generator/internal/fsutil"
	"github.com/Rupeshkotha/Sign-language-generator/pkg/model"
)

const baseWatchURL = "https://www.youtube.com/watch?v="

// ReportRow est une ligne du tableau des mots.
type ReportRow struct {
	Index     int
	Word      string
	Timestamp string // format HH:MM:SS
}

// ReportData contient les données "brutes" pour le compte-rendu.
type ReportData struct {
	VideoID         string
	URL             string
	GeneratedAt     string // formaté YYYY-MM-DD HH:MM
	TotalWordsSeen  int
	UniqueWordCount int
	CaptionSuccess  bool
	AudioSuccess    bool
	Rows            []ReportRow
	Filename        string
}

// NewReportData construit ReportData à partir d'un résultat d'extraction.
func NewReportData(res *model.ExtractionResult, now time.Time) ReportData {
	rows := make([]ReportRow, 0, len(res.Words))
	for i, w := range res.Words {
		var ts string
		if i < len(res.Timestamps) {
			ts = model.Seconds(res.Timestamps[i]).TimestampHHMMSS()
		}
		rows = append(rows, ReportRow{
			Index:     i + 1,
			Word:      w,
			Timestamp: ts,
		})
	}

	id := string(res.VideoID)
	filename := fsutil.SanitizeFilename(fmt.Sprintf("words %s", id))

	return ReportData{
		VideoID:         id,
		URL:             baseWatchURL + id,
		GeneratedAt:     now.Format("2006-01-02 15:04"),
		TotalWordsSeen:  res.Metrics.TotalWordsSeen,
		UniqueWordCount: res.Metrics.UniqueWordCount,
		CaptionSuccess:  res.Metrics.CaptionSuccess,
		AudioSuccess:    res.Metrics.AudioSuccess,
		Rows:            rows,
		Filename:        filename,
	}
}
