package segment

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// Score computes a same-record likelihood in [0,1] for two adjacent pages
// from four equally weighted signals: exact date-of-service match, header
// token-set similarity, content continuity across the page boundary, and
// provider similarity.
//
// Score(prev, curr) is not Score(curr, prev): the continuity signal compares
// the tail of the previous page against the head of the current one, which
// is directional by construction.
func Score(prev, curr *entity.PageRecord, cfg Config) float64 {
	score := 0.0

	if prev.DOS != "" && curr.DOS != "" && prev.DOS == curr.DOS {
		score += 1.0
	}

	prevHeader := NormalizeHeader(prev.Header)
	currHeader := NormalizeHeader(curr.Header)
	score += float64(fuzzy.TokenSetRatio(prevHeader, currHeader)) / 100.0

	score += float64(fuzzy.PartialRatio(
		tail(prev.Text, cfg.ContinuityWindow),
		head(curr.Text, cfg.ContinuityWindow),
	)) / 100.0

	if prev.Provider != "" && curr.Provider != "" {
		score += float64(fuzzy.Ratio(prev.Provider, curr.Provider)) / 100.0
	}

	return score / 4.0
}
