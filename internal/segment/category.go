package segment

import (
	"log/slog"
	"strings"

	"github.com/danielokoye/ehr-segmenter/constants"
)

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func textPrefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Classify maps a page to a document category code. Resolution order: the
// keyword table against the header, then against the leading text, then a
// fixed set of fallback heuristics on a longer prefix. Emergency is checked
// after the note keywords so progress notes written in an ED setting are
// not misclassified. A page that matches nothing defaults to ProgressNote
// and is logged as a low-confidence call.
func Classify(header, text string, cfg Config, log *slog.Logger) constants.Category {
	headerUpper := strings.ToUpper(header)
	textUpper := strings.ToUpper(text)

	for _, row := range constants.KeywordTable {
		if containsAny(headerUpper, row.Keywords) {
			return row.Category
		}
	}

	head := textPrefix(textUpper, cfg.CategoryHeadChars)
	for _, row := range constants.KeywordTable {
		if containsAny(head, row.Keywords) {
			return row.Category
		}
	}

	body := textPrefix(textUpper, cfg.CategoryBodyChars)
	noteish := containsAny(body, []string{"NOTE", "CLINICAL", "PROGRESS"})
	switch {
	case noteish:
		return constants.ProgressNote
	case containsAny(body, []string{"LAB", "LABORATORY"}):
		return constants.Laboratory
	case containsAny(body, []string{"DISCHARGE"}):
		return constants.DischargeSummary
	case containsAny(body, []string{"EMERGENCY", "ER", "ED"}):
		return constants.Emergency
	}

	if log != nil {
		log.Warn("category.default", "header", header, "category", int(constants.ProgressNote))
	}
	return constants.ProgressNote
}
