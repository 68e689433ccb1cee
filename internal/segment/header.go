package segment

import (
	"regexp"
	"strings"
	"sync"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/danielokoye/ehr-segmenter/constants"
)

var (
	continuedRe = regexp.MustCompile(`(?i)\s*\(continued\)`)
	contDotRe   = regexp.MustCompile(`(?i)\s*\(cont\.\)`)
	labsRe      = regexp.MustCompile(`(?i)^LABS?\b`)
	progNoteRe  = regexp.MustCompile(`(?i)^PROG\.?\s*NOTE`)
)

var (
	normMu    sync.Mutex
	normCache = map[string]string{}
)

// NormalizeHeader strips continuation markers and canonicalizes common
// header variants ("LAB"/"LABS" -> "LABORATORY", "PROG. NOTE" -> "PROGRESS
// NOTE"). It is a pure function of the header text, idempotent, and cached
// by exact input string.
func NormalizeHeader(header string) string {
	if header == "" {
		return ""
	}
	normMu.Lock()
	if v, ok := normCache[header]; ok {
		normMu.Unlock()
		return v
	}
	normMu.Unlock()

	h := continuedRe.ReplaceAllString(header, "")
	h = contDotRe.ReplaceAllString(h, "")
	h = labsRe.ReplaceAllString(h, "LABORATORY")
	h = progNoteRe.ReplaceAllString(h, "PROGRESS NOTE")
	h = strings.TrimSpace(h)

	normMu.Lock()
	normCache[header] = h
	normMu.Unlock()
	return h
}

// HasContinuationMarker reports whether raw header text marks the page as a
// continuation of the previous record.
func HasContinuationMarker(header string) bool {
	lower := strings.ToLower(header)
	for _, marker := range constants.ContinuationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ExtractHeader isolates a section title from the first lines of a page.
// Pass 1 takes the first line containing a header keyword or a continuation
// marker; pass 2 falls back to fuzzy partial matching against the keyword
// set; if neither hits, the previous page's header is carried forward on
// the assumption the page is a continuation.
func ExtractHeader(text, prevHeader string, cfg Config) string {
	lines := strings.Split(text, "\n")
	if len(lines) > cfg.HeaderScanLines {
		lines = lines[:cfg.HeaderScanLines]
	}

	for _, line := range lines {
		upper := strings.ToUpper(line)
		for _, keyword := range constants.HeaderKeywords {
			if strings.Contains(upper, keyword) {
				return strings.TrimSpace(line)
			}
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "(continued)") || strings.Contains(lower, "(cont.)") {
			return strings.TrimSpace(line)
		}
	}

	for _, line := range lines {
		upper := strings.ToUpper(line)
		for _, keyword := range constants.HeaderKeywords {
			if fuzzy.PartialRatio(keyword, upper) > cfg.HeaderFuzzyCutoff {
				return strings.TrimSpace(line)
			}
		}
	}

	return prevHeader
}
