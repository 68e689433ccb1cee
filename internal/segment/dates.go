package segment

import (
	"regexp"
	"sort"
	"strings"
)

// The four accepted date shapes. Matches are returned verbatim; the value
// is a review-workflow string, never parsed to a calendar type, so an
// ill-formed date like 13/45/2099 passes through untouched.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}`),
}

// serviceContexts mark a line (or its neighbors) as likely carrying the
// date of service rather than some other date.
var serviceContexts = []string{
	"frequency", "signed by", "provider", "doctor", "department", "facility",
	"service date", "date of service", "seen", "visit", "admission", "discharge",
}

// ignoreContexts exclude patient birth dates from consideration.
var ignoreContexts = []string{"dob", "date of birth"}

type dateCandidate struct {
	lineIdx int
	score   int
	value   string
}

func lineIgnored(line string) bool {
	lower := strings.ToLower(line)
	for _, ignore := range ignoreContexts {
		if strings.Contains(lower, ignore) {
			return true
		}
	}
	return false
}

// ExtractDOS finds the most plausible date of service on a page. Every
// date-shaped substring outside DOB lines is scored by context: +2 when the
// containing line has a service keyword, +1 when the previous or next line
// does. Candidates rank by score, then by proximity to the bottom of the
// page. With no candidates at all it falls back to the bottom-most date on
// the page, and otherwise returns "".
func ExtractDOS(text string) string {
	lines := strings.Split(text, "\n")
	var candidates []dateCandidate

	for idx, line := range lines {
		if lineIgnored(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, pattern := range datePatterns {
			for _, match := range pattern.FindAllString(line, -1) {
				score := 0
				for _, k := range serviceContexts {
					if strings.Contains(lower, k) {
						score += 2
					}
					if idx > 0 && strings.Contains(strings.ToLower(lines[idx-1]), k) {
						score++
					}
					if idx < len(lines)-1 && strings.Contains(strings.ToLower(lines[idx+1]), k) {
						score++
					}
				}
				candidates = append(candidates, dateCandidate{idx, score, strings.TrimSpace(match)})
			}
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score > candidates[j].score
			}
			return candidates[i].lineIdx > candidates[j].lineIdx
		})
		return candidates[0].value
	}

	// Fallback: last date anywhere on the page, still skipping DOB lines.
	last := ""
	for _, line := range lines {
		if lineIgnored(line) {
			continue
		}
		for _, pattern := range datePatterns {
			for _, match := range pattern.FindAllString(line, -1) {
				last = strings.TrimSpace(match)
			}
		}
	}
	return last
}
