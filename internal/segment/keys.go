package segment

import (
	"github.com/danielokoye/ehr-segmenter/constants"
	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

// mostCommon returns the most frequent value, with ties broken by first
// occurrence so results are reproducible run to run.
func mostCommon[T comparable](values []T) (T, bool) {
	var best T
	if len(values) == 0 {
		return best, false
	}
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	bestCount := 0
	for _, v := range values {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best, true
}

// AssignKeys gives every page in a group its reference and parent keys and
// propagates consensus metadata onto the whole group. The head page owns the
// record (parent key 0); every other page points back at the head's
// reference key. counter is the next reference key to issue; the advanced
// value (counter plus group size) is returned so keys stay globally unique
// and strictly increasing in page order across the document.
func AssignKeys(group entity.Group, counter int, cfg Config) int {
	if len(group) == 0 {
		return counter
	}

	var categories []constants.Category
	var headers, dosValues, providers []string
	for _, p := range group {
		if p.Category != 0 {
			categories = append(categories, p.Category)
		}
		if p.Header != "" {
			headers = append(headers, p.Header)
		}
		if p.DOS != "" {
			dosValues = append(dosValues, p.DOS)
		}
		if p.Provider != "" {
			providers = append(providers, p.Provider)
		}
	}

	category, ok := mostCommon(categories)
	if !ok {
		category = constants.ProgressNote
	}
	header, _ := mostCommon(headers)
	dos, _ := mostCommon(dosValues)
	provider, ok := mostCommon(providers)
	if !ok {
		provider = cfg.DefaultProviderFacility()
	}

	headKey := counter
	for i, page := range group {
		refKey := headKey + i
		page.ReferenceKey = &refKey
		if i == 0 {
			parent := 0
			page.ParentKey = &parent
		} else {
			parent := headKey
			page.ParentKey = &parent
		}
		page.Category = category
		page.Header = header
		page.DOS = dos
		page.Provider = provider
		page.FacilityGroup = constants.FacilityGroup(category)
	}
	return counter + len(group)
}
