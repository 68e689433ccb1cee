package segment

import "github.com/danielokoye/ehr-segmenter/internal/entity"

// BelongsToSameRecord decides whether curr continues the record that prev
// belongs to. Pages carrying an explicit continuation marker get the more
// lenient threshold.
func BelongsToSameRecord(prev, curr *entity.PageRecord, cfg Config) bool {
	threshold := cfg.GroupThreshold
	if HasContinuationMarker(curr.RawHeader) {
		threshold = cfg.ContinuationThreshold
	}
	return Score(prev, curr, cfg) >= threshold
}

// GroupPages partitions the page sequence into contiguous groups, one per
// logical record. Each page is compared against the last page of the open
// group; a miss flushes the group and starts a new one. Pages are used
// read-only here. The result covers every input page exactly once, in order.
func GroupPages(pages []*entity.PageRecord, cfg Config) []entity.Group {
	if len(pages) == 0 {
		return nil
	}

	var groups []entity.Group
	current := entity.Group{pages[0]}
	for _, page := range pages[1:] {
		if BelongsToSameRecord(current[len(current)-1], page, cfg) {
			current = append(current, page)
			continue
		}
		groups = append(groups, current)
		current = entity.Group{page}
	}
	return append(groups, current)
}
