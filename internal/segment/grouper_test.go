package segment

import (
	"testing"

	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

func TestGroupPagesEmpty(t *testing.T) {
	if got := GroupPages(nil, DefaultConfig()); got != nil {
		t.Errorf("GroupPages(nil) = %v, want nil", got)
	}
}

func TestGroupPagesSinglePage(t *testing.T) {
	pages := []*entity.PageRecord{page("LABORATORY REPORT", "01/02/2020", "", "text")}
	groups := GroupPages(pages, DefaultConfig())
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Fatalf("got %d groups, want one group of one page", len(groups))
	}
}

func TestGroupPagesContinuationJoins(t *testing.T) {
	cfg := DefaultConfig()
	provider := "ABC DoctorName - ABC Facility Name"

	p1 := page("LABORATORY REPORT", "01/02/2020", provider, "LABORATORY REPORT\nCBC panel results")
	p2 := page("LABORATORY REPORT", "01/02/2020", provider, "LABORATORY REPORT (continued)\nmore results")
	p2.RawHeader = "LABORATORY REPORT (continued)"

	groups := GroupPages([]*entity.PageRecord{p1, p2}, cfg)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0]) != 2 {
		t.Errorf("group has %d pages, want 2", len(groups[0]))
	}
}

func TestGroupPagesDissimilarSplit(t *testing.T) {
	cfg := DefaultConfig()

	p1 := page("DISCHARGE SUMMARY", "01/02/2020", "", "patient discharged home")
	p2 := page("RADIOLOGY REPORT", "03/04/2021", "", "axial views obtained")

	groups := GroupPages([]*entity.PageRecord{p1, p2}, cfg)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
}

func TestGroupPagesCoverContiguously(t *testing.T) {
	cfg := DefaultConfig()
	var pages []*entity.PageRecord
	headers := []string{"LABORATORY REPORT", "LABORATORY REPORT", "DISCHARGE SUMMARY", "RADIOLOGY REPORT", "RADIOLOGY REPORT"}
	for i, h := range headers {
		p := page(h, "01/02/2020", "Dr. A - Clinic B", h+" body text")
		p.PageNumber = i + 1
		pages = append(pages, p)
	}

	groups := GroupPages(pages, cfg)
	total := 0
	next := 1
	for _, g := range groups {
		total += len(g)
		for _, p := range g {
			if p.PageNumber != next {
				t.Fatalf("page order broken: got page %d, want %d", p.PageNumber, next)
			}
			next++
		}
	}
	if total != len(pages) {
		t.Errorf("groups cover %d pages, want %d", total, len(pages))
	}
}

func TestContinuationMarkerSelectsLenientThreshold(t *testing.T) {
	cfg := DefaultConfig()
	// Identical pages score exactly 1.0; an impossible base threshold means
	// only the continuation threshold can admit the second page.
	cfg.GroupThreshold = 1.01
	cfg.ContinuationThreshold = 0.5

	p1 := page("LABORATORY REPORT", "01/02/2020", "P", "same text")
	p2 := page("LABORATORY REPORT", "01/02/2020", "P", "same text")

	if BelongsToSameRecord(p1, p2, cfg) {
		t.Error("without a marker the impossible threshold should reject")
	}
	p2.RawHeader = "LABORATORY REPORT (continued)"
	if !BelongsToSameRecord(p1, p2, cfg) {
		t.Error("with a marker the lenient threshold should admit")
	}
}
