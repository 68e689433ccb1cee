package entity

import "github.com/danielokoye/ehr-segmenter/constants"

// PageText is one unit of extracted source text, in page order.
type PageText struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// PageRecord is a page annotated with record metadata. It is created by the
// annotator, read by the grouper, and mutated in place by key assignment.
type PageRecord struct {
	PageNumber int    `json:"pagenumber"`
	Text       string `json:"-"`
	// Header is the normalized section title. RawHeader keeps the line as
	// found on the page; continuation markers survive only there.
	Header        string             `json:"header"`
	RawHeader     string             `json:"-"`
	DOS           string             `json:"dos"`
	Provider      string             `json:"provider"`
	Category      constants.Category `json:"category"`
	IsReviewable  bool               `json:"isreviewable"`
	ReferenceKey  *int               `json:"referencekey,omitempty"`
	ParentKey     *int               `json:"parentkey,omitempty"`
	FacilityGroup string             `json:"facilitygroup"`
	IsDuplicate   bool               `json:"isduplicate"`
}

// Group is a contiguous run of pages belonging to one logical record.
type Group []*PageRecord
