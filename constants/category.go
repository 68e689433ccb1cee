package constants

// Category is the fixed integer code for a clinical document type.
type Category int

const (
	ProgressNote     Category = 16
	DischargeSummary Category = 17
	Consultation     Category = 18
	Operative        Category = 19
	Radiology        Category = 20
	Pathology        Category = 21
	Emergency        Category = 22
	Pharmacy         Category = 23
	Laboratory       Category = 24
)

// CategoryKeywords maps a category to the keywords that identify it.
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

// KeywordTable is the canonical keyword table in resolution order.
// Classification is first-match-wins over this slice, so it must stay a
// slice, not a map. Laboratory is checked before ProgressNote; changing the
// order changes classification outcomes on real documents.
var KeywordTable = []CategoryKeywords{
	{Laboratory, []string{"LABORATORY", "LAB REPORT", "LAB TEST", "LABS", "LABORATORY REPORT"}},
	{ProgressNote, []string{"PROGRESS", "CLINICAL NOTE", "CONSULTATION", "PROGRESS NOTE", "CLINICAL", "NOTE"}},
	{DischargeSummary, []string{"DISCHARGE", "DISCHARGE SUMMARY"}},
	{Consultation, []string{"CONSULTATION", "CONSULT"}},
	{Operative, []string{"OPERATIVE", "SURGICAL", "SURGERY"}},
	{Radiology, []string{"RADIOLOGY", "X-RAY", "IMAGING"}},
	{Pathology, []string{"PATHOLOGY", "PATH"}},
	{Emergency, []string{"EMERGENCY", "ER", "ED"}},
	{Pharmacy, []string{"PHARMACY", "MEDICATION", "PRESCRIPTION"}},
}

// FacilityGroups maps a category to its facility group label on the review
// row. Stable values, stored verbatim in exports.
var FacilityGroups = map[Category]string{
	Laboratory:       "LABORATORY",
	ProgressNote:     "CLINICAL",
	DischargeSummary: "DISCHARGE",
	Consultation:     "CONSULTATION",
	Operative:        "SURGICAL",
	Radiology:        "RADIOLOGY",
	Pathology:        "PATHOLOGY",
	Emergency:        "EMERGENCY",
	Pharmacy:         "PHARMACY",
}

// FacilityGroup returns the facility group for a category, or "" for an
// unknown code.
func FacilityGroup(c Category) string {
	return FacilityGroups[c]
}

// HeaderKeywords drive header-line detection during annotation.
var HeaderKeywords = []string{"LABORATORY", "PROGRESS", "NOTE", "REPORT", "CLINICAL", "CONSULTATION"}

// ContinuationMarkers flag a page that extends the previous page's record.
var ContinuationMarkers = []string{"(continued)", "(cont.)", "continued"}
