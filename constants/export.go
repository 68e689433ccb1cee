package constants

// Review-workflow constants stamped onto every exported row. These are owned
// by the downstream review tool, not derived by the segmenter, but must be
// present on the wire for compatibility.
const (
	LockStatus   = "L"
	ReviewerID   = 287
	QCReviewerID = 322
)

// ExportColumns is the exact column order of the review CSV/XLSX output.
var ExportColumns = []string{
	"pagenumber", "category", "isreviewable", "dos", "provider",
	"referencekey", "parentkey", "lockstatus", "header",
	"facilitygroup", "reviewerid", "qcreviewerid", "isduplicate",
}
