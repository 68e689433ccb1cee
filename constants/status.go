package constants

// JobStatus is the canonical status for rows in segment_job.
type JobStatus string

// Stable values (store these exact strings in the DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // discovered, not yet processed
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOK      JobStatus = "OK"      // segmentation completed
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)
