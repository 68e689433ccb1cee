package entity

import (
	"time"

	"github.com/google/uuid"
)

// SegmentJob represents one segmentation run for data transfer between layers.
type SegmentJob struct {
	ID           uuid.UUID  `json:"id"`
	SourcePath   string     `json:"source_path"`
	Format       string     `json:"format"`
	Status       string     `json:"status"`
	PageCount    int        `json:"page_count"`
	RecordCount  int        `json:"record_count"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
