package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/ehr-segmenter/constants"
	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

type JobRepository interface {
	Start(ctx context.Context, sourcePath, format string) (*entity.SegmentJob, error)
	FinishSuccess(ctx context.Context, id uuid.UUID, pageCount, recordCount int) error
	FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SegmentJob, error)
	List(ctx context.Context) ([]*entity.SegmentJob, error)
}

type jobRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewJobRepository(db *sql.DB, logger *slog.Logger) JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobRepository{db: db, logger: logger}
}

func (r *jobRepository) Start(ctx context.Context, sourcePath, format string) (*entity.SegmentJob, error) {
	job := &entity.SegmentJob{
		ID:         uuid.New(),
		SourcePath: sourcePath,
		Format:     format,
		Status:     string(constants.JobStatusRunning),
		StartedAt:  time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO segment_job (id, source_path, format, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		job.ID.String(), job.SourcePath, job.Format, job.Status, job.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error("failed to start job", "source_path", sourcePath, "error", err)
		return nil, common.WrapError(err, "start job")
	}
	return job, nil
}

func (r *jobRepository) FinishSuccess(ctx context.Context, id uuid.UUID, pageCount, recordCount int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE segment_job SET status = ?, page_count = ?, record_count = ?, finished_at = ? WHERE id = ?`,
		string(constants.JobStatusOK), pageCount, recordCount,
		time.Now().UTC().Format(time.RFC3339Nano), id.String(),
	)
	if err != nil {
		return common.WrapError(err, "finish job")
	}
	return nil
}

func (r *jobRepository) FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE segment_job SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		string(constants.JobStatusFailed), errMsg,
		time.Now().UTC().Format(time.RFC3339Nano), id.String(),
	)
	if err != nil {
		return common.WrapError(err, "fail job")
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SegmentJob, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source_path, format, status, page_count, record_count, error_message, started_at, finished_at
		 FROM segment_job WHERE id = ?`, id.String())
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewAppError("JOB_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return job, err
}

func (r *jobRepository) List(ctx context.Context) ([]*entity.SegmentJob, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_path, format, status, page_count, record_count, error_message, started_at, finished_at
		 FROM segment_job ORDER BY started_at`)
	if err != nil {
		return nil, common.WrapError(err, "list jobs")
	}
	defer rows.Close()

	var jobs []*entity.SegmentJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*entity.SegmentJob, error) {
	var (
		job        entity.SegmentJob
		idStr      string
		errMsg     sql.NullString
		startedAt  string
		finishedAt sql.NullString
	)
	if err := row.Scan(&idStr, &job.SourcePath, &job.Format, &job.Status,
		&job.PageCount, &job.RecordCount, &errMsg, &startedAt, &finishedAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	job.ID = id
	if errMsg.Valid {
		job.ErrorMessage = &errMsg.String
	}
	if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
		job.StartedAt = t
	}
	if finishedAt.Valid {
		if t, err := time.Parse(time.RFC3339Nano, finishedAt.String); err == nil {
			job.FinishedAt = &t
		}
	}
	return &job, nil
}
