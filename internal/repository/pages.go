package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielokoye/ehr-segmenter/constants"
	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

type PageRepository interface {
	SaveAll(ctx context.Context, jobID uuid.UUID, pages []*entity.PageRecord) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.PageRecord, error)
}

type pageRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPageRepository(db *sql.DB, logger *slog.Logger) PageRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &pageRepository{db: db, logger: logger}
}

// SaveAll writes the fully annotated page rows for a job in one transaction.
// Page text is deliberately not stored; only the review metadata is.
func (r *pageRepository) SaveAll(ctx context.Context, jobID uuid.UUID, pages []*entity.PageRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapError(err, "begin save pages")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO page_record
		 (job_id, pagenumber, category, isreviewable, dos, provider, referencekey, parentkey, header, facilitygroup, isduplicate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return common.WrapError(err, "prepare save pages")
	}
	defer stmt.Close()

	for _, p := range pages {
		refKey, parentKey := 0, 0
		if p.ReferenceKey != nil {
			refKey = *p.ReferenceKey
		}
		if p.ParentKey != nil {
			parentKey = *p.ParentKey
		}
		if _, err := stmt.ExecContext(ctx,
			jobID.String(), p.PageNumber, int(p.Category), p.IsReviewable,
			p.DOS, p.Provider, refKey, parentKey, p.Header, p.FacilityGroup, p.IsDuplicate,
		); err != nil {
			r.logger.Error("failed to save page", "job_id", jobID, "page", p.PageNumber, "error", err)
			return common.WrapError(err, "save page")
		}
	}
	return tx.Commit()
}

func (r *pageRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.PageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT pagenumber, category, isreviewable, dos, provider, referencekey, parentkey, header, facilitygroup, isduplicate
		 FROM page_record WHERE job_id = ? ORDER BY pagenumber`, jobID.String())
	if err != nil {
		return nil, common.WrapError(err, "list pages")
	}
	defer rows.Close()

	var pages []*entity.PageRecord
	for rows.Next() {
		var (
			p        entity.PageRecord
			category int
			refKey   int
			parent   int
		)
		if err := rows.Scan(&p.PageNumber, &category, &p.IsReviewable, &p.DOS,
			&p.Provider, &refKey, &parent, &p.Header, &p.FacilityGroup, &p.IsDuplicate); err != nil {
			return nil, err
		}
		p.Category = constants.Category(category)
		p.ReferenceKey = &refKey
		p.ParentKey = &parent
		pages = append(pages, &p)
	}
	return pages, rows.Err()
}
