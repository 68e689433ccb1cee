package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/danielokoye/ehr-segmenter/constants"
	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/entity"
	"github.com/danielokoye/ehr-segmenter/internal/extract"
	"github.com/danielokoye/ehr-segmenter/internal/repository"
	"github.com/danielokoye/ehr-segmenter/internal/segment"
)

// Processor coordinates text extraction, per-page annotation, record
// grouping, and key assignment for one document at a time.
type Processor struct {
	Extractor extract.TextExtractor // optional; chosen from the path when nil
	Jobs      repository.JobRepository
	Pages     repository.PageRepository
	Cfg       segment.Config
	Logger    *slog.Logger
}

func NewProcessor(jobs repository.JobRepository, pages repository.PageRepository, cfg segment.Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Jobs: jobs, Pages: pages, Cfg: cfg, Logger: logger}
}

// Result is the outcome of one document run.
type Result struct {
	JobID   uuid.UUID // uuid.Nil when persistence is disabled
	Pages   []*entity.PageRecord
	Records int
}

// Run segments one document. An extraction failure is fatal for the
// document and propagates unchanged; everything downstream of extraction is
// a total transform that degrades to defaults instead of failing.
func (p *Processor) Run(ctx context.Context, path string) (*Result, error) {
	tx := p.Extractor
	if tx == nil {
		var err error
		tx, err = extract.ForPath(path)
		if err != nil {
			return nil, err
		}
	}

	var jobID uuid.UUID
	if p.Jobs != nil {
		job, err := p.Jobs.Start(ctx, path, constants.MapExtToFormat(filepath.Ext(path)))
		if err != nil {
			return nil, err
		}
		jobID = job.ID
	}

	texts, err := tx.Extract(ctx, path)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "path", path, "err", err)
		p.finishFailure(ctx, jobID, err)
		return nil, common.WrapError(err, "extract")
	}

	annotator := segment.NewAnnotator(p.Cfg, p.Logger)
	records := annotator.AnnotateAll(texts)
	p.Logger.Info("processor.annotate.ok",
		"path", path,
		"pages", len(texts),
		"annotated", len(records),
	)

	groups := segment.GroupPages(records, p.Cfg)
	counter := p.Cfg.ReferenceKeySeed
	for _, g := range groups {
		counter = segment.AssignKeys(g, counter, p.Cfg)
	}
	p.Logger.Info("processor.group.ok", "path", path, "records", len(groups))

	if p.Pages != nil && jobID != uuid.Nil {
		if err := p.Pages.SaveAll(ctx, jobID, records); err != nil {
			p.Logger.Error("processor.persist.failed", "job_id", jobID, "err", err)
			p.finishFailure(ctx, jobID, err)
			return nil, err
		}
	}
	if p.Jobs != nil && jobID != uuid.Nil {
		if err := p.Jobs.FinishSuccess(ctx, jobID, len(records), len(groups)); err != nil {
			return nil, err
		}
	}

	return &Result{JobID: jobID, Pages: records, Records: len(groups)}, nil
}

func (p *Processor) finishFailure(ctx context.Context, jobID uuid.UUID, cause error) {
	if p.Jobs == nil || jobID == uuid.Nil {
		return
	}
	if err := p.Jobs.FinishFailure(ctx, jobID, cause.Error()); err != nil {
		p.Logger.Error("processor.job.fail_mark_failed", "job_id", jobID, "err", err)
	}
}
