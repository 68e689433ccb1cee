package segment

import (
	"log/slog"
	"strings"

	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

// Annotator builds one metadata record per page, carrying the previous
// page's header across calls so header-less continuation pages inherit it.
// One Annotator serves one document; it is not safe for concurrent use.
type Annotator struct {
	cfg        Config
	log        *slog.Logger
	prevHeader string
}

func NewAnnotator(cfg Config, log *slog.Logger) *Annotator {
	if log == nil {
		log = slog.Default()
	}
	return &Annotator{cfg: cfg, log: log}
}

// Annotate extracts header, date of service, provider/facility, and category
// for one page. Callers must skip empty-text pages before calling; an empty
// page is treated as non-existent by the pipeline.
func (a *Annotator) Annotate(pageNumber int, text string) *entity.PageRecord {
	rawHeader := ExtractHeader(text, a.prevHeader, a.cfg)
	header := rawHeader
	if header != "" {
		a.prevHeader = header
		header = NormalizeHeader(header)
	}

	return &entity.PageRecord{
		PageNumber:   pageNumber,
		Text:         text,
		Header:       header,
		RawHeader:    rawHeader,
		DOS:          ExtractDOS(text),
		Provider:     ExtractProviderFacility(text, a.cfg),
		Category:     Classify(header, text, a.cfg, a.log),
		IsReviewable: true,
	}
}

// AnnotateAll annotates every non-empty page in order.
func (a *Annotator) AnnotateAll(pages []entity.PageText) []*entity.PageRecord {
	records := make([]*entity.PageRecord, 0, len(pages))
	for _, p := range pages {
		if strings.TrimSpace(p.Text) == "" {
			a.log.Debug("annotate.skip_empty", "page", p.PageNumber)
			continue
		}
		records = append(records, a.Annotate(p.PageNumber, p.Text))
	}
	return records
}
