package extract

import (
	"context"

	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

// TextExtractor is the upstream stage: document path -> ordered per-page
// text. Page numbers are 1-based and contiguous; a page the backend cannot
// read yields text "" and is skipped downstream. A document that cannot be
// opened at all is a hard error, propagated unchanged.
type TextExtractor interface {
	Extract(ctx context.Context, path string) ([]entity.PageText, error)
}
