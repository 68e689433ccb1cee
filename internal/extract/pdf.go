package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gen2brain/go-fitz"

	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

// PDFExtractor reads per-page text from a PDF via go-fitz (MuPDF).
type PDFExtractor struct {
	log *slog.Logger
}

func NewPDFExtractor(log *slog.Logger) *PDFExtractor {
	if log == nil {
		log = slog.Default()
	}
	return &PDFExtractor{log: log}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) ([]entity.PageText, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, common.WrapError(err, fmt.Sprintf("open pdf %s", path))
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]entity.PageText, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := doc.Text(i)
		if err != nil {
			// An unreadable page becomes an empty one; the pipeline
			// drops it rather than failing the document.
			e.log.Warn("extract.page_unreadable", "path", path, "page", i+1, "error", err)
			text = ""
		}
		pages = append(pages, entity.PageText{PageNumber: i + 1, Text: text})
	}

	e.log.Info("extract.pdf.ok", "path", path, "pages", pageCount)
	return pages, nil
}
