package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/danielokoye/ehr-segmenter/internal/common"
	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

// PageSeparator splits a plain-text document into pages (form feed, the
// character most text dumps use at page boundaries).
const PageSeparator = "\f"

// TextFileExtractor reads a plain-text document, one page per form-feed
// separated section. Useful for fixtures and for bundles already dumped to
// text by another tool.
type TextFileExtractor struct{}

func NewTextFileExtractor() *TextFileExtractor {
	return &TextFileExtractor{}
}

func (e *TextFileExtractor) Extract(ctx context.Context, path string) ([]entity.PageText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, fmt.Sprintf("read text file %s", path))
	}

	sections := strings.Split(string(data), PageSeparator)
	pages := make([]entity.PageText, 0, len(sections))
	for i, section := range sections {
		pages = append(pages, entity.PageText{
			PageNumber: i + 1,
			Text:       strings.TrimRight(section, "\n"),
		})
	}
	return pages, nil
}

// ForPath picks an extractor by file extension.
func ForPath(path string) (TextExtractor, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return NewPDFExtractor(nil), nil
	case strings.HasSuffix(lower, ".txt"):
		return NewTextFileExtractor(), nil
	default:
		return nil, fmt.Errorf("unsupported document type: %s", path)
	}
}
