package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danielokoye/ehr-segmenter/constants"
	"github.com/danielokoye/ehr-segmenter/internal/entity"
)

// Service renders annotated pages into the review tool's row shape, as CSV
// or as an XLSX workbook.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// row flattens one page into export column order. The lockstatus, reviewer,
// and duplicate columns are constants owned by the review tool.
func row(p *entity.PageRecord) []string {
	refKey, parentKey := 0, 0
	if p.ReferenceKey != nil {
		refKey = *p.ReferenceKey
	}
	if p.ParentKey != nil {
		parentKey = *p.ParentKey
	}
	return []string{
		strconv.Itoa(p.PageNumber),
		strconv.Itoa(int(p.Category)),
		strconv.FormatBool(p.IsReviewable),
		p.DOS,
		p.Provider,
		strconv.Itoa(refKey),
		strconv.Itoa(parentKey),
		constants.LockStatus,
		p.Header,
		p.FacilityGroup,
		strconv.Itoa(constants.ReviewerID),
		strconv.Itoa(constants.QCReviewerID),
		strconv.FormatBool(p.IsDuplicate),
	}
}

// WriteCSV writes the header row followed by one row per page.
func (s *Service) WriteCSV(w io.Writer, pages []*entity.PageRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(constants.ExportColumns); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, p := range pages {
		if err := cw.Write(row(p)); err != nil {
			return fmt.Errorf("csv row %d: %w", p.PageNumber, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	s.logger.Info("export.csv.ok", "rows", len(pages))
	return nil
}

// WriteXLSX returns an XLSX workbook (as bytes) with the same columns as the
// CSV output.
func (s *Service) WriteXLSX(pages []*entity.PageRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Pages"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range constants.ExportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for r, p := range pages {
		for c, v := range row(p) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "D", "D", 14) // dos
	_ = f.SetColWidth(sheet, "E", "E", 40) // provider
	_ = f.SetColWidth(sheet, "I", "I", 36) // header
	_ = f.SetColWidth(sheet, "J", "J", 16) // facilitygroup

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(pages),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
