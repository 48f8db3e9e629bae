package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// CirculationReport renders the full issuance history as an xlsx sheet
// for the admin download.
func (s *Service) CirculationReport(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.ListCirculation(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"issued_at", "student", "email", "book", "author", "due_date", "returned_at", "fine"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	rowN := 2
	for _, r := range rows {
		returned := ""
		if r.ReturnedAt != nil {
			returned = r.ReturnedAt.Format(time.DateOnly)
		}
		fine := 0
		if r.FineAmount != nil {
			fine = *r.FineAmount
		}
		row := []interface{}{
			r.IssuedAt.Format(time.DateTime),
			r.FullName,
			r.Email,
			r.Title,
			r.Author,
			r.DueDate.Format(time.DateOnly),
			returned,
			fine,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowN), &row); err != nil {
			return nil, err
		}
		rowN++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
