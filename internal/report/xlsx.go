package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var marginExportHeaders = []string{
	"Menu Item", "Base Price", "Worst Price", "Worst Cost",
	"Worst Margin", "Worst Configuration", "Configurations",
}

// ExportXLSX renders the menu-wide margin report as a spreadsheet for
// managers who plan pricing outside the app.
func (s *Service) ExportXLSX(ctx context.Context) (*excelize.File, error) {
	reports, err := s.AllMargins(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Margins"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range marginExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for row, r := range reports {
		values := []interface{}{
			r.Name,
			r.BasePrice,
			r.WorstPrice,
			r.WorstCost,
			r.WorstMargin,
			r.WorstConfiguration,
			r.Configurations,
		}
		for col, v := range values {
			name, _ := excelize.ColumnNumberToName(col + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", name, row+2), v)
		}
	}

	return f, nil
}
