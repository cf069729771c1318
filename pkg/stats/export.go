package stats

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Revenue"

// WriteReportXLSX renders the revenue series as a spreadsheet.
func WriteReportXLSX(w io.Writer, points []*RevenuePoint) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("stats/export: can't rename sheet, %w", err)
	}

	headers := []string{"Date", "Revenue", "Sales"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("stats/export: bad header cell, %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return fmt.Errorf("stats/export: can't write header, %w", err)
		}
	}

	for row, p := range points {
		values := []interface{}{p.Date, p.Revenue, p.Sales}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("stats/export: bad cell, %w", err)
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return fmt.Errorf("stats/export: can't write row %d, %w", row+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("stats/export: can't write workbook, %w", err)
	}
	return nil
}
