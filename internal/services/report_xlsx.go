package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderReportXLSX builds a workbook with one sheet per present category.
// Sheets reuse the document column set but carry the full (uncapped)
// collections.
func RenderReportXLSX(payload ReportPayload, messages map[string]string) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	categories := payload.SelectedCategories()
	if len(categories) == 0 {
		return nil, fmt.Errorf("xlsx export: no categories selected")
	}

	for index, category := range categories {
		sheet := category
		if index == 0 {
			if err := workbook.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := workbook.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		for column, header := range documentColumns(category, messages) {
			cell, err := excelize.CoordinatesToCellName(column+1, 1)
			if err != nil {
				return nil, fmt.Errorf("sheet %s header cell: %w", sheet, err)
			}
			if err := workbook.SetCellValue(sheet, cell, header); err != nil {
				return nil, fmt.Errorf("sheet %s header: %w", sheet, err)
			}
		}

		for rowIndex, row := range buildCategoryRows(payload, category, messages, 0) {
			for column, value := range row {
				cell, err := excelize.CoordinatesToCellName(column+1, rowIndex+2)
				if err != nil {
					return nil, fmt.Errorf("sheet %s cell: %w", sheet, err)
				}
				if err := workbook.SetCellValue(sheet, cell, value); err != nil {
					return nil, fmt.Errorf("sheet %s row %d: %w", sheet, rowIndex+1, err)
				}
			}
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buffer.Bytes(), nil
}
