package export_rack_kpis

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RackService/internal/domain"
)

// buildWorkbook формирует xlsx: строка заголовков и по строке на день
func buildWorkbook(days []domain.DailyKPI) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, fmt.Errorf("%w: create sheet: %v", ErrBuildWorkbook, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%w: delete default sheet: %v", ErrBuildWorkbook, err)
	}
	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet index: %v", ErrBuildWorkbook, err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: header style: %v", ErrBuildWorkbook, err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("%w: header %s: %v", ErrBuildWorkbook, header, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("%w: header style %s: %v", ErrBuildWorkbook, header, err)
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
		}
		if err := f.SetColWidth(sheetName, col, col, columnWidths[i]); err != nil {
			return nil, fmt.Errorf("%w: column width: %v", ErrBuildWorkbook, err)
		}
	}

	for i, day := range days {
		row := []interface{}{
			day.Date.String(),
			day.OccupancyRate,
			day.OccupiedRooms,
			day.TotalRooms,
			day.AveragePrice,
			string(day.Trend),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("%w: row %s: %v", ErrBuildWorkbook, day.Date, err)
		}
	}

	// Заголовок остается видимым при прокрутке
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("%w: freeze panes: %v", ErrBuildWorkbook, err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: write: %v", ErrBuildWorkbook, err)
	}

	return buf.Bytes(), nil
}
