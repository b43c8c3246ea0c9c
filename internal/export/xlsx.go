// Package export writes the visible school list to a spreadsheet.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/hknav/internal/domain"
)

// SheetName is the name of the single worksheet in every export.
const SheetName = "HK_Schools"

// Headers are the column titles, in column order.
var Headers = []string{
	"排名 (Rank)",
	"校名 (Name)",
	"中文名 (ZH Name)",
	"区域 (District)",
	"学费 (Tuition)",
	"课程 (Curriculum)",
	"教学语言 (Language)",
	"截止日期 (Deadline)",
}

var colWidths = []float64{12, 48, 28, 18, 18, 24, 24, 18}

// FileName returns the default export file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("HK_Primary_Rankings_%s.xlsx", now.Format("2006-01-02"))
}

// Row is the flat projection of one school.
func Row(s domain.School) []any {
	curr := make([]string, len(s.Curriculum))
	for i, c := range s.Curriculum {
		curr[i] = string(c)
	}
	return []any{
		s.Ranking,
		s.Name,
		s.NameZh,
		s.District,
		s.TuitionFee,
		strings.Join(curr, ", "),
		strings.Join(s.Language, ", "),
		s.ApplicationEnd.String(),
	}
}

// Write renders schools, in the given order, as an xlsx workbook to w.
func Write(w io.Writer, schools []domain.School) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for i, width := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D5E8D4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, s := range schools {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := Row(s)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
