package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"transportner/extraction"
	"transportner/transport"
)

// ReportSheet имя листа отчета
const ReportSheet = "Mentions"

// ErrColumnNotFound колонка не найдена ни по заголовку, ни по букве
var ErrColumnNotFound = errors.New("column not found")

// ReadXLSXColumn читает тексты из колонки листа. Первая строка считается
// заголовком. Колонка задается заголовком (без учета регистра) или буквой
// (A, B, ...); пустое значение означает первую колонку. Пустой sheet - первый лист.
// Пустые ячейки пропускаются.
func ReadXLSXColumn(path, sheet, column string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("no sheets found in Excel file")
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	idx, err := columnIndex(rows[0], column)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idx >= len(row) {
			continue
		}
		if text := strings.TrimSpace(row[idx]); text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}

func columnIndex(headers []string, column string) (int, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		return 0, nil
	}
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			return i, nil
		}
	}
	if n, err := excelize.ColumnNameToNumber(column); err == nil {
		return n - 1, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
}

// ReportRow одна строка отчета: упоминание транспортного средства
type ReportRow struct {
	Document int
	Mention  extraction.Mention
}

// ReportRows разворачивает документы в строки отчета; nil-документы
// (ошибки пакетной обработки) пропускаются
func ReportRows(docs []*extraction.Document) []ReportRow {
	var rows []ReportRow
	for i, doc := range docs {
		if doc == nil {
			continue
		}
		for _, m := range doc.Mentions {
			rows = append(rows, ReportRow{Document: i + 1, Mention: m})
		}
	}
	return rows
}

var reportHeaders = []string{
	"Document", "Kind", "Text", "Noun", "Brand", "Model", "Number", "Region", "Name", "Class", "Date", "Route", "Organization", "Geo",
}

// WriteXLSXReport сохраняет упоминания в файл Excel, по строке на упоминание
func WriteXLSXReport(path string, rows []ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReportSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	// Стиль заголовков
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ReportSheet, cell, header)
		f.SetCellStyle(ReportSheet, cell, cell, headerStyle)
	}

	for rowIdx, r := range rows {
		values := reportValues(r)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := f.SetCellValue(ReportSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	for i := range reportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := 15.0
		if reportHeaders[i] == "Text" {
			width = 40
		}
		f.SetColWidth(ReportSheet, col, col, width)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func reportValues(r ReportRow) []any {
	m := r.Mention
	joined := func(c transport.Category) string {
		var vals []string
		for _, it := range m.Items {
			if it.Category == c.String() {
				vals = append(vals, it.Value)
			}
		}
		return strings.Join(vals, "; ")
	}

	region := ""
	var route []string
	for _, it := range m.Items {
		if it.Category == transport.CategoryNumber.String() && region == "" {
			region = it.AltValue
		}
		if it.Category == transport.CategoryRoute.String() {
			route = append(route, it.Route...)
		}
	}

	return []any{
		r.Document,
		m.Kind,
		m.Text,
		joined(transport.CategoryNoun),
		joined(transport.CategoryBrand),
		joined(transport.CategoryModel),
		joined(transport.CategoryNumber),
		region,
		joined(transport.CategoryName),
		joined(transport.CategoryClass),
		joined(transport.CategoryDate),
		strings.Join(route, " - "),
		joined(transport.CategoryOrg),
		joined(transport.CategoryGeo),
	}
}
