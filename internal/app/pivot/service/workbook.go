package pivot_service

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

type sheetTable struct {
	name  string
	table *RawTable
}

// decodeWorkbook reads every sheet of an xlsx workbook. By input
// convention the header lives on the second physical row of each sheet;
// sheets shorter than that carry no table and are skipped.
func decodeWorkbook(data []byte) ([]sheetTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []sheetTable
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, err
		}
		if len(rows) < 2 {
			continue
		}

		header := rows[1]
		body := rows[2:]
		width := len(header)
		for _, row := range body {
			if len(row) > width {
				width = len(row)
			}
		}

		cols := make([]Column, width)
		for c := 0; c < width; c++ {
			colName := ""
			if c < len(header) {
				colName = strings.TrimSpace(header[c])
			}
			cells := make([]string, len(body))
			for i, row := range body {
				if c < len(row) {
					cells[i] = strings.TrimSpace(row[c])
				}
			}
			cols[c] = Column{Name: colName, Cells: cells}
		}
		sheets = append(sheets, sheetTable{name: name, table: &RawTable{Columns: cols}})
	}
	return sheets, nil
}
