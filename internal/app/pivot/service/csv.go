package pivot_service

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// decodeCSV reads a comma-delimited UTF-8 document into a RawTable. The
// first row is the header; short records are padded so every column has
// the same height.
func decodeCSV(data []byte) (*RawTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &RawTable{}, nil
	}

	header := records[0]
	body := records[1:]
	width := len(header)
	for _, rec := range body {
		if len(rec) > width {
			width = len(rec)
		}
	}

	cols := make([]Column, width)
	for c := 0; c < width; c++ {
		name := ""
		if c < len(header) {
			name = strings.TrimSpace(header[c])
		}
		cells := make([]string, len(body))
		for i, rec := range body {
			if c < len(rec) {
				cells[i] = strings.TrimSpace(rec[c])
			}
		}
		cols[c] = Column{Name: name, Cells: cells}
	}
	return &RawTable{Columns: cols}, nil
}
