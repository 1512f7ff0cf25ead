package pivot_service

import (
	"strings"

	"github.com/vegansindhu/admin-upload/domain/app"
)

// pivotIndicator handles the single-table path: rows are already one
// per employee, columns are courses, and a cell marks a pending course
// when its trimmed value is exactly "1".
func pivotIndicator(raw *RawTable) (*app.PivotTable, error) {
	t := cleanTable(raw, false)
	if len(t.Columns) == 0 {
		return nil, ErrEmptyTable
	}

	names := t.names()
	idIdx, ok := firstColumn(names, isIdentifierName)
	if !ok {
		// positional fallback, CSV path only
		idIdx = 0
	}
	divIdx, hasDiv := firstColumn(names, isDivisionName)

	var courseIdx []int
	for i, name := range names {
		if i == idIdx || (hasDiv && i == divIdx) || isMetadataName(name) {
			continue
		}
		courseIdx = append(courseIdx, i)
	}

	result := &app.PivotTable{
		IdentifierName: names[idIdx],
		HasDivision:    hasDiv,
	}
	for _, i := range courseIdx {
		result.Courses = append(result.Courses, names[i])
	}

	seen := make(map[string]bool)
	for r := 0; r < t.rowCount(); r++ {
		id := t.Columns[idIdx].Cells[r]
		if seen[id] {
			// first occurrence wins, including the division value
			continue
		}
		seen[id] = true

		row := app.PivotRow{Identifier: id, Counts: make([]int, len(courseIdx))}
		for k, i := range courseIdx {
			row.Counts[k] = indicatorValue(t.Columns[i].Cells[r])
		}
		if hasDiv {
			row.Division = t.Columns[divIdx].Cells[r]
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// indicatorValue is a literal-equality rule: only the exact string "1"
// after trimming counts. "yes", "true" and non-zero numbers do not.
func indicatorValue(s string) int {
	if strings.TrimSpace(s) == "1" {
		return 1
	}
	return 0
}
