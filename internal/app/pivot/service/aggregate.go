package pivot_service

import (
	"github.com/vegansindhu/admin-upload/domain/app"
)

// programMarker selects the rows belonging to the program this tool
// publishes; it is an opaque literal as far as filtering is concerned.
const programMarker = "RMS TP"

type programRow struct {
	course string
	cells  map[string]string
}

// pivotAggregate handles the multi-sheet path: per-course attendance
// logs are filtered to the program marker, tagged with their sheet name
// as the course, and counted per (employee, course) pair.
func pivotAggregate(sheets []sheetTable) (*app.PivotTable, error) {
	var (
		columns []string
		colSeen = make(map[string]bool)
		rows    []programRow
		courses []string
	)
	for _, sheet := range sheets {
		t := cleanTable(sheet.table, true)
		keep := programRowIndices(t)
		if len(keep) == 0 {
			continue
		}
		courses = append(courses, sheet.name)
		for _, col := range t.Columns {
			if !colSeen[col.Name] {
				colSeen[col.Name] = true
				columns = append(columns, col.Name)
			}
		}
		for _, r := range keep {
			cells := make(map[string]string, len(t.Columns))
			for _, col := range t.Columns {
				cells[col.Name] = col.Cells[r]
			}
			rows = append(rows, programRow{course: sheet.name, cells: cells})
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoProgramRows
	}

	// exact name match only here, no positional fallback
	idIdx, ok := firstColumn(columns, isIdentifierName)
	if !ok {
		return nil, ErrNoIdentifierColumn
	}
	idName := columns[idIdx]
	divIdx, hasDiv := firstColumn(columns, isDivisionName)
	divName := ""
	if hasDiv {
		divName = columns[divIdx]
	}

	courseIndex := make(map[string]int, len(courses))
	for i, name := range courses {
		courseIndex[name] = i
	}

	var (
		employees []string
		counts    = make(map[string][]int)
		divisions = make(map[string]string)
	)
	for _, row := range rows {
		id := row.cells[idName]
		if _, ok := counts[id]; !ok {
			employees = append(employees, id)
			counts[id] = make([]int, len(courses))
			if hasDiv {
				// first occurrence wins
				divisions[id] = row.cells[divName]
			}
		}
		counts[id][courseIndex[row.course]]++
	}

	result := &app.PivotTable{
		IdentifierName: idName,
		Courses:        courses,
		HasDivision:    hasDiv,
	}
	for _, id := range employees {
		result.Rows = append(result.Rows, app.PivotRow{
			Identifier: id,
			Counts:     counts[id],
			Division:   divisions[id],
		})
	}
	return result, nil
}

// programRowIndices returns the rows belonging to the program: matched
// on the division column when the sheet has one, otherwise by scanning
// every cell of the row.
func programRowIndices(t *RawTable) []int {
	divIdx, hasDiv := firstColumn(t.names(), isDivisionName)

	var keep []int
	for r := 0; r < t.rowCount(); r++ {
		if hasDiv {
			if containsFold(t.Columns[divIdx].Cells[r], programMarker) {
				keep = append(keep, r)
			}
			continue
		}
		for _, col := range t.Columns {
			if containsFold(col.Cells[r], programMarker) {
				keep = append(keep, r)
				break
			}
		}
	}
	return keep
}
