package pivot_service

import "strings"

// Column is one named column of string cells. Cells are trimmed at
// decode time; the empty string marks an empty cell.
type Column struct {
	Name  string
	Cells []string
}

// RawTable is an ordered list of named columns decoded from a CSV
// document or one workbook sheet. All columns have the same height.
type RawTable struct {
	Columns []Column
}

func (t *RawTable) rowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

func (t *RawTable) names() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// cleanTable trims column names and drops columns whose every cell is
// empty. Workbook sheets additionally drop placeholder columns, the
// artifact of unnamed header cells.
func cleanTable(t *RawTable, dropUnnamed bool) *RawTable {
	out := &RawTable{Columns: make([]Column, 0, len(t.Columns))}
	for _, col := range t.Columns {
		name := strings.TrimSpace(col.Name)
		if dropUnnamed && (name == "" || hasUnnamedPrefix(name)) {
			continue
		}
		if len(col.Cells) > 0 && allEmpty(col.Cells) {
			continue
		}
		out.Columns = append(out.Columns, Column{Name: name, Cells: col.Cells})
	}
	return out
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
