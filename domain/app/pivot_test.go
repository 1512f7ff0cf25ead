package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPivotTableCSV(t *testing.T) {
	table := &PivotTable{
		IdentifierName: "Employee Name",
		Courses:        []string{"CourseA", "CourseB"},
		HasDivision:    true,
		Rows: []PivotRow{
			{Identifier: "Alice", Counts: []int{1, 0}, Division: "HR"},
			{Identifier: "Bob", Counts: []int{0, 1}, Division: "IT"},
		},
	}

	want := "Employee Name,CourseA,CourseB,Division/ Unit\n" +
		"Alice,1,0,HR\n" +
		"Bob,0,1,IT\n"
	assert.Equal(t, want, string(table.CSV()))
}

func TestPivotTableCSVWithoutDivision(t *testing.T) {
	table := &PivotTable{
		IdentifierName: "Name",
		Courses:        []string{"Safety"},
		Rows: []PivotRow{
			{Identifier: "Alice", Counts: []int{2}},
		},
	}

	assert.Equal(t, []string{"Name", "Safety"}, table.Header())
	assert.Equal(t, "Name,Safety\nAlice,2\n", string(table.CSV()))
}

func TestPivotTableCSVQuotesCommaFields(t *testing.T) {
	table := &PivotTable{
		IdentifierName: "Employee Name",
		Courses:        []string{"CourseA"},
		Rows: []PivotRow{
			{Identifier: "Kumar, A", Counts: []int{1}},
		},
	}

	assert.Equal(t, "Employee Name,CourseA\n\"Kumar, A\",1\n", string(table.CSV()))
}
