package app

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

// DivisionColumnName is the fixed header of the optional division/unit
// column in published pivots.
const DivisionColumnName = "Division/ Unit"

type PivotRow struct {
	Identifier string `json:"identifier"`
	Counts     []int  `json:"counts"`
	Division   string `json:"division,omitempty"`
}

// PivotTable is the normalized reshape result: one row per unique
// employee, one count column per course, plus the optional division
// attribute. Counts in each row are parallel to Courses.
type PivotTable struct {
	IdentifierName string     `json:"identifier_name"`
	Courses        []string   `json:"courses"`
	HasDivision    bool       `json:"has_division"`
	Rows           []PivotRow `json:"rows"`
}

func (t *PivotTable) Header() []string {
	header := make([]string, 0, len(t.Courses)+2)
	header = append(header, t.IdentifierName)
	header = append(header, t.Courses...)
	if t.HasDivision {
		header = append(header, DivisionColumnName)
	}
	return header
}

// CSV serializes the pivot as the published artifact: UTF-8, header row,
// no index column.
func (t *PivotTable) CSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(t.Header())
	for _, row := range t.Rows {
		rec := make([]string, 0, len(t.Courses)+2)
		rec = append(rec, row.Identifier)
		for _, n := range row.Counts {
			rec = append(rec, strconv.Itoa(n))
		}
		if t.HasDivision {
			rec = append(rec, row.Division)
		}
		w.Write(rec)
	}
	w.Flush()
	return buf.Bytes()
}

type PivotService interface {
	Reshape(ctx nova_ctx.Ctx, filename string, file []byte) (*PivotTable, errs.Error)
}
