package pivot_service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/vegansindhu/admin-upload/domain/app"

	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"
)

// Input-shape failures, surfaced to the admin before any network call.
var (
	ErrEmptyTable         = errors.New("uploaded table has no columns")
	ErrNoProgramRows      = errors.New("no RMS TP rows were found in any sheet")
	ErrNoIdentifierColumn = errors.New("employee name column missing after consolidation")
)

type PivotService struct {
	log *slog.Logger
}

var _ app.PivotService = &PivotService{}

func New(log *slog.Logger) *PivotService {
	return &PivotService{log}
}

func (this *PivotService) Reshape(ctx nova_ctx.Ctx, filename string, file []byte) (*app.PivotTable, errs.Error) {
	res, err := this.reshape(filename, file)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	return res, nil
}

// reshape picks the strategy from the uploaded filename: a .csv upload
// is an indicator table already shaped one row per employee, anything
// else is a multi-sheet attendance workbook.
func (this *PivotService) reshape(filename string, file []byte) (*app.PivotTable, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		table, err := decodeCSV(file)
		if err != nil {
			return nil, err
		}
		pivot, err := pivotIndicator(table)
		if err != nil {
			return nil, err
		}
		this.log.Info("indicator pivot built",
			"filename", filename,
			"employees", len(pivot.Rows),
			"courses", len(pivot.Courses))
		return pivot, nil
	}

	sheets, err := decodeWorkbook(file)
	if err != nil {
		return nil, err
	}
	pivot, err := pivotAggregate(sheets)
	if err != nil {
		return nil, err
	}
	this.log.Info("aggregation pivot built",
		"filename", filename,
		"sheets", len(sheets),
		"employees", len(pivot.Rows),
		"courses", len(pivot.Courses))
	return pivot, nil
}
