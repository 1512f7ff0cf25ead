package pivot_http_handler

import (
	"fmt"
	"strconv"

	"github.com/vegansindhu/admin-upload/domain/app"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// the original tool previews the first 10 rows
const previewRowLimit = 10

func adminPage(title string, body ...gomponents.Node) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | Admin Upload")),
		),
		html.Body(
			html.Main(
				html.H1(gomponents.Text(title)),
				gomponents.Group(body),
			),
		),
	)
}

func formPage() gomponents.Node {
	return adminPage(
		"Admin: Upload source Excel/CSV and publish processed pivot to GitHub",
		html.Form(
			html.Method("post"),
			html.Action("/admin/preview"),
			gomponents.Attr("enctype", "multipart/form-data"),
			html.P(
				html.Label(gomponents.Text("Excel (.xlsx single/multi-sheet) or CSV (pivot) - admin only")),
				html.Input(html.Type("file"), html.Name("file"), gomponents.Attr("accept", ".xlsx,.csv")),
			),
			html.P(
				html.Label(gomponents.Text("Commit message (optional)")),
				html.Input(html.Type("text"), html.Name("message"), html.Placeholder("Admin: update processed pivot")),
			),
			html.P(
				html.Button(html.Type("submit"), gomponents.Text("Preview")),
				html.Button(html.Type("submit"), gomponents.Attr("formaction", "/admin/publish"), gomponents.Text("Publish to GitHub")),
			),
		),
	)
}

func previewPage(pivot *app.PivotTable, filename string) gomponents.Node {
	limit := len(pivot.Rows)
	if limit > previewRowLimit {
		limit = previewRowLimit
	}

	return adminPage(
		"Preview of processed pivot",
		html.P(gomponents.Text(fmt.Sprintf("%s: %d employees, %d courses. Showing the first %d rows.",
			filename, len(pivot.Rows), len(pivot.Courses), limit))),
		pivotTable(pivot, limit),
		backLink(),
	)
}

func resultPage(pivot *app.PivotTable, result *app.PublishResult) gomponents.Node {
	return adminPage(
		"Processed pivot successfully uploaded to GitHub",
		html.P(gomponents.Text("File URL: "), html.A(html.Href(result.HTMLURL), gomponents.Text(result.HTMLURL))),
		html.P(gomponents.Text("Raw CSV URL (use in user app): "), html.A(html.Href(result.RawURL), gomponents.Text(result.RawURL))),
		html.P(gomponents.Text(fmt.Sprintf("%d employees, %d courses published.", len(pivot.Rows), len(pivot.Courses)))),
		backLink(),
	)
}

func errorPage(title, detail string) gomponents.Node {
	return adminPage(
		title,
		html.P(gomponents.Text(detail)),
		backLink(),
	)
}

func pivotTable(pivot *app.PivotTable, limit int) gomponents.Node {
	header := pivot.Header()
	headCells := make([]gomponents.Node, 0, len(header))
	for _, name := range header {
		headCells = append(headCells, html.Th(gomponents.Text(name)))
	}

	rows := make([]gomponents.Node, 0, limit)
	for _, row := range pivot.Rows[:limit] {
		cells := make([]gomponents.Node, 0, len(header))
		cells = append(cells, html.Td(gomponents.Text(row.Identifier)))
		for _, n := range row.Counts {
			cells = append(cells, html.Td(gomponents.Text(strconv.Itoa(n))))
		}
		if pivot.HasDivision {
			cells = append(cells, html.Td(gomponents.Text(row.Division)))
		}
		rows = append(rows, html.Tr(gomponents.Group(cells)))
	}

	return html.Table(
		html.THead(html.Tr(gomponents.Group(headCells))),
		html.TBody(gomponents.Group(rows)),
	)
}

func backLink() gomponents.Node {
	return html.P(html.A(html.Href("/admin/"), gomponents.Text("Back to upload form")))
}
