package pivot_http_handler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/vegansindhu/admin-upload/domain/app"
	"github.com/vegansindhu/admin-upload/domain/dtos"

	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
	gomponents "maragu.dev/gomponents"
)

type PivotHttpHandler struct {
	service   app.PivotService
	publisher app.Publisher
	log       *slog.Logger
}

func New(service app.PivotService, publisher app.Publisher, log *slog.Logger) *PivotHttpHandler {
	return &PivotHttpHandler{service, publisher, log}
}

func (this *PivotHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/admin")

	app.Get("/", this.form)
	app.Post("/preview", this.preview)
	app.Post("/publish", this.publish)
}

func (this *PivotHttpHandler) form(fctx fiber.Ctx) error {
	return renderPage(fctx, fiber.StatusOK, formPage())
}

func (this *PivotHttpHandler) preview(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	filename, data, err := readUpload(fctx)
	if err != nil {
		return renderPage(fctx, fiber.StatusBadRequest,
			errorPage("Upload failed", "Attach an .xlsx or .csv file and try again."))
	}

	pivot, serr := this.service.Reshape(ctx, filename, data)
	if serr != nil {
		this.log.Error("reshape failed", "filename", filename, "error", serr)
		return renderPage(fctx, fiber.StatusUnprocessableEntity,
			errorPage("Processing failed", fmt.Sprintf("%v", serr)))
	}

	return renderPage(fctx, fiber.StatusOK, previewPage(pivot, filename))
}

func (this *PivotHttpHandler) publish(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	filename, data, err := readUpload(fctx)
	if err != nil {
		return renderPage(fctx, fiber.StatusBadRequest,
			errorPage("Upload failed", "Attach an .xlsx or .csv file and try again."))
	}

	var req dtos.AdminPublishRequest
	// the commit message is optional; binding failures just keep the default
	fctx.Bind().Form(&req)

	pivot, serr := this.service.Reshape(ctx, filename, data)
	if serr != nil {
		this.log.Error("reshape failed", "filename", filename, "error", serr)
		return renderPage(fctx, fiber.StatusUnprocessableEntity,
			errorPage("Processing failed", fmt.Sprintf("%v", serr)))
	}

	result, perr := this.publisher.Publish(ctx, pivot.CSV(), req.Message)
	if perr != nil {
		this.log.Error("publish failed", "filename", filename, "error", perr)
		return renderPage(fctx, fiber.StatusBadGateway,
			errorPage("Failed to upload to GitHub", fmt.Sprintf("%v", perr)))
	}

	return renderPage(fctx, fiber.StatusOK, resultPage(pivot, result))
}

func readUpload(fctx fiber.Ctx) (string, []byte, error) {
	fh, err := fctx.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, data, nil
}

func renderPage(fctx fiber.Ctx, status int, node gomponents.Node) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return err
	}
	fctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return fctx.Status(status).Send(buf.Bytes())
}
