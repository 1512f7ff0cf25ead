package pivot_http_handler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vegansindhu/admin-upload/domain/app"
	pivot_service "github.com/vegansindhu/admin-upload/internal/app/pivot/service"

	"github.com/init-pkg/nova/errs"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	content []byte
	message string
	fail    bool
}

func (f *fakePublisher) Publish(ctx nova_ctx.Ctx, content []byte, message string) (*app.PublishResult, errs.Error) {
	if f.fail {
		return nil, errs.WrapAppError(errors.New("github unreachable"), &errs.ErrorOpts{})
	}
	f.content = content
	f.message = message
	return &app.PublishResult{
		HTMLURL: "https://github.com/VeganSindhu/admin_upload/blob/main/processed_pivot.csv",
		RawURL:  "https://raw.githubusercontent.com/VeganSindhu/admin_upload/main/processed_pivot.csv",
		Created: true,
	}, nil
}

func testApp(publisher *fakePublisher) *fiber.App {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := New(pivot_service.New(log), publisher, log)

	fiberApp := fiber.New()
	handler.Register(fiberApp)
	return fiberApp
}

func uploadRequest(t *testing.T, target, filename string, content []byte, message string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	if message != "" {
		require.NoError(t, mw.WriteField("message", message))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}

func TestFormPage(t *testing.T) {
	fiberApp := testApp(&fakePublisher{})

	res, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/admin/", nil))
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)

	body := readBody(t, res)
	assert.Contains(t, body, "multipart/form-data")
	assert.Contains(t, body, `formaction="/admin/publish"`)
	assert.Contains(t, body, "Publish to GitHub")
}

func TestPreviewRendersPivot(t *testing.T) {
	fiberApp := testApp(&fakePublisher{})

	req := uploadRequest(t, "/admin/preview", "pending.csv", []byte(
		"Employee Name,Division,CourseA,CourseB\n"+
			"Alice,HR,1,0\n"+
			"Bob,IT,0,1\n"), "")
	res, err := fiberApp.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)

	body := readBody(t, res)
	assert.Contains(t, body, "Preview of processed pivot")
	assert.Contains(t, body, "pending.csv: 2 employees, 2 courses")
	assert.Contains(t, body, "<td>Alice</td>")
	assert.Contains(t, body, "<th>CourseA</th>")
	assert.Contains(t, body, "<th>Division/ Unit</th>")
}

func TestPreviewWithoutFile(t *testing.T) {
	fiberApp := testApp(&fakePublisher{})

	req := httptest.NewRequest(http.MethodPost, "/admin/preview", nil)
	res, err := fiberApp.Test(req)
	require.NoError(t, err)
	require.Equal(t, 400, res.StatusCode)
	assert.Contains(t, readBody(t, res), "Upload failed")
}

func TestPreviewUnreadableWorkbook(t *testing.T) {
	fiberApp := testApp(&fakePublisher{})

	req := uploadRequest(t, "/admin/preview", "broken.xlsx", []byte("not a workbook"), "")
	res, err := fiberApp.Test(req)
	require.NoError(t, err)
	require.Equal(t, 422, res.StatusCode)
	assert.Contains(t, readBody(t, res), "Processing failed")
}

func TestPublishSendsPivotCSV(t *testing.T) {
	publisher := &fakePublisher{}
	fiberApp := testApp(publisher)

	req := uploadRequest(t, "/admin/publish", "pending.csv", []byte(
		"Employee Name,CourseA\n"+
			"Alice,1\n"), "weekly refresh")
	res, err := fiberApp.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)

	assert.Equal(t, "Employee Name,CourseA\nAlice,1\n", string(publisher.content))
	assert.Equal(t, "weekly refresh", publisher.message)

	body := readBody(t, res)
	assert.Contains(t, body, "successfully uploaded to GitHub")
	assert.Contains(t, body, "raw.githubusercontent.com")
}

func TestPublishUpstreamFailure(t *testing.T) {
	fiberApp := testApp(&fakePublisher{fail: true})

	req := uploadRequest(t, "/admin/publish", "pending.csv", []byte(
		"Employee Name,CourseA\n"+
			"Alice,1\n"), "")
	res, err := fiberApp.Test(req)
	require.NoError(t, err)
	require.Equal(t, 502, res.StatusCode)
	assert.Contains(t, readBody(t, res), "Failed to upload to GitHub")
}
