package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartats/analyzer/internal/models"
	"smartats/analyzer/internal/repositories"
)

type stubStorage struct {
	filename string
	path     string
	saveErr  error
	deleted  []string
}

func (s *stubStorage) SaveFile(*multipart.FileHeader) (string, string, error) {
	if s.saveErr != nil {
		return "", "", s.saveErr
	}
	return s.filename, s.path, nil
}

func (s *stubStorage) GetFilePath(filename string) string {
	return s.path
}

func (s *stubStorage) DeleteFile(filename string) error {
	s.deleted = append(s.deleted, filename)
	return nil
}

func (s *stubStorage) EnsureUploadDir() error {
	return nil
}

type failingDocRepo struct{}

func (failingDocRepo) Create(*models.Document) error {
	return fmt.Errorf("db down")
}

func (failingDocRepo) FindByID(uuid.UUID) (*models.Document, error) {
	return nil, fmt.Errorf("document not found")
}

func newUploadApp(docRepo repositories.DocumentRepository, storage *stubStorage, parser *stubParser, maxFileSize int64) *fiber.App {
	app := fiber.New()
	handler := NewUploadHandler(docRepo, storage, parser, maxFileSize)
	app.Post("/api/v1/upload", handler.HandleUpload)
	return app
}

func newUploadRequest(t *testing.T, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleUploadSuccess(t *testing.T) {
	docRepo := &stubDocRepo{}
	storage := &stubStorage{filename: "resume_x.pdf", path: "/tmp/resume_x.pdf"}
	parser := &stubParser{text: "Jane Doe jane@example.com built systems since 2020"}
	app := newUploadApp(docRepo, storage, parser, 1024)

	resp, err := app.Test(newUploadRequest(t, "%PDF-1.4 fake body"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body models.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "resume_x.pdf", body.Filename)
	assert.Equal(t, "resume.pdf", body.OriginalName)
	assert.Equal(t, 7, body.WordCount)
	assert.Equal(t, 50, body.CharCount)
	// Short text costs 20 points, year and email are present
	assert.Equal(t, 80, body.QuickATSScore)

	require.Len(t, docRepo.docs, 1)
	assert.Empty(t, storage.deleted)
}

func TestHandleUploadMissingFile(t *testing.T) {
	app := newUploadApp(&stubDocRepo{}, &stubStorage{}, &stubParser{}, 1024)

	req := httptest.NewRequest("POST", "/api/v1/upload", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUploadTooLarge(t *testing.T) {
	storage := &stubStorage{filename: "resume_x.pdf"}
	app := newUploadApp(&stubDocRepo{}, storage, &stubParser{text: "text"}, 4)

	resp, err := app.Test(newUploadRequest(t, "this body exceeds four bytes"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, storage.deleted)
}

func TestHandleUploadExtractFailureCleansUp(t *testing.T) {
	storage := &stubStorage{filename: "resume_x.pdf", path: "/tmp/resume_x.pdf"}
	parser := &stubParser{err: fmt.Errorf("no text content found in PDF")}
	app := newUploadApp(&stubDocRepo{}, storage, parser, 1024)

	resp, err := app.Test(newUploadRequest(t, "scanned image only"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"resume_x.pdf"}, storage.deleted)
}

func TestHandleUploadStoreFailureCleansUp(t *testing.T) {
	storage := &stubStorage{filename: "resume_x.pdf", path: "/tmp/resume_x.pdf"}
	app := newUploadApp(failingDocRepo{}, storage, &stubParser{text: "resume text"}, 1024)

	resp, err := app.Test(newUploadRequest(t, "%PDF-1.4 fake body"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, []string{"resume_x.pdf"}, storage.deleted)
}
