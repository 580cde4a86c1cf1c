package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucreistaken/cv-importer/internal/pipeline"
)

func newTestServer() *Server {
	return &Server{importer: pipeline.New(pipeline.Options{})}
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleHealth_NoDatabase(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disabled", body["history"])
}

func TestHandleImport_EmptyBody(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/imports", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/pdf")

	s.handleImport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleImport_MalformedPDF(t *testing.T) {
	s := newTestServer()
	body, contentType := multipartBody(t, "file", "cv.pdf", []byte("not a pdf at all"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", contentType)

	s.handleImport(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Failed to decode PDF")
}

func TestHandleImport_MissingFormField(t *testing.T) {
	s := newTestServer()
	body, contentType := multipartBody(t, "document", "cv.pdf", []byte("payload"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", contentType)

	s.handleImport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListImports_HistoryDisabled(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleListImports(rec, httptest.NewRequest(http.MethodGet, "/imports", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetImport_HistoryDisabled(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleGetImport(rec, httptest.NewRequest(http.MethodGet, "/imports/abc", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleDeleteImport_HistoryDisabled(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleDeleteImport(rec, httptest.NewRequest(http.MethodDelete, "/imports/abc", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler should not run for OPTIONS")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/imports", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
