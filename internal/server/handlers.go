package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/sucreistaken/cv-importer/internal/db"
	"github.com/sucreistaken/cv-importer/internal/extraction"
	"github.com/sucreistaken/cv-importer/internal/types"
)

// maxUploadBytes caps the accepted PDF size at 20 MB.
const maxUploadBytes = 20 << 20

// ImportResponse represents the response for POST /imports
type ImportResponse struct {
	ID          string            `json:"id,omitempty"`
	Filename    string            `json:"filename"`
	LikelyEmpty bool              `json:"likely_empty"`
	Document    *types.CVDocument `json:"document"`
}

// handleImport accepts a PDF upload and returns the imported document.
// Multipart uploads use the "file" form field; a raw application/pdf body
// is also accepted.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(data) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Empty upload")
		return
	}

	doc, err := s.importer.Import(r.Context(), data)
	if err != nil {
		var decodeErr *extraction.DecodeError
		if errors.As(err, &decodeErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to decode PDF: "+decodeErr.Message)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ImportResponse{
		Filename:    filename,
		LikelyEmpty: doc.IsEmpty(),
		Document:    doc,
	}

	if s.db != nil {
		id, err := s.db.SaveImport(r.Context(), filename, doc)
		if err != nil {
			log.Printf("Failed to persist import: %v", err)
		} else {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListImports returns recent imports from history
func (s *Server) handleListImports(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Import history is not configured")
		return
	}

	filters := db.ImportFilters{Filename: r.URL.Query().Get("filename")}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filters.Limit = limit
	}
	if v := r.URL.Query().Get("likely_empty"); v != "" {
		likelyEmpty, err := strconv.ParseBool(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid likely_empty")
			return
		}
		filters.LikelyEmpty = &likelyEmpty
	}

	imports, err := s.db.ListImports(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if imports == nil {
		imports = []db.ImportSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"imports": imports})
}

// handleGetImport returns a stored import with its full document
func (s *Server) handleGetImport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Import history is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid import ID")
		return
	}

	rec, err := s.db.GetImport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Import not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteImport removes a stored import
func (s *Server) handleDeleteImport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Import history is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid import ID")
		return
	}

	if err := s.db.DeleteImport(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// readUpload extracts the PDF bytes and filename from the request
func readUpload(r *http.Request) ([]byte, string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", errors.New("invalid multipart form: " + err.Error())
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", errors.New("missing form field \"file\"")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, "", errors.New("failed to read upload: " + err.Error())
		}
		return data, header.Filename, nil
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return nil, "", errors.New("failed to read request body: " + err.Error())
	}
	return data, "upload.pdf", nil
}
