package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/editable/internal/core/domain"
)

// DocumentView is the JSON form of a stored document.
type DocumentView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Revision  string    `json:"revision"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommandView is the JSON form of an editor command.
type CommandView struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Kind   string `json:"kind"`
	Prompt string `json:"prompt,omitempty"`
}

// NormalizeResponse is returned by POST /normalize.
type NormalizeResponse struct {
	Content   string `json:"content"`
	Canonical bool   `json:"canonical"`
}

var exportTypes = map[string]string{
	"html":     "text/html; charset=utf-8",
	"markdown": "text/markdown; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK")) //nolint:errcheck
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	form, err := readSubmission(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	canonical, ok := s.ports.Normalise.Check(form.content)
	respondJSON(w, http.StatusOK, NormalizeResponse{Content: canonical, Canonical: ok})
}

func (s *Server) handleCommands(w http.ResponseWriter, _ *http.Request) {
	table := domain.DefaultCommands()
	views := make([]CommandView, 0, len(table))
	for id, c := range table {
		views = append(views, CommandView{
			ID:     id,
			Label:  c.Label,
			Kind:   c.Kind.String(),
			Prompt: c.Prompt,
		})
	}
	slices.SortFunc(views, func(a, b CommandView) int { return strings.Compare(a.ID, b.ID) })
	respondJSON(w, http.StatusOK, map[string]any{"items": views})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.ports.Documents.List(r.Context())
	if err != nil {
		respondFailure(w, "Failed to list documents", err)
		return
	}

	views := make([]DocumentView, len(docs))
	for i := range docs {
		views[i] = toView(&docs[i], false)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items": views,
		"total": len(views),
	})
}

func (s *Server) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	form, err := readSubmission(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(form.name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	doc, err := s.ports.Documents.Save(r.Context(), form.name, form.content)
	if err != nil {
		respondFailure(w, "Failed to save document", err)
		return
	}
	respondJSON(w, http.StatusCreated, toView(doc, true))
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.ports.Documents.Resolve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, "Failed to get document", err)
		return
	}
	respondJSON(w, http.StatusOK, toView(doc, true))
}

func (s *Server) handleExportDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.ports.Documents.Resolve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, "Failed to get document", err)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "html"
	}
	data, err := s.ports.Documents.Export(r.Context(), doc.ID, format)
	if err != nil {
		respondFailure(w, "Failed to export document", err)
		return
	}

	contentType, ok := exportTypes[format]
	if !ok {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.ports.Documents.Resolve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, "Failed to get document", err)
		return
	}
	if err := s.ports.Documents.Delete(r.Context(), doc.ID); err != nil {
		respondFailure(w, "Failed to delete document", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type submission struct {
	name    string
	content string
}

// readSubmission reads the name and content fields of a form post. Any
// other body is taken as the content, with the name from the query string.
func readSubmission(w http.ResponseWriter, r *http.Request) (submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return submission{}, err
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormBytes); err != nil {
			return submission{}, err
		}
	default:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return submission{}, err
		}
		return submission{name: r.URL.Query().Get("name"), content: string(data)}, nil
	}
	return submission{name: r.PostFormValue("name"), content: r.PostFormValue("content")}, nil
}

// respondFailure maps domain errors onto status codes.
func respondFailure(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	}
	respondError(w, status, message+": "+err.Error())
}

func toView(doc *domain.StoredDocument, withContent bool) DocumentView {
	v := DocumentView{
		ID:        doc.ID,
		Name:      doc.Name,
		Revision:  doc.Revision,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if withContent {
		v.Content = doc.Content
	}
	return v
}
