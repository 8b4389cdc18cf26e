package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/parsererror"
)

// StatementParser turns an uploaded document into transactions.
type StatementParser interface {
	Parse(ctx context.Context, content []byte, source string) ([]models.Transaction, error)
}

// CategoryResolver categorizes transactions and records user overrides.
type CategoryResolver interface {
	ResolveBatch(ctx context.Context, transactions []models.Transaction) []models.Transaction
	SetOverride(vendor, category string) error
}

// UploadResponse is the body of a successful upload.
type UploadResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// TagResponse is the body of a successful tag request.
type TagResponse struct {
	Vendor   string `json:"vendor"`
	Category string `json:"category"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handlers serves the upload and tag endpoints.
type Handlers struct {
	parser         StatementParser
	resolver       CategoryResolver
	maxUploadBytes int64
	logger         logging.Logger
}

// NewHandlers creates the endpoint handlers. maxUploadBytes bounds the
// multipart body of an upload.
func NewHandlers(parser StatementParser, resolver CategoryResolver, maxUploadBytes int64, logger logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Handlers{
		parser:         parser,
		resolver:       resolver,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload accepts a multipart form with a "file" part and a "source" field,
// and answers with the categorized transactions.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithField(logging.FieldRequestID, RequestIDFromContext(r.Context()))

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		log.WithError(err).Warn("Invalid upload form")
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	source := r.FormValue("source")
	if strings.TrimSpace(source) == "" {
		writeError(w, http.StatusBadRequest, "missing form field 'source'")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing form file 'file'")
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	log.Info("Received upload request",
		logging.Field{Key: logging.FieldFile, Value: header.Filename},
		logging.Field{Key: logging.FieldSource, Value: source})

	transactions, err := h.parser.Parse(r.Context(), content, source)
	if err != nil {
		var unsupported *parsererror.UnsupportedSourceError
		if errors.As(err, &unsupported) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to parse statement")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	transactions = h.resolver.ResolveBatch(r.Context(), transactions)
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	log.Info("Parsed transactions from statement",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	writeJSON(w, http.StatusOK, UploadResponse{Transactions: transactions})
}

// Tag stores a user override from the "vendor" and "category" form fields.
func (h *Handlers) Tag(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithField(logging.FieldRequestID, RequestIDFromContext(r.Context()))

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}
	vendor := strings.TrimSpace(r.FormValue("vendor"))
	category := models.NormalizeLabel(r.FormValue("category"))
	if vendor == "" || category == "" {
		writeError(w, http.StatusBadRequest, "both 'vendor' and 'category' are required")
		return
	}

	if err := h.resolver.SetOverride(vendor, category); err != nil {
		log.WithError(err).Error("Failed to save override")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, TagResponse{Vendor: vendor, Category: category})
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
