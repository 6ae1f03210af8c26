package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/example/coworking-hub/internal/application"
)

// maxBackupUpload caps uploaded snapshot documents at 8 MiB.
const maxBackupUpload = 8 << 20

type backupService interface {
	Export(ctx context.Context) (application.ExportResult, error)
	Preview(ctx context.Context, data []byte) (application.RestorePreview, error)
	Restore(ctx context.Context, data []byte, confirm bool) error
}

// BackupHandler exposes the snapshot export and restore flows.
type BackupHandler struct {
	service   backupService
	responder responder
	logger    *slog.Logger
}

func NewBackupHandler(service backupService, logger *slog.Logger) *BackupHandler {
	base := defaultLogger(logger)
	return &BackupHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *BackupHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "BackupHandler", operation, attrs...)
}

// Export streams the snapshot as a JSON attachment.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "Export")
	result, err := h.service.Export(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "export failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("filename", result.Filename).InfoContext(r.Context(), "backup exported")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		logger.ErrorContext(r.Context(), "failed to write export body", "error", err)
	}
}

// Preview parses an uploaded snapshot and reports its metadata.
func (h *BackupHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupUpload))
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Preview")
	preview, err := h.service.Preview(r.Context(), data)
	if err != nil {
		logger.ErrorContext(r.Context(), "preview failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, preview)
}

type restoreRequest struct {
	Confirm  bool            `json:"confirm"`
	Snapshot json.RawMessage `json:"snapshot"`
}

// Restore overwrites the live state with the uploaded snapshot.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req restoreRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBackupUpload)).Decode(&req); err != nil {
		h.log(r.Context(), "Restore", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode restore request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Restore")
	if err := h.service.Restore(r.Context(), req.Snapshot, req.Confirm); err != nil {
		logger.ErrorContext(r.Context(), "restore failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "backup restored")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
