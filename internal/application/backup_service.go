package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/coworking-hub/internal/blob"
	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

// BackupService exports the whole application state as a JSON snapshot and
// restores a previously exported one. Exports are additionally archived to a
// blob store so an operator download is not the only surviving copy.
type BackupService struct {
	store   *store.Store
	gate    *Gate
	archive blob.Store
	now     func() time.Time
	logger  *slog.Logger
}

// NewBackupService constructs a backup service with the provided
// dependencies. archive may be nil, in which case exports are only returned
// to the caller.
func NewBackupService(st *store.Store, gate *Gate, archive blob.Store, now func() time.Time) *BackupService {
	return NewBackupServiceWithLogger(st, gate, archive, now, nil)
}

// NewBackupServiceWithLogger constructs a backup service with a specified
// logger.
func NewBackupServiceWithLogger(st *store.Store, gate *Gate, archive blob.Store, now func() time.Time, logger *slog.Logger) *BackupService {
	if now == nil {
		now = time.Now
	}
	return &BackupService{store: st, gate: gate, archive: archive, now: now, logger: defaultLogger(logger)}
}

func (s *BackupService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "BackupService", operation, attrs...)
}

// Export encodes the current state for administrators. The payload is
// indented JSON and the filename carries the export date. Archiving is best
// effort: a failed archive write is logged and the export still succeeds,
// since the caller already holds the bytes.
func (s *BackupService) Export(ctx context.Context) (result ExportResult, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("BackupService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Export")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to export backup", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("filename", result.Filename).InfoContext(ctx, "backup exported")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	exportedAt := s.now()
	snapshot := s.store.Snapshot(exportedAt.Format(time.RFC3339))
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return
	}

	result = ExportResult{
		Filename: fmt.Sprintf("daoteng_backup_%s.json", exportedAt.Format("2006-01-02")),
		Data:     data,
	}

	if s.archive != nil {
		if _, archiveErr := s.archive.Put(ctx, result.Filename, bytes.NewReader(data), "application/json"); archiveErr != nil {
			logger.WarnContext(ctx, "failed to archive backup", "error", archiveErr, "filename", result.Filename)
		}
	}
	return
}

// Preview parses an uploaded snapshot and reports its metadata so the caller
// can warn before the overwrite. A payload that does not parse, or that lacks
// a version or timestamp, is rejected with ErrInvalidBackup.
func (s *BackupService) Preview(ctx context.Context, data []byte) (RestorePreview, error) {
	snapshot, err := decodeSnapshot(data)
	if err != nil {
		s.loggerWith(ctx, "Preview").ErrorContext(ctx, "failed to parse backup", "error", err, "error_kind", ErrorKind(err))
		return RestorePreview{}, err
	}
	return RestorePreview{Version: snapshot.Version, Timestamp: snapshot.Timestamp}, nil
}

// Restore overwrites the live state with an uploaded snapshot for
// administrators. Collections absent from the snapshot are left untouched;
// the active session is never modified.
func (s *BackupService) Restore(ctx context.Context, data []byte, confirm bool) (err error) {
	if s == nil || s.store == nil {
		return fmt.Errorf("BackupService is not configured")
	}

	logger := s.loggerWith(ctx, "Restore")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to restore backup", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "backup restored")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	snapshot, err := decodeSnapshot(data)
	if err != nil {
		return
	}
	if !confirm {
		err = ErrConfirmationRequired
		return
	}

	s.store.Apply(snapshot)
	return
}

func decodeSnapshot(data []byte) (domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if snapshot.Version == "" || snapshot.Timestamp == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: missing version or timestamp", ErrInvalidBackup)
	}
	return snapshot, nil
}
