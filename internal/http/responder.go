package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/coworking-hub/internal/application"
)

var (
	errBadRequestBody = errors.New("無法解析請求內容，請確認格式。")
	errInvalidID      = errors.New("無效的資源 ID。")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := localizedStatusMessage(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	switch {
	case errors.Is(err, application.ErrUnauthorized):
		r.writeJSON(ctx, w, http.StatusForbidden, errorResponse{
			ErrorCode: "AUTH_FORBIDDEN",
			Message:   "此操作需要管理者權限，請點擊右上角齒輪登入。",
		})
	case errors.Is(err, application.ErrInvalidCredentials):
		r.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Message: "密碼錯誤，請再試一次。"})
	case errors.Is(err, application.ErrNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "找不到指定的資料。"})
	case errors.Is(err, application.ErrInvalidBackup):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "無法讀取備份檔，請確認檔案內容與格式。"})
	case errors.Is(err, application.ErrConfirmationRequired):
		r.writeJSON(ctx, w, http.StatusConflict, errorResponse{
			ErrorCode: "CONFIRMATION_REQUIRED",
			Message:   "此操作無法復原，請再次確認後送出。",
		})
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
				Message: "輸入內容有誤，請修正後再試。",
				Errors:  localizeValidationErrors(vErr),
			})
			return
		}

		r.loggerFor(ctx).ErrorContext(ctx, "unhandled service error", "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "伺服器發生錯誤，請稍後再試。"})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func localizedStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "請求內容不正確。"
	case http.StatusUnauthorized:
		return "請先登入。"
	case http.StatusForbidden:
		return "此操作需要管理者權限，請點擊右上角齒輪登入。"
	case http.StatusNotFound:
		return "找不到指定的資料。"
	case http.StatusConflict:
		return "此操作無法復原，請再次確認後送出。"
	case http.StatusUnprocessableEntity:
		return "輸入內容有誤，請修正後再試。"
	default:
		return "伺服器發生錯誤，請稍後再試。"
	}
}

func localizeValidationErrors(vErr *application.ValidationError) map[string]string {
	if vErr == nil || len(vErr.FieldErrors) == 0 {
		return nil
	}

	translated := make(map[string]string, len(vErr.FieldErrors))
	for field, msg := range vErr.FieldErrors {
		translated[field] = translateValidationMessage(msg)
	}
	return translated
}

func translateValidationMessage(message string) string {
	switch message {
	case "title is required":
		return "請輸入標題。"
	case "name is required":
		return "請輸入名稱。"
	case "id is required":
		return "缺少資料識別碼。"
	case "category is required", "category is unknown":
		return "請選擇有效的分類。"
	case "branch is unknown":
		return "請選擇有效的館別。"
	case "date must be an ISO calendar date":
		return "日期格式須為 YYYY-MM-DD。"
	case "type is unknown":
		return "請選擇有效的公告類型。"
	case "content type is unknown":
		return "請選擇有效的內容類型。"
	case "at least one instruction is required":
		return "請至少輸入一個步驟。"
	case "media url is required":
		return "請提供媒體連結。"
	case "at least one image is required":
		return "請至少上傳一張圖片。"
	case "too many gallery images":
		return "圖片數量超過上限。"
	case "cover must reference a gallery image":
		return "封面必須是圖庫中的圖片。"
	default:
		return message
	}
}

type errorResponse struct {
	ErrorCode string            `json:"error_code,omitempty"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}
