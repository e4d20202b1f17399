package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/telemetry"
)

// Error codes shared by every feature. Packages add their own for domain failures.
const (
	CodeValidation   = "validation_error"
	CodeNotFound     = "not_found"
	CodeFileTooLarge = "file_too_large"
	CodeRateLimited  = "rate_limited"
	CodeInternal     = "internal_error"
)

const msgInvalidBody = "invalid request body"

// ErrorBody is the error object of the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the {"error": {...}} envelope every failing endpoint returns.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error logs the failure and aborts with the envelope. 5xx log at error level, the rest at warn.
func Error(c *gin.Context, status int, code, message string, details any) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"route":      c.FullPath(),
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Details: details}})
}

// InvalidBody rejects a request whose JSON body could not be bound.
func InvalidBody(c *gin.Context) {
	Error(c, http.StatusBadRequest, CodeValidation, msgInvalidBody, nil)
}

// NotFound rejects a request for an unknown route or resource.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// Internal hides err behind a generic message. err is logged, never returned to the client.
func Internal(c *gin.Context, message string, err error) {
	if err != nil {
		telemetry.Error("http.internal", map[string]any{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("requestId"),
		})
	}
	Error(c, http.StatusInternalServerError, CodeInternal, message, nil)
}
