package extract

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/respond"
	"career-backend/internal/shared/util"
)

// Handler exposes text extraction over HTTP.
type Handler struct {
	Extractor *Extractor
	MaxUpload int64
}

// NewHandler constructs a Handler.
func NewHandler(extractor *Extractor, maxUpload int64) *Handler {
	return &Handler{Extractor: extractor, MaxUpload: maxUpload}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
}

func (h *Handler) extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUpload)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondUploadError(c, err)
		return
	}
	upload, err := ReadUpload(fileHeader)
	if err != nil {
		RespondUploadError(c, err)
		return
	}

	text, err := h.Extractor.Extract(c.Request.Context(), upload.Data, upload.MimeType, upload.FileName)
	if err != nil {
		RespondError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"fileName": upload.FileName,
		"text":     text,
	})
}

// RespondUploadError maps multipart read failures onto the error envelope.
func RespondUploadError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodeFileTooLarge, "File exceeds the upload limit", nil)
	case errors.Is(err, util.ErrInvalidFileName):
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid file name", nil)
	case errors.Is(err, ErrEmptyFile):
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file is empty", nil)
	default:
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file is required", nil)
	}
}

// RespondError maps extraction failures onto the error envelope.
func RespondError(c *gin.Context, err error) {
	switch code := ErrorCode(err); code {
	case CodeNoText:
		respond.Error(c, http.StatusUnprocessableEntity, code, "No readable text was found in the document", nil)
	case CodeUnsupported:
		respond.Error(c, http.StatusUnsupportedMediaType, code, err.Error(), nil)
	case CodeOCRMissing:
		respond.Error(c, http.StatusServiceUnavailable, code, "Image text recognition is not configured", nil)
	case CodeEmptyFile:
		respond.Error(c, http.StatusBadRequest, code, "file is empty", nil)
	default:
		respond.Error(c, http.StatusUnprocessableEntity, code, "Failed to extract text from the document", nil)
	}
}
