package extract

import "errors"

var (
	// ErrNoText means the document parsed but held only whitespace.
	ErrNoText           = errors.New("no text found in document")
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrOCRNotConfigured = errors.New("ocr service not configured")
	ErrEmptyFile        = errors.New("empty file")
)

// Error codes shared by every endpoint that extracts text.
const (
	CodeNoText       = "no_text_found"
	CodeUnsupported  = "unsupported_media_type"
	CodeOCRMissing   = "ocr_unavailable"
	CodeEmptyFile    = "validation_error"
	CodeExtractError = "extraction_failed"
)

// ErrorCode classifies an extraction error for API responses and batch reports.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNoText):
		return CodeNoText
	case errors.Is(err, ErrUnsupportedType):
		return CodeUnsupported
	case errors.Is(err, ErrOCRNotConfigured):
		return CodeOCRMissing
	case errors.Is(err, ErrEmptyFile):
		return CodeEmptyFile
	default:
		return CodeExtractError
	}
}
