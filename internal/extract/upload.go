package extract

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"career-backend/internal/shared/util"
)

// Upload is a received file held in memory.
type Upload struct {
	FileName string
	MimeType string
	Data     []byte
}

// ReadUpload reads a multipart file part. The declared content type is kept; when absent the payload is
// sniffed.
func ReadUpload(fh *multipart.FileHeader) (Upload, error) {
	name, err := util.SanitizeFileName(fh.Filename)
	if err != nil {
		return Upload{}, err
	}
	f, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Upload{}, ErrEmptyFile
	}
	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return Upload{FileName: name, MimeType: mimeType, Data: data}, nil
}
