package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/telemetry"
)

const (
	mimePDF   = "application/pdf"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText  = "text/plain"
	mimeHTML  = "text/html"
	mimeZip   = "application/zip"
	mimeOctet = "application/octet-stream"
)

// OCR turns an image into text.
type OCR interface {
	Recognize(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Extractor converts uploaded documents into plain text. Images need an OCR backend.
type Extractor struct {
	OCR OCR
}

// New returns an Extractor. ocr may be nil, in which case images fail with ErrOCRNotConfigured.
func New(ocr OCR) *Extractor {
	return &Extractor{OCR: ocr}
}

// Extract returns the trimmed text of data. Blank output is ErrNoText.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	kind := normalizeMimeType(mimeType, fileName, data)
	var (
		text string
		err  error
	)
	switch {
	case kind == mimePDF:
		text, err = extractPDF(data)
	case kind == mimeDOCX:
		text, err = extractDOCX(data)
	case kind == mimeHTML:
		text, err = ExtractHTMLText(bytes.NewReader(data))
	case kind == mimeText || kind == "text/markdown":
		text = string(data)
	case strings.HasPrefix(kind, "image/"):
		text, err = e.recognize(ctx, data, kind)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
	if err != nil {
		metrics.IncExtractionFailed(ErrorCode(err))
		return "", fmt.Errorf("extract %s (%s): %w", fileName, kind, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		metrics.IncExtractionFailed(CodeNoText)
		telemetry.Warn("extract.no_text", map[string]any{"file_name": fileName, "mime_type": kind})
		return "", ErrNoText
	}
	return text, nil
}

func (e *Extractor) recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	if e == nil || e.OCR == nil {
		return "", ErrOCRNotConfigured
	}
	return e.OCR.Recognize(ctx, data, mimeType)
}

// extractPDF concatenates the plain text of every readable page. Pages that fail to decode are skipped.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps character data and turns paragraph and line breaks into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// normalizeMimeType strips parameters and resolves generic types from the payload and file extension.
func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimeZip:
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
		return clean
	case "", mimeOctet:
		if byExt := mimeFromExtension(fileName); byExt != "" {
			return byExt
		}
		sniffed := strings.Split(http.DetectContentType(data), ";")[0]
		if sniffed == mimeZip {
			if mapped := mapOOXMLFromZip(data); mapped != "" {
				return mapped
			}
		}
		return sniffed
	}
	return clean
}

func mimeFromExtension(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".txt":
		return mimeText
	case ".md":
		return "text/markdown"
	case ".html", ".htm":
		return mimeHTML
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return ""
	}
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return mimeDOCX
		}
	}
	return ""
}
