package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"career-backend/internal/extract"
)

// readUpload loads a local file the way a multipart upload would arrive.
func readUpload(path string) (extract.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.Upload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return extract.Upload{FileName: filepath.Base(path), Data: data}, nil
}

// readText extracts plain text from a local document. The MIME type is inferred from the file itself.
func readText(ctx context.Context, ext *extract.Extractor, path string) (string, error) {
	up, err := readUpload(path)
	if err != nil {
		return "", err
	}
	text, err := ext.Extract(ctx, up.Data, up.MimeType, up.FileName)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
