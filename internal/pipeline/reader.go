package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// SourceReadError marks a failure to read or decode an input document
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read document %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// ReadDocument loads the text of an FNOL document. PDF files are converted
// to plain text; everything else is read as UTF-8.
func ReadDocument(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return readPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceReadError{Path: path, Err: err}
	}
	return string(data), nil
}

func readPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", &SourceReadError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	text, err := reader.GetPlainText()
	if err != nil {
		return "", &SourceReadError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(text); err != nil {
		return "", &SourceReadError{Path: path, Err: err}
	}
	return buf.String(), nil
}
