// Package document supplies the plain text of a statement to the
// extraction pipeline. PDFs are read through their text layer; scanned
// documents without one surface as unavailable input. No OCR.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
)

var (
	// ErrNoText indicates a document whose text layer is empty or missing.
	ErrNoText = errors.New("document has no extractable text")
	// ErrUnreadable indicates a document that could not be opened or decoded.
	ErrUnreadable = errors.New("document could not be read")
)

// Document is the full plain-text extraction of one statement.
type Document struct {
	Text   string
	Source string
	Pages  int
	Words  int
}

// FromFile loads a statement document, dispatching on file extension.
// ".pdf" goes through the PDF text layer; anything else is read as UTF-8
// plain text.
func FromFile(path string) (*Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return FromPDF(path)
	}
	return FromText(path)
}

// FromPDF extracts the text layer of a PDF statement.
func FromPDF(path string) (*Document, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	doc := build(buf.String(), filepath.Base(path))
	doc.Pages = r.NumPage()
	if doc.Text == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoText, path)
	}
	return doc, nil
}

// FromText reads a plain-text statement file.
func FromText(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	doc := build(string(data), filepath.Base(path))
	if doc.Text == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoText, path)
	}
	return doc, nil
}

// FromString wraps already-extracted text as a Document.
func FromString(text, source string) *Document {
	return build(text, source)
}

func build(text, source string) *Document {
	cleaned := CleanText(text)
	return &Document{
		Text:   cleaned,
		Source: source,
		Pages:  1,
		Words:  len(strings.Fields(cleaned)),
	}
}

// CleanText normalizes extracted statement text: trims each line, drops
// runs of blank lines down to one paragraph break, and strips page-break
// artifacts, preserving line structure for the line-anchored extractors.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(text, "\f", "\n"), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		} else if len(cleaned) > 0 && cleaned[len(cleaned)-1] != "" {
			// Keep a single blank line as a paragraph break.
			cleaned = append(cleaned, "")
		}
	}

	out := strings.Join(cleaned, "\n")
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(out)
}
