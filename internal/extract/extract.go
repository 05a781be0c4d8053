// Package extract turns uploaded documents into plain text for the resume
// parser.
package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrExtractionFailed is returned for any decoding problem. No partial text
// accompanies it.
var ErrExtractionFailed = errors.New("extraction failed")

// Formats known to the built-in extractors.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatText = "txt"
)

// Extractor converts one document format to plain text in document order.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
	SupportedFormats() []string
}

// Registry maps formats to extractors.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns a registry with the PDF, DOCX and plain text extractors.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}
	for _, e := range []Extractor{NewPDFExtractor(), NewDOCXExtractor(), NewTextExtractor()} {
		r.Register(e)
	}
	return r
}

// Register adds e under each of its formats, replacing earlier registrations.
func (r *Registry) Register(e Extractor) {
	for _, f := range e.SupportedFormats() {
		r.extractors[NormalizeFormat(f)] = e
	}
}

// Get returns the extractor for format. Leading dots and case are ignored.
func (r *Registry) Get(format string) (Extractor, error) {
	e, ok := r.extractors[NormalizeFormat(format)]
	if !ok {
		return nil, fmt.Errorf("no extractor for format: %q", format)
	}
	return e, nil
}

// Formats lists registered formats.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	return formats
}

// NormalizeFormat lowercases a format or extension and drops its leading dot.
func NormalizeFormat(format string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
}

// FormatFromName returns the normalized extension of a file name.
func FormatFromName(name string) string {
	return NormalizeFormat(filepath.Ext(name))
}

func failed(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExtractionFailed, step, err)
}
