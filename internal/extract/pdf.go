package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var _ Extractor = (*PDFExtractor)(nil)

// PDFExtractor reads text page by page. Each page's text rows are joined with
// single spaces and every page ends with a newline.
type PDFExtractor struct {
	// PreserveRows joins rows with newlines instead of spaces, which keeps the
	// line structure the resume parser works on.
	PreserveRows bool
}

func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

func (e *PDFExtractor) SupportedFormats() []string { return []string{FormatPDF} }

func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", failed("open pdf", errors.New("empty document"))
	}

	// The pdf package panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = failed("decode pdf", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", failed("open pdf", err)
	}

	sep := " "
	if e.PreserveRows {
		sep = "\n"
	}

	var out strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", failed(fmt.Sprintf("read page %d", i), err)
		}

		tokens := make([]string, 0, len(rows))
		for _, row := range rows {
			var b strings.Builder
			for _, t := range row.Content {
				b.WriteString(t.S)
			}
			if token := strings.TrimSpace(b.String()); token != "" {
				tokens = append(tokens, token)
			}
		}

		out.WriteString(strings.Join(tokens, sep))
		out.WriteString("\n")
	}

	return out.String(), nil
}
