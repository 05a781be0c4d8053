package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

var _ Extractor = (*DOCXExtractor)(nil)

// DOCXExtractor returns the raw text of the document body: run text only, a
// newline per paragraph, tabs and breaks kept. Headers, footers and embedded
// objects are ignored.
type DOCXExtractor struct{}

func NewDOCXExtractor() *DOCXExtractor { return &DOCXExtractor{} }

func (e *DOCXExtractor) SupportedFormats() []string { return []string{FormatDOCX} }

func (e *DOCXExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", failed("open docx", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			body = f
			break
		}
	}
	if body == nil {
		return "", failed("open docx", errors.New(docxBodyPart+" not found"))
	}

	rc, err := body.Open()
	if err != nil {
		return "", failed("open document.xml", err)
	}
	defer rc.Close()

	text, err := docxText(rc)
	if err != nil {
		return "", failed("parse document.xml", err)
	}
	return text, nil
}

// docxText walks the WordprocessingML token stream collecting w:t content.
func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var out strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				out.WriteString("\t")
			case "br", "cr":
				out.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				out.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				out.Write(t)
			}
		}
	}

	return out.String(), nil
}
