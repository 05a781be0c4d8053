// Package importer turns an uploaded file or pasted text into a resume record.
// Well-formed resume JSON is taken as a full record; everything else is reduced
// to text and run through the heuristic parser, producing a partial record.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/resume-import/internal/extract"
	"github.com/spigell/resume-import/internal/logger"
	"github.com/spigell/resume-import/internal/resume"
	"github.com/spigell/resume-import/internal/textparser"
)

var (
	ErrEmptyContent      = errors.New("empty content")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidJSON       = errors.New("invalid JSON")
	ErrInvalidResumeData = errors.New("invalid resume data structure")
)

// FormatJSON is handled by the importer itself rather than an extractor.
const FormatJSON = "json"

const previewLimit = 200

// Kind tells how a record was obtained.
type Kind string

const (
	KindJSON Kind = "json"
	KindText Kind = "text"
)

// Source is one piece of content to import.
type Source struct {
	// Name is the file name; its extension selects the format. Ignored for pasted content.
	Name   string
	Data   []byte
	Pasted bool
}

type Result struct {
	Data *resume.Data
	Kind Kind
	// Partial is set when the record came from the text parser and only holds
	// the fields it could recognise.
	Partial bool
	Format  string
}

type Importer struct {
	logger   *zap.Logger
	registry *extract.Registry
	opts     textparser.Options
}

// New builds an Importer. A nil registry means the built-in extractors and a
// nil logger disables logging.
func New(log *zap.Logger, registry *extract.Registry, opts textparser.Options) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	if registry == nil {
		registry = extract.NewRegistry()
	}
	return &Importer{logger: log, registry: registry, opts: opts}
}

// Import reads src and returns the resulting record.
func (i *Importer) Import(ctx context.Context, src Source) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(src.Data)) == 0 {
		return nil, ErrEmptyContent
	}

	var (
		result *Result
		err    error
	)
	if src.Pasted {
		result = i.importPasted(src)
	} else {
		result, err = i.importFile(ctx, src)
		if err != nil {
			return nil, err
		}
	}

	name := src.Name
	if src.Pasted && name == "" {
		name = "paste"
	}
	logger.WithImportFields(i.logger, name, result.Format).Info("resume imported",
		zap.String(logger.FieldKind, string(result.Kind)),
		zap.Bool("partial", result.Partial),
		zap.Any("counts", result.Data.Counts()),
	)

	return result, nil
}

// importPasted prefers a full JSON record and falls back to the text parser for
// anything that is not one, including JSON of the wrong shape.
func (i *Importer) importPasted(src Source) *Result {
	data, err := DecodeRecord(src.Data)
	if err == nil {
		return &Result{Data: data, Kind: KindJSON, Format: FormatJSON}
	}

	i.logger.Debug("pasted content is not a resume record, parsing as text", zap.Error(err))
	return i.parseText(string(src.Data), extract.FormatText)
}

func (i *Importer) importFile(ctx context.Context, src Source) (*Result, error) {
	format := extract.FormatFromName(src.Name)
	if format == "" {
		format = Sniff(src.Data)
		i.logger.Debug("format sniffed from content",
			zap.String(logger.FieldSource, src.Name),
			zap.String(logger.FieldFormat, format),
		)
	}

	if format == FormatJSON {
		data, err := DecodeRecord(src.Data)
		if err != nil {
			return nil, fmt.Errorf("importing %q: %w", src.Name, err)
		}
		return &Result{Data: data, Kind: KindJSON, Format: FormatJSON}, nil
	}

	extractor, err := i.registry.Get(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, src.Name)
	}

	text, err := extractor.Extract(ctx, src.Data)
	if err != nil {
		return nil, fmt.Errorf("importing %q: %w", src.Name, err)
	}

	return i.parseText(text, format), nil
}

func (i *Importer) parseText(text, format string) *Result {
	i.logger.Debug("parsing text", zap.String("preview", logger.TruncateForLog(text, previewLimit)))

	return &Result{
		Data:    textparser.ParseWithOptions(text, i.opts),
		Kind:    KindText,
		Partial: true,
		Format:  format,
	}
}

// Sniff guesses a format from magic bytes: PDF and ZIP (DOCX) signatures, a
// leading brace for JSON, text otherwise.
func Sniff(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return extract.FormatPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return extract.FormatDOCX
	case bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")):
		return FormatJSON
	default:
		return extract.FormatText
	}
}
