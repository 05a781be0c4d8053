package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldSource is the structured log field key for the imported file name.
	FieldSource = "source"
	// FieldFormat is the structured log field key for the detected document format.
	FieldFormat = "format"
	// FieldKind is the structured log field key for the import outcome (json or text).
	FieldKind = "kind"
)

// StringField is a key/value pair destined for a zap.String field.
type StringField struct {
	Key   string
	Value string
}

// StringFields builds zap fields from pairs. Keys and values are trimmed and a
// pair is skipped when either side ends up empty, so an unnamed paste or an
// unknown format leaves no blank field in the entry.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key, value := strings.TrimSpace(field.Key), strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields returns logger enriched with fields. Importers built without a
// logger pass nil here and get a no-op logger back.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// ImportFields returns the fields describing one import: where the content came
// from and what format it was read as. Empty values are skipped.
func ImportFields(source, format string) []zap.Field {
	return StringFields(
		StringField{Key: FieldSource, Value: source},
		StringField{Key: FieldFormat, Value: format},
	)
}

// WithImportFields attaches ImportFields to the provided logger.
func WithImportFields(logger *zap.Logger, source, format string) *zap.Logger {
	return WithFields(logger, ImportFields(source, format)...)
}
