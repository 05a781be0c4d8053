package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spigell/resume-import/internal/export"
	"github.com/spigell/resume-import/internal/resume"
)

const (
	formatJSON = "json"
	formatText = "txt"
)

func checkOutputFormat(format string) error {
	switch format {
	case formatJSON, formatText:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", format, formatJSON, formatText)
	}
}

// outputTarget is the file to write, or empty for stdout. A "-" output always
// means stdout. Without --output and --into, JSON goes to stdout and a text
// export goes to the download name built from the candidate's name.
func outputTarget(cfg *ImportConfig, d *resume.Data) string {
	if out := strings.TrimSpace(cfg.Output); out != "" {
		if out == "-" {
			return ""
		}
		return out
	}
	if into := strings.TrimSpace(cfg.Into); into != "" {
		return into
	}
	if cfg.Format == formatText {
		return export.FileName(d)
	}
	return ""
}

func displayTarget(target string) string {
	if target == "" {
		return "stdout"
	}
	return target
}

// writeRecord renders d in format to target, or to stdout when target is empty.
func writeRecord(stdout io.Writer, target, format string, d *resume.Data) error {
	if target != "" && format == formatJSON {
		return d.ToFile(target)
	}

	w := stdout
	if target != "" {
		file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	if format == formatText {
		return export.WriteText(w, d)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
