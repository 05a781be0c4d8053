// Package input resolves where the CLI reads resume content from.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/resume-import/internal/importer"
)

// StdinName selects standard input in place of a file path.
const StdinName = "-"

// MaxSize caps how much is read from a single source.
const MaxSize = 32 << 20

var ErrTooLarge = errors.New("input is too large")

// Source describes how to load resume content.
type Source struct {
	// Path is a file to read. Empty or StdinName means Stdin.
	Path string
	// Stdin is read when no path is given. Content read from it counts as
	// pasted text.
	Stdin io.Reader
}

// FromStdin reports whether src reads standard input.
func (src Source) FromStdin() bool {
	path := strings.TrimSpace(src.Path)
	return path == "" || path == StdinName
}

// Load reads the content described by src and returns it ready for the
// importer. Files keep their base name so the importer can pick a format by
// extension.
func Load(src Source) (importer.Source, error) {
	if src.FromStdin() {
		if src.Stdin == nil {
			return importer.Source{}, errors.New("no input file given and stdin is not available")
		}
		data, err := readAll(src.Stdin)
		if err != nil {
			return importer.Source{}, fmt.Errorf("reading stdin: %w", err)
		}
		return importer.Source{Name: "stdin", Data: data, Pasted: true}, nil
	}

	path := strings.TrimSpace(src.Path)
	file, err := os.Open(path)
	if err != nil {
		return importer.Source{}, fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	data, err := readAll(file)
	if err != nil {
		return importer.Source{}, fmt.Errorf("reading %q: %w", path, err)
	}

	return importer.Source{Name: filepath.Base(path), Data: data}, nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
