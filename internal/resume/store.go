package resume

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a record previously written by ToFile. An empty file yields an
// empty record. A missing file is returned as an error wrapping os.ErrNotExist.
func LoadFile(path string) (*Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return New(), nil
	}

	data := New()
	if err := json.NewDecoder(file).Decode(data); err != nil {
		return nil, fmt.Errorf("decoding resume %q: %w", path, err)
	}

	return data.Normalize(), nil
}

// ToFile writes the record as indented JSON, replacing any previous content.
func (d *Data) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return err
	}
	return nil
}

// DumpToTmpFile writes the record to a new temporary file and returns its name.
func (d *Data) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "resume_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return "", err
	}
	return file.Name(), nil
}
