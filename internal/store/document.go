// Package store reads and writes gradient documents on disk.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gradedit/internal/config"
	gradediterrors "github.com/alexisbeaulieu97/gradedit/pkg/errors"
)

// Format is the on-disk encoding of a document.
type Format int

const (
	YAML Format = iota
	JSON
)

// FormatFor picks the encoding from the file extension; anything other than
// .json is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

// Document is a gradient file. It remembers the bytes it last read or wrote
// so that change notifications caused by its own saves can be ignored.
type Document struct {
	path   string
	format Format

	mu   sync.Mutex
	last []byte
}

// Open returns a handle for path. The file need not exist yet.
func Open(path string) *Document {
	return &Document{path: path, format: FormatFor(path)}
}

// Path returns the document location.
func (d *Document) Path() string {
	return d.path
}

// Format returns the document encoding.
func (d *Document) Format() Format {
	return d.format
}

// Load decodes the document into generic values. A missing file decodes to
// nil so callers fall back to the default gradient.
func (d *Document) Load() (any, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, gradediterrors.NewParseError(d.path, 0, err)
	}

	raw, err := Decode(d.path, d.format, data)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.last = data
	d.mu.Unlock()
	return raw, nil
}

// Changed reports whether the file content differs from what this document
// last read or wrote.
func (d *Document) Changed() (bool, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return !bytes.Equal(data, d.last), nil
}

// Save encodes value and replaces the file atomically.
func (d *Document) Save(value any) error {
	data, err := Encode(d.format, value)
	if err != nil {
		return err
	}
	if err := WriteAtomic(d.path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return err
	}

	d.mu.Lock()
	d.last = data
	d.mu.Unlock()
	return nil
}

// Decode parses document bytes in the given format.
func Decode(path string, format Format, data []byte) (any, error) {
	var raw any
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	if format == JSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, gradediterrors.NewParseError(path, 0, err)
		}
		return raw, nil
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, gradediterrors.NewParseError(path, config.ExtractLine(err), err)
	}
	return raw, nil
}

// Encode serializes value in the given format.
func Encode(format Format, value any) ([]byte, error) {
	if format == JSON {
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document: %w", err)
		}
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAtomic writes path through a temporary file in the same directory
// followed by a rename.
func WriteAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Chmod(0o644)

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
