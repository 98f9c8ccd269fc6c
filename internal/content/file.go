package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceError reports a CMS export that exists but cannot be used.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("content source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// FileSource is a CMS export stored as YAML on disk.
type FileSource struct {
	path string
	data *GlobalData
}

// LoadFile reads a YAML CMS export. A missing file yields an empty source,
// matching a site whose CMS has no published entries yet.
func LoadFile(path string) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileSource{path: path, data: &GlobalData{}}, nil
		}
		return nil, &SourceError{Path: path, Err: fmt.Errorf("read: %w", err)}
	}

	data, err := Parse(raw)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	return &FileSource{path: path, data: data}, nil
}

// Parse decodes a YAML CMS export.
func Parse(raw []byte) (*GlobalData, error) {
	var data GlobalData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &data, nil
}

// GlobalData implements Source.
func (f *FileSource) GlobalData() *GlobalData {
	return f.data
}

// Path returns the file the source was loaded from.
func (f *FileSource) Path() string {
	return f.path
}
