package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %s", err)
	}

	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %s", err)
	}
	return data, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func (s *Storage) HasFile(fn string) bool {
	if fileExists(fn) {
		return true
	}
	return false
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %s", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}

// WriteResult marshals a result document into outputDir/<name>.<ext>,
// creating the directory if needed. Returns the path written.
func (s *Storage) WriteResult(outputDir, name, format string, result any) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %s", err)
	}

	var data []byte
	var ext string
	var err error
	switch format {
	case FormatYAML:
		ext = ".yaml"
		data, err = marshalYAML(result)
	case FormatJSON, "":
		ext = ".json"
		data, err = json.MarshalIndent(result, "", "  ")
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("error marshaling result: %s", err)
	}

	outPath := filepath.Join(outputDir, name+ext)
	if err := s.SaveFile(outPath, data); err != nil {
		return "", err
	}
	return outPath, nil
}

// marshalYAML round-trips through JSON so both formats share the same
// key names from the struct json tags.
func marshalYAML(result any) ([]byte, error) {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
