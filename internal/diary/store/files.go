package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AdityaZala3919/mini-services/internal/diary/domain"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
)

const exportFilename = "diary_2026.txt"

// FileStore keeps one <date>.json document per diary day.
type FileStore struct {
	dataDir string
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) entryPath(date string) string {
	return filepath.Join(s.dataDir, date+".json")
}

// Write saves the entry, overwriting any previous document for the
// same date, and returns the file path.
func (s *FileStore) Write(entry *domain.Entry) (string, error) {
	raw, err := json.MarshalIndent(entry, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode entry: %w", err)
	}

	path := s.entryPath(entry.Date)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write entry: %w", err)
	}

	return path, nil
}

func (s *FileStore) Read(date string) (*domain.Entry, error) {
	raw, err := os.ReadFile(s.entryPath(date))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to read entry: %w", err)
	}

	var entry domain.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}

	return &entry, nil
}

// ExportText concatenates every stored entry, in filename order, into
// a single plain-text file under exportDir and returns its path.
func (s *FileStore) ExportText(exportDir string) (string, error) {
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	names, err := s.entryFilenames()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	banner := strings.Repeat("=", 45)

	for _, name := range names {
		entry, err := s.Read(strings.TrimSuffix(name, ".json"))
		if err != nil {
			return "", err
		}

		out.WriteString(banner + "\n")
		fmt.Fprintf(&out, "Date: %s (%s)\n", entry.Date, entry.Day)
		out.WriteString(banner + "\n")

		text := entry.Text
		if text == "" {
			text = "No work"
		}
		todo := entry.Todo
		if todo == "" {
			todo = "None"
		}

		out.WriteString(text + "\n\n")
		fmt.Fprintf(&out, "To-Do: %s\n\n", todo)
	}

	exportPath := filepath.Join(exportDir, exportFilename)
	if err := os.WriteFile(exportPath, []byte(out.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return exportPath, nil
}

func (s *FileStore) entryFilenames() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	// os.ReadDir returns names sorted, matching the export order.
	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		names = append(names, de.Name())
	}

	return names, nil
}
