// Package profile persists waveforms as named JSON profiles, one file
// per name under a single directory.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anekos/irmagi/signal"
)

const fileExt = ".json"

// NotFoundError indicates that no profile with the given name exists.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// Store maps profile names to JSON documents on disk. The document
// shape is the waveform wire shape: {"scale": <int>, "data": [[int,...], ...]}.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the waveform under the given name and returns the file
// location.
func (s *Store) Save(name string, w *signal.Waveform) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	data, err := json.Marshal(w)
	if err != nil {
		return "", err
	}

	path := s.path(name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads the waveform stored under the given name.
func (s *Store) Load(name string) (*signal.Waveform, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, &NotFoundError{Name: name}
	}
	if err != nil {
		return nil, err
	}

	var w signal.Waveform
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return &w, nil
}

// List returns the stored profile names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes the profile stored under the given name.
func (s *Store) Remove(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return &NotFoundError{Name: name}
	}
	return err
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// validateName rejects names that would escape the store directory or
// hide files.
func validateName(name string) error {
	if name == "" {
		return errors.New("profile name cannot be empty")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid profile name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("invalid profile name %q", name)
	}
	return nil
}
