package directory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// PathProvider is asked for another file when the requested one cannot be loaded.
type PathProvider interface {
	FallbackPath(failed string, cause error) (string, error)
}

// Save writes dir to path as indented JSON, creating missing parent directories.
// The file is replaced in one step, so a failed save keeps the previous file.
func Save(dir Directory, path string) error {
	if dir == nil {
		dir = Directory{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(dir, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Load reads a directory saved by Save.
func Load(path string) (Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, &FormatError{Path: path, Err: errors.New("expected a list of majors")}
	}

	var dir Directory
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dir); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &FormatError{Path: path, Err: errors.New("unexpected content after the list of majors")}
	}

	for i, m := range dir {
		if m.Abbr == "" {
			return nil, &FormatError{Path: path, Err: fmt.Errorf("major #%d has no abbreviation", i+1)}
		}
		for j, c := range m.Courses {
			if c.Code == "" {
				return nil, &FormatError{Path: path, Err: fmt.Errorf("course #%d of %s has no code", j+1, m.Abbr)}
			}
		}
	}

	return dir, nil
}

// LoadWithFallback loads path. If that fails because the file is missing or
// malformed and provider is set, it asks provider once for another path and
// loads that instead. It returns the path the directory was read from.
func LoadWithFallback(path string, provider PathProvider) (Directory, string, error) {
	dir, err := Load(path)
	if err == nil || provider == nil {
		return dir, path, err
	}

	var notFound *NotFoundError
	var badFormat *FormatError
	if !errors.As(err, &notFound) && !errors.As(err, &badFormat) {
		return nil, path, err
	}

	alt, perr := provider.FallbackPath(path, err)
	if perr != nil {
		return nil, path, fmt.Errorf("%w (no alternative path: %v)", err, perr)
	}

	dir, err = Load(alt)
	return dir, alt, err
}

// Age returns how long ago the file at path was last written.
func Age(path string) (time.Duration, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, &NotFoundError{Path: path, Err: err}
		}
		return 0, err
	}
	return time.Since(info.ModTime()), nil
}
