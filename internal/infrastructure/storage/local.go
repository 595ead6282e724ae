package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"greentracker-backend/pkg/id"
)

var ErrOutsideStore = errors.New("storage: link does not belong to this store")

// Local keeps uploaded evidence files in one directory served under URLPrefix.
type Local struct {
	Dir       string
	URLPrefix string
}

func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return &Local{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Save writes r under a fresh name keeping the extension of originalName and returns its link.
func (s *Local) Save(originalName string, r io.Reader) (string, error) {
	name := id.New() + strings.ToLower(filepath.Ext(originalName))
	f, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("storage: close file: %w", err)
	}
	return s.URL(name), nil
}

// Delete removes the file behind link. A file that is already gone is not an error.
func (s *Local) Delete(link string) error {
	name, err := s.NameFromURL(link)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", name, err)
	}
	return nil
}

func (s *Local) URL(name string) string { return s.URLPrefix + "/" + name }

func (s *Local) NameFromURL(link string) (string, error) {
	name, ok := strings.CutPrefix(link, s.URLPrefix+"/")
	if !ok || name == "" || path.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrOutsideStore, link)
	}
	return name, nil
}
