package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStore writes blobs into a directory on the server. Locators are the
// static route paths gin serves that directory from, so what the backend
// returns resolves in a browser without translation.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates a local backend rooted at dir. urlPrefix must match
// the route the server exposes dir under.
func NewLocalStore(dir, urlPrefix string) *LocalStore {
	return &LocalStore{
		dir:       dir,
		urlPrefix: urlPrefix,
	}
}

// Store writes the stream under the given name, creating the directory on
// first use. An existing file under the same name is overwritten.
func (s *LocalStore) Store(_ context.Context, file io.Reader, name, _ string) (string, string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", "", fmt.Errorf("fail to create storage directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", "", fmt.Errorf("fail to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", "", fmt.Errorf("fail to write file: %w", err)
	}

	return path.Join(s.urlPrefix, name), "", nil
}

// Delete removes the file a locator points at. A file that is already gone is
// not an error; the row can outlive the blob when the directory was wiped
// between deployments.
func (s *LocalStore) Delete(_ context.Context, locator, _ string) error {
	if err := os.Remove(filepath.Join(s.dir, path.Base(locator))); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
