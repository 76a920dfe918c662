// Package storage keeps uploaded dikaiologitika on local disk, laid out as
// <root>/<user_id>/<document_type>/<file_name>.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// LocalStore stores document files under a root directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates the store and its root directory.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Save writes the file content and returns the stored path.
func (s *LocalStore) Save(userID uint, docType, fileName string, content io.Reader) (string, error) {
	dir := filepath.Join(s.root, strconv.FormatUint(uint64(userID), 10), docType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating document directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(fileName))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating document file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing document file: %w", err)
	}

	return path, nil
}

// Open opens a stored file for reading.
func (s *LocalStore) Open(path string) (*os.File, error) {
	return os.Open(path)
}

// Remove deletes a stored file. A missing file is not an error; the database
// row is the source of truth.
func (s *LocalStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
