package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps objects on the local filesystem and serves them back
// through the API server's /files endpoint. This is the development stand-in
// for the hosted bucket.
type LocalStorage struct {
	baseURL string // server base URL, e.g. "http://localhost:8080"
	rootDir string // local directory for objects, e.g. "./uploads"
}

func NewLocalStorage(baseURL, rootDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		rootDir: rootDir,
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, bucket, key, contentType string, r io.Reader) (string, error) {
	fullPath, err := s.objectPath(bucket, key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create bucket directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create object file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	return fmt.Sprintf("%s/files/%s/%s", s.baseURL, bucket, key), nil
}

func (s *LocalStorage) Delete(ctx context.Context, bucket, key string) error {
	fullPath, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	fullPath, err := s.objectPath(bucket, key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	return file, nil
}

// objectPath rejects path traversal in bucket or key.
func (s *LocalStorage) objectPath(bucket, key string) (string, error) {
	full := filepath.Join(s.rootDir, bucket, key)
	root := filepath.Clean(s.rootDir) + string(os.PathSeparator)
	if !strings.HasPrefix(filepath.Clean(full), strings.TrimSuffix(root, string(os.PathSeparator))) {
		return "", fmt.Errorf("invalid object path %q/%q", bucket, key)
	}
	if strings.Contains(bucket, "..") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object path %q/%q", bucket, key)
	}
	return full, nil
}
