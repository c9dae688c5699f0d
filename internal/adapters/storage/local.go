package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalObjectStorage implements ObjectStorage on the local filesystem.
// Objects live under <basePath>/<bucket>/<key>.
type LocalObjectStorage struct {
	basePath string
	bucket   string
}

// NewLocalObjectStorage creates a new LocalObjectStorage instance
func NewLocalObjectStorage(basePath, bucket string) (*LocalObjectStorage, error) {
	if bucket == "" {
		return nil, NewStorageError("NewLocalObjectStorage", "", fmt.Errorf("bucket is required"))
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, NewStorageError("NewLocalObjectStorage", "", err)
	}

	if err := os.MkdirAll(filepath.Join(absPath, bucket), 0755); err != nil {
		return nil, NewStorageError("NewLocalObjectStorage", "", err)
	}

	return &LocalObjectStorage{
		basePath: absPath,
		bucket:   bucket,
	}, nil
}

// Put writes to a temp file in the target directory and renames it into
// place, so a failed write never leaves a visible object.
func (l *LocalObjectStorage) Put(ctx context.Context, key string, data []byte, _ *PutOptions) error {
	if err := l.validateKey(key); err != nil {
		return NewStorageError("Put", key, err)
	}

	if err := ctx.Err(); err != nil {
		return NewStorageError("Put", key, err)
	}

	filePath := l.getFilePath(key)
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewStorageError("Put", key, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return NewStorageError("Put", key, err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return NewStorageError("Put", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return NewStorageError("Put", key, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return NewStorageError("Put", key, err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		os.Remove(tempPath)
		return NewStorageError("Put", key, err)
	}

	return nil
}

// Exists implements ObjectStorage.Exists
func (l *LocalObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	if err := l.validateKey(key); err != nil {
		return false, NewStorageError("Exists", key, err)
	}

	_, err := os.Stat(l.getFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, NewStorageError("Exists", key, err)
	}

	return true, nil
}

// Bucket implements ObjectStorage.Bucket
func (l *LocalObjectStorage) Bucket() string {
	return l.bucket
}

// Close implements ObjectStorage.Close
func (l *LocalObjectStorage) Close() error {
	// No resources to clean up for local storage
	return nil
}

// Helper methods

func (l *LocalObjectStorage) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	// Prevent directory traversal attacks
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}

	return nil
}

func (l *LocalObjectStorage) getFilePath(key string) string {
	return filepath.Join(l.basePath, l.bucket, filepath.FromSlash(key))
}
