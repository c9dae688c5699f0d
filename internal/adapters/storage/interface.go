package storage

import (
	"context"
)

// PutOptions provides options for storing objects
type PutOptions struct {
	ContentType string `json:"content_type,omitempty"`
}

// ObjectStorage abstracts the blob store written by the storage writer.
// Implementations must not leave a partially written object behind when
// Put fails.
type ObjectStorage interface {
	// Put writes data under key, replacing any existing object
	Put(ctx context.Context, key string, data []byte, opts *PutOptions) error

	// Exists checks if an object exists at the given key
	Exists(ctx context.Context, key string) (bool, error)

	// Bucket names the bucket or directory objects are written to
	Bucket() string

	// Close cleans up any resources used by the storage implementation
	Close() error
}

// StorageConfig represents configuration for storage providers
type StorageConfig struct {
	Type     string `json:"type" yaml:"type"`           // "s3", "local" or "mock"
	BasePath string `json:"base_path" yaml:"base_path"` // For local storage
	Bucket   string `json:"bucket" yaml:"bucket"`
}
