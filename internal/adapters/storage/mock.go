package storage

import (
	"context"
	"sync"
)

// MockObjectStorage is an in-memory implementation of ObjectStorage for
// testing. Setting FailWith makes every Put and Exists fail without
// touching stored objects.
type MockObjectStorage struct {
	mu       sync.RWMutex
	bucket   string
	objects  map[string]*mockObject
	FailWith error
}

type mockObject struct {
	data        []byte
	contentType string
}

// NewMockObjectStorage creates a new MockObjectStorage instance
func NewMockObjectStorage(bucket string) *MockObjectStorage {
	return &MockObjectStorage{
		bucket:  bucket,
		objects: make(map[string]*mockObject),
	}
}

// Put implements ObjectStorage.Put
func (m *MockObjectStorage) Put(ctx context.Context, key string, data []byte, opts *PutOptions) error {
	if key == "" {
		return NewStorageError("Put", key, ErrInvalidKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return NewStorageError("Put", key, m.FailWith)
	}

	obj := &mockObject{
		data:        append([]byte(nil), data...),
		contentType: "application/octet-stream",
	}
	if opts != nil && opts.ContentType != "" {
		obj.contentType = opts.ContentType
	}

	m.objects[key] = obj
	return nil
}

// Exists implements ObjectStorage.Exists
func (m *MockObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, NewStorageError("Exists", key, ErrInvalidKey)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailWith != nil {
		return false, NewStorageError("Exists", key, m.FailWith)
	}

	_, exists := m.objects[key]
	return exists, nil
}

// Get returns a copy of a stored object's content
func (m *MockObjectStorage) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, exists := m.objects[key]
	if !exists {
		return nil, false
	}
	return append([]byte(nil), obj.data...), true
}

// ContentType returns the content type recorded for key
func (m *MockObjectStorage) ContentType(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if obj, exists := m.objects[key]; exists {
		return obj.contentType
	}
	return ""
}

// Keys returns the keys of all stored objects
func (m *MockObjectStorage) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

// Bucket implements ObjectStorage.Bucket
func (m *MockObjectStorage) Bucket() string {
	return m.bucket
}

// Close implements ObjectStorage.Close
func (m *MockObjectStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects = make(map[string]*mockObject)
	return nil
}
