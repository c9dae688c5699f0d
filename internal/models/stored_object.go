package models

import (
	"github.com/google/uuid"
)

// PlaceholderContent is written into every object created by the storage writer
const PlaceholderContent = "Hello, this is a new object created by executeScheduledTask lambda."

// Messages returned by the storage writer
const (
	ObjectCreatedMessage = "Object created successfully in S3."
	ObjectFailedMessage  = "Failed to create object in S3."
)

// StoredObject is a blob written to the object store
type StoredObject struct {
	Key         string
	Content     []byte
	ContentType string
}

// NewPlaceholderObject returns the fixed placeholder blob under a new random key
func NewPlaceholderObject() *StoredObject {
	return &StoredObject{
		Key:         uuid.New().String(),
		Content:     []byte(PlaceholderContent),
		ContentType: "text/plain",
	}
}

// MessageResponse is the success body of the storage writer
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure body of the storage writer
type ErrorResponse struct {
	Error string `json:"error"`
}
