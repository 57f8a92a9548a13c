// Package blobstore abstracts where uploaded images live. Backends are
// selected at startup; all of them move whole buffers, no streaming.
package blobstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blob not found")

// Blob is a stored object together with the upload metadata needed to
// serve it back.
type Blob struct {
	Data        []byte
	Filename    string
	ContentType string
}

type Store interface {
	// Put stores the blob and returns its store-assigned id.
	Put(ctx context.Context, data []byte, filename, contentType string) (string, error)
	// Get returns ErrNotFound for unknown or malformed ids.
	Get(ctx context.Context, id string) (*Blob, error)
	Delete(ctx context.Context, id string) error
}
