package storage

import (
	"context"
	"io"
)

// ObjectStorage is the binary object-store collaborator used for payment
// proof images: put bytes under (bucket, key), get back a public URL.
type ObjectStorage interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, bucket, key, contentType string, r io.Reader) (string, error)

	// Delete removes an object. Missing objects are not an error.
	Delete(ctx context.Context, bucket, key string) error

	// Open reads an object back. Only the local backend serves reads; the
	// cloud backend exposes objects through their public URLs.
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}
