// Package objectstore adapts an S3-compatible blob store for attachment
// uploads (avatars, logos, certificates, banners). Every call is bounded by
// the configured request timeout so that a stalled storage backend surfaces
// as a storage fault instead of hanging the request.
package objectstore

import "context"

// ObjectStore is the port the lifecycle services use to manage attachment
// blobs. Upload returns the public location reference for the stored object.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, key string) error
}
