package objectstore

import "errors"

var (
	// ErrObjectStoreFault is returned (wrapped) for any storage backend
	// failure, including timeouts. Reported to API callers as an
	// infrastructure fault, never with backend details.
	ErrObjectStoreFault = errors.New("object storage fault")

	// ErrObjectNotFound is returned when a download targets a key that does
	// not exist in the bucket.
	ErrObjectNotFound = errors.New("object does not exist")
)
