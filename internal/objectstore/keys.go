package objectstore

import (
	"strconv"
	"time"
)

// StorageKey derives a fresh object key from the current time and a
// field-specific suffix, e.g. "18c3f2a7b40logo". Millisecond timestamps keep
// replacement keys unique per upload without coordination.
func StorageKey(suffix string) string {
	return strconv.FormatInt(time.Now().UnixMilli(), 16) + suffix
}
