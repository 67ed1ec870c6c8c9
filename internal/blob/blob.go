// Package blob stores rendered artifacts: CSV reports and backup documents.
// Drivers share one small contract so report generation never knows whether
// artifacts land on disk, in memory, or in an object bucket.
package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrNotFound reports a key with no stored object.
var ErrNotFound = errors.New("object not found")

// ErrInvalidKey reports a key that escapes the store's namespace.
var ErrInvalidKey = errors.New("invalid object key")

// ObjectInfo describes one stored artifact.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
	ModTime     time.Time
}

// Store is the artifact storage contract.
type Store interface {
	// Put stores body under key, replacing any prior object.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (ObjectInfo, error)
	// Get opens the object stored under key.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the object stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
	// List returns objects whose keys start with prefix, ordered by key.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	// Driver names the backing implementation.
	Driver() string
	// Close releases driver resources.
	Close() error
}

// validKey rejects empty keys and keys that could traverse outside the
// store's namespace.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
