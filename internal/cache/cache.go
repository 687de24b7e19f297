// Package cache stores raw extraction results keyed by document content,
// so re-running a batch does not repeat paid LLM calls for unchanged
// documents.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for extraction caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from document text. Content-addressed: the same
// document always maps to the same entry regardless of filename.
func Key(documentText string) string {
	hash := sha256.Sum256([]byte(documentText))
	return "fnolagent:v1:" + hex.EncodeToString(hash[:])
}
