// Package cache stores per-file scan results keyed by path and content
// digest, so unchanged files are never rescanned. A cache entry is only
// valid while the digest matches; editing a file invalidates it
// automatically.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/kotolint/kotolint/internal/domain"
)

// Entry is one cached scan result.
type Entry struct {
	ContentHash string         `json:"content_hash"`
	Issues      []domain.Issue `json:"issues"`
}

// Store is the persistence port for scan results. Get returns
// (entry, true) only when an entry exists for the path; the caller
// still compares ContentHash before trusting it.
type Store interface {
	Get(path string) (Entry, bool)
	Put(path string, entry Entry) error
	Close() error
}

// Digest returns the hex SHA-256 of content.
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
