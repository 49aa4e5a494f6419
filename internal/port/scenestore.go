package port

import "molscene/internal/domain"

// SceneStore caches built scenes keyed by source file path, so batch
// runs can skip files whose modification time has not advanced.
type SceneStore interface {
	Put(path string, modTime int64, s *domain.Scene) error

	// Get returns the cached scene and its source modification time.
	// The bool is false when the path has no cache entry.
	Get(path string) (*domain.Scene, int64, bool, error)

	Delete(path string) error

	Close() error
}
