package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"molscene/internal/domain"
)

var bucketScenes = []byte("scenes")

// BoltStore is the on-disk scene cache used by batch builds. Entries
// are keyed by a hash of the source file path and carry the source
// modification time so unchanged files can be skipped.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketScenes); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketScenes, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type sceneEntry struct {
	Path    string        `json:"path"`
	ModTime int64         `json:"mod_time"`
	Scene   *domain.Scene `json:"scene"`
}

func (s *BoltStore) Put(path string, modTime int64, scene *domain.Scene) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		entry := sceneEntry{
			Path:    path,
			ModTime: modTime,
			Scene:   scene,
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketScenes).Put(keyFor(path), data)
	})
}

func (s *BoltStore) Get(path string) (*domain.Scene, int64, bool, error) {
	var entry sceneEntry
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketScenes).Get(keyFor(path))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return nil, 0, false, err
	}
	return entry.Scene, entry.ModTime, true, nil
}

func (s *BoltStore) Delete(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketScenes).Delete(keyFor(path))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func keyFor(path string) []byte {
	sum := sha256.Sum256([]byte(path))
	return []byte(hex.EncodeToString(sum[:]))
}
