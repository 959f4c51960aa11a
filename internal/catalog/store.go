package catalog

import (
	"sync/atomic"
	"time"
)

// Snapshot is a catalog together with where and when it was loaded.
type Snapshot struct {
	Catalog  *Catalog
	Source   string
	LoadedAt time.Time
}

// Store publishes the current snapshot to concurrent readers.
// Swaps are atomic; a reader sees either the old or the new catalog, never a mix.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store already holding snap.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	if snap != nil {
		s.current.Store(snap)
	}
	return s
}

// Snapshot returns the live snapshot, or nil before the first load.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Current returns the live catalog.
func (s *Store) Current() (*Catalog, error) {
	snap := s.current.Load()
	if snap == nil || snap.Catalog == nil {
		return nil, ErrNotLoaded
	}
	return snap.Catalog, nil
}

// Swap installs next and returns the snapshot it replaced.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	return s.current.Swap(next)
}
