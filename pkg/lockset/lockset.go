// Package lockset provides keyed mutexes with ordered multi-key acquisition.
package lockset

import (
	"sort"
	"sync"
)

type Set struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Set {
	return &Set{
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Set) get(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// Lock acquires the mutexes for all keys in lexicographic order, so two
// callers locking overlapping key sets can never deadlock. Duplicate keys
// are collapsed. The returned func releases in reverse order.
func (s *Set) Lock(keys ...string) func() {
	uniq := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, key)
	}
	sort.Strings(uniq)

	locked := make([]*sync.Mutex, 0, len(uniq))
	for _, key := range uniq {
		lock := s.get(key)
		lock.Lock()
		locked = append(locked, lock)
	}

	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}
