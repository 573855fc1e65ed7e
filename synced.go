package twoq

import (
	"sync"
)

// Synced wraps a Policy with a lock.
// All methods are safe to be called from multiple goroutines.
type Synced[K comparable, V any] struct {
	mu sync.RWMutex // mu protects p
	p  *Policy[K, V]
}

// NewSynced wraps p. p must not be used directly afterwards.
func NewSynced[K comparable, V any](p *Policy[K, V]) *Synced[K, V] {
	return &Synced[K, V]{p: p}
}

// Get is the locked version of Policy.Get.
func (s *Synced[K, V]) Get(key K) (V, bool) {
	// Get may reorder or promote, so it needs the exclusive lock.
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Get(key)
}

// GetOr is the locked version of Policy.GetOr.
func (s *Synced[K, V]) GetOr(key K, def V) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.GetOr(key, def)
}

// Peek is the locked version of Policy.Peek.
func (s *Synced[K, V]) Peek(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.Peek(key)
}

// Set is the locked version of Policy.Set.
func (s *Synced[K, V]) Set(key K, value V) {
	s.mu.Lock()
	s.p.Set(key, value)
	s.mu.Unlock()
}

// Size is the locked version of Policy.Size.
func (s *Synced[K, V]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p.Size()
}
