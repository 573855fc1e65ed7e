package twoq

import (
	"github.com/motoki317/twoq/internal/queue"
)

// Policy is a fixed size 2Q cache.
// Every key lives in at most one of the in, out and main queues.
//
// Policy is not safe for concurrent use. Callers must serialize access to Get, GetOr,
// Set, Peek and Size, for example by using Synced.
type Policy[K comparable, V any] struct {
	in   *queue.Queue[K, V] // FIFO of newly admitted keys
	out  *queue.Queue[K, V] // FIFO of keys displaced from in
	main *queue.Queue[K, V] // LRU of promoted keys
}

// New creates a Policy with the given queue capacities.
// A zero capacity is allowed: such a queue never holds an entry.
func New[K comparable, V any](inCapacity, outCapacity, mainCapacity int) (*Policy[K, V], error) {
	if inCapacity < 0 {
		return nil, negativeCapacityError("in", inCapacity)
	}
	if outCapacity < 0 {
		return nil, negativeCapacityError("out", outCapacity)
	}
	if mainCapacity < 0 {
		return nil, negativeCapacityError("main", mainCapacity)
	}

	return &Policy[K, V]{
		in:   queue.New[K, V](inCapacity),
		out:  queue.New[K, V](outCapacity),
		main: queue.New[K, V](mainCapacity),
	}, nil
}

// NewWithSize creates a Policy holding at most size entries,
// split between the queues according to options.
func NewWithSize[K comparable, V any](size int, options ...Option) (*Policy[K, V], error) {
	if size < 0 {
		return nil, negativeCapacityError("total", size)
	}

	c := defaultConfig()
	for _, option := range options {
		option(&c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	in, out, main := c.split(size)
	return New[K, V](in, out, main)
}

// Get looks up a key's value.
// A hit in main marks the key as most recently used, and a hit in out promotes the key to main.
// A hit in in returns the value without touching the queues.
func (p *Policy[K, V]) Get(key K) (value V, ok bool) {
	if value, ok = p.main.Get(key); ok {
		return
	}

	if value, ok = p.out.Remove(key); ok {
		p.promote(key, value)
		return
	}

	// A second reference shortly after admission is likely correlated,
	// so in stays a FIFO.
	return p.in.Peek(key)
}

// GetOr is like Get, but returns def if the key is not cached.
func (p *Policy[K, V]) GetOr(key K, def V) V {
	if value, ok := p.Get(key); ok {
		return value
	}
	return def
}

// Peek looks up a key's value without reordering or promoting it.
func (p *Policy[K, V]) Peek(key K) (value V, ok bool) {
	if value, ok = p.main.Peek(key); ok {
		return
	}
	if value, ok = p.out.Peek(key); ok {
		return
	}
	return p.in.Peek(key)
}

// Set adds or updates a key's value.
// Updating a key in out promotes it to main, the same as a Get would.
// A new key is admitted to in, pushing the oldest in entry to out when in is full.
func (p *Policy[K, V]) Set(key K, value V) {
	if p.main.Touch(key, value) {
		return
	}

	if _, ok := p.out.Remove(key); ok {
		p.promote(key, value)
		return
	}

	if p.in.Update(key, value) {
		return
	}

	p.admit(key, value)
}

// Size returns the number of cached entries.
func (p *Policy[K, V]) Size() int {
	return p.in.Len() + p.out.Len() + p.main.Len()
}

// Capacity returns the maximum number of entries the policy can hold.
func (p *Policy[K, V]) Capacity() int {
	return p.in.Cap() + p.out.Cap() + p.main.Cap()
}

// promote moves an entry already removed from out to the front of main.
func (p *Policy[K, V]) promote(key K, value V) {
	pushFront(p.main, key, value)
}

// admit inserts a key not present in any queue.
func (p *Policy[K, V]) admit(key K, value V) {
	if p.in.Cap() == 0 {
		pushFront(p.out, key, value)
		return
	}

	if p.in.Full() {
		k, v, _ := p.in.RemoveBack()
		pushFront(p.out, k, v)
	}
	p.in.PushFront(key, value)
}

// pushFront inserts the entry at the front of q, discarding the oldest entry of q first if q is full.
// The entry itself is discarded if q has zero capacity.
func pushFront[K comparable, V any](q *queue.Queue[K, V], key K, value V) {
	if q.Cap() == 0 {
		return
	}
	if q.Full() {
		q.RemoveBack()
	}
	q.PushFront(key, value)
}
