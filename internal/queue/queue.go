// Package queue implements a bounded, ordered key-value queue with O(1) access by key.
// The front holds the most recently touched entry and the back holds the oldest one.
package queue

import (
	"github.com/motoki317/twoq/internal/list"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Queue is an ordered key-value queue indexed by a hash map.
//
// Capacity is informational: Queue never evicts on its own, callers check Full before inserting.
type Queue[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element[entry[K, V]]
	ll       *list.List[entry[K, V]]
}

// New creates an empty queue with the given capacity.
func New[K comparable, V any](capacity int) *Queue[K, V] {
	return &Queue[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element[entry[K, V]], capacity),
		ll:       list.NewList[entry[K, V]](),
	}
}

// Len returns the number of entries.
func (q *Queue[K, V]) Len() int {
	return q.ll.Len()
}

// Cap returns the capacity the queue was created with.
func (q *Queue[K, V]) Cap() int {
	return q.capacity
}

// Full reports whether the queue holds at least Cap entries.
func (q *Queue[K, V]) Full() bool {
	return q.ll.Len() >= q.capacity
}

// Contains reports whether key is in the queue.
func (q *Queue[K, V]) Contains(key K) bool {
	_, ok := q.items[key]
	return ok
}

// Peek returns the value for key without changing its position.
func (q *Queue[K, V]) Peek(key K) (value V, ok bool) {
	if e, ok := q.items[key]; ok {
		return e.Value.value, true
	}
	return
}

// Get returns the value for key and moves it to the front.
func (q *Queue[K, V]) Get(key K) (value V, ok bool) {
	if e, ok := q.items[key]; ok {
		q.ll.MoveToFront(e)
		return e.Value.value, true
	}
	return
}

// PushFront inserts the entry at the front.
// If key is already present, its value is replaced and it is moved to the front.
func (q *Queue[K, V]) PushFront(key K, value V) {
	if q.Touch(key, value) {
		return
	}
	q.items[key] = q.ll.PushFront(entry[K, V]{key: key, value: value})
}

// Touch replaces the value for key and moves it to the front.
// Returns false and does nothing if key is not present.
func (q *Queue[K, V]) Touch(key K, value V) bool {
	e, ok := q.items[key]
	if !ok {
		return false
	}
	e.Value.value = value
	q.ll.MoveToFront(e)
	return true
}

// Update replaces the value for key, keeping its position.
// Returns false and does nothing if key is not present.
func (q *Queue[K, V]) Update(key K, value V) bool {
	e, ok := q.items[key]
	if !ok {
		return false
	}
	e.Value.value = value
	return true
}

// Remove deletes key and returns its value.
func (q *Queue[K, V]) Remove(key K) (value V, ok bool) {
	e, ok := q.items[key]
	if !ok {
		return
	}
	delete(q.items, key)
	return q.ll.Remove(e).value, true
}

// RemoveBack deletes the oldest entry and returns it.
func (q *Queue[K, V]) RemoveBack() (key K, value V, ok bool) {
	e := q.ll.Back()
	if e == nil {
		return
	}
	delete(q.items, e.Value.key)
	ent := q.ll.Remove(e)
	return ent.key, ent.value, true
}

// Front returns the most recently touched entry.
func (q *Queue[K, V]) Front() (key K, value V, ok bool) {
	if e := q.ll.Front(); e != nil {
		return e.Value.key, e.Value.value, true
	}
	return
}

// Back returns the oldest entry.
func (q *Queue[K, V]) Back() (key K, value V, ok bool) {
	if e := q.ll.Back(); e != nil {
		return e.Value.key, e.Value.value, true
	}
	return
}

// Keys returns all keys ordered from front to back.
func (q *Queue[K, V]) Keys() []K {
	keys := make([]K, 0, q.ll.Len())
	for e := q.ll.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.key)
	}
	return keys
}
