package list

// Element is a node of a List.
type Element[T any] struct {
	prev, next *Element[T]
	list       *List[T]

	Value T
}

// Next returns the element behind e, or nil if e is the last one.
func (e *Element[T]) Next() *Element[T] {
	if e.list == nil || e.next == &e.list.root {
		return nil
	}
	return e.next
}

// Prev returns the element ahead of e, or nil if e is the first one.
func (e *Element[T]) Prev() *Element[T] {
	if e.list == nil || e.prev == &e.list.root {
		return nil
	}
	return e.prev
}

// List is a generic doubly linked list with a sentinel root, modeled after container/list.
// It only carries the operations an ordered queue needs.
type List[T any] struct {
	root Element[T]
	len  int
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	l := &List[T]{}
	return l.Init()
}

// Init clears l.
func (l *List[T]) Init() *List[T] {
	l.root = Element[T]{}
	l.root.prev = &l.root
	l.root.next = &l.root
	l.len = 0
	return l
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first element, or nil if l is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element, or nil if l is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushFront inserts value at the front of l and returns its element.
func (l *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value, list: l}
	l.link(e, &l.root)
	l.len++
	return e
}

// MoveToFront moves e to the front of l. e must belong to l.
func (l *List[T]) MoveToFront(e *Element[T]) {
	if e.list != l || l.root.next == e {
		return
	}
	l.unlink(e)
	l.link(e, &l.root)
}

// Remove unlinks e from l and returns its value. e must belong to l.
func (l *List[T]) Remove(e *Element[T]) T {
	if e.list == l {
		l.unlink(e)
		e.next = nil
		e.prev = nil
		e.list = nil
		l.len--
	}
	return e.Value
}

// link inserts e right after at.
func (l *List[T]) link(e, at *Element[T]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

func (l *List[T]) unlink(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}
