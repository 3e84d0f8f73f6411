package list

import (
	"fmt"
	"iter"
	"strings"
)

// List is a singly linked list. The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
//
// Elements are compared with ==, so Find and Contains use value equality
// for value types and identity for pointers.
type List[T comparable] struct {
	head, tail *Node[T]
	size       int
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in O(1).
func (l *List[T]) Len() int {
	return l.size
}

// Front returns the first node, or nil if l is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node, or nil if l is empty.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

func (l *List[T]) Append(v T) *List[T] {
	n := &Node[T]{Value: v}

	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		mustf(l.tail != nil, "tail of a non-empty list is nil")
		l.tail.next = n
		l.tail = n
	}

	l.size++
	return l
}

func (l *List[T]) Prepend(v T) *List[T] {
	n := &Node[T]{Value: v, next: l.head}

	l.head = n
	if l.tail == nil {
		l.tail = n
	}

	l.size++
	return l
}

// Pop removes the last element and returns it. ok is false if l is empty.
// Pop walks from head to find the new tail, so it costs O(n).
func (l *List[T]) Pop() (v T, ok bool) {
	if l.head == nil {
		return
	}

	popped := l.tail
	mustf(popped != nil, "tail of a non-empty list is nil")

	if l.head == popped {
		l.head = nil
		l.tail = nil
	} else {
		prev := l.head
		for prev.next != nil && prev.next != popped {
			prev = prev.next
		}
		mustf(prev.next == popped, "tail is not reachable from head")

		prev.next = nil
		l.tail = prev
	}

	l.size--
	return popped.Value, true
}

// InsertAt inserts v so that it becomes the element at index i.
// It does nothing if i is out of [0, l.Len()].
func (l *List[T]) InsertAt(i int, v T) *List[T] {
	if i < 0 || i > l.size {
		return l
	}

	switch i {
	case 0:
		return l.Prepend(v)
	case l.size:
		return l.Append(v)
	}

	prev := l.nodeAt(i - 1)
	mustf(prev != nil && prev.next != nil, "node at %d and its successor should be defined", i-1)

	prev.next = &Node[T]{Value: v, next: prev.next}
	l.size++
	return l
}

// RemoveAt removes the element at index i and returns it.
// ok is false, and l is unchanged, if i is out of [0, l.Len()-1].
func (l *List[T]) RemoveAt(i int) (v T, ok bool) {
	if i < 0 || i >= l.size {
		return
	}

	var removed *Node[T]
	if i == 0 {
		removed = l.head
		l.head = removed.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.nodeAt(i - 1)
		mustf(prev != nil && prev.next != nil, "node at %d and its successor should be defined", i-1)

		removed = prev.next
		prev.next = removed.next
		if removed == l.tail {
			l.tail = prev
		}
	}

	removed.next = nil
	l.size--
	return removed.Value, true
}

// At returns the node at index i. The node stays owned by l; callers may
// change its Value but must not keep it past a removal.
func (l *List[T]) At(i int) (*Node[T], bool) {
	if i < 0 || i >= l.size {
		return nil, false
	}
	return l.nodeAt(i), true
}

// Find returns the index of the first element equal to v.
func (l *List[T]) Find(v T) (int, bool) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			return i, true
		}
		i++
	}
	return -1, false
}

func (l *List[T]) Contains(v T) bool {
	_, ok := l.Find(v)
	return ok
}

// All iterates over index/value pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}

func (l *List[T]) Values() []T {
	s := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.Value)
	}
	return s
}

// String renders the chain as "( v ) -> " per element followed by "<end>".
func (l *List[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&b, "( %v ) -> ", n.Value)
	}
	b.WriteString(EndMarker)
	return b.String()
}

// EndMarker terminates the String rendering.
const EndMarker = "<end>"

// nodeAt expects 0 <= i < l.size.
func (l *List[T]) nodeAt(i int) *Node[T] {
	switch i {
	case 0:
		return l.head
	case l.size - 1:
		return l.tail
	}

	n := l.head
	for j := 0; j < i; j++ {
		mustf(n != nil, "node at %d should be defined", j)
		n = n.next
	}
	return n
}

// mustf panics when an internal invariant does not hold. Reaching it means
// the chain is corrupted, so there is nothing safe to recover to.
func mustf(cond bool, format string, args ...any) {
	if !cond {
		panic("list: " + fmt.Sprintf(format, args...))
	}
}
