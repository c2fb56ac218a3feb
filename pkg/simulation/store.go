package simulation

import (
	"errors"
	"iter"
)

// ErrEmptyStore is the panic value of Head on an empty store.
var ErrEmptyStore = errors.New("head of an empty store")

// Store keeps values in insertion order. It is not safe for concurrent use,
// the WorldActor is its only writer.
type Store[T any] struct {
	items []T
}

func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{items: make([]T, 0, capacity)}
}

func (s *Store[T]) Add(v T) {
	s.items = append(s.items, v)
}

// Remove deletes the value at index i, keeping the order of the others.
func (s *Store[T]) Remove(i int) {
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
}

// Retain keeps the values for which keep returns true, in place.
func (s *Store[T]) Retain(keep func(T) bool) {
	n := 0
	for _, v := range s.items {
		if keep(v) {
			s.items[n] = v
			n++
		}
	}
	var zero T
	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:n]
}

// All iterates over index and value in insertion order.
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s *Store[T]) At(i int) T {
	return s.items[i]
}

func (s *Store[T]) Len() int {
	return len(s.items)
}

// Head returns the oldest value. Calling it on an empty store is a programming error.
func (s *Store[T]) Head() T {
	if len(s.items) == 0 {
		panic(ErrEmptyStore)
	}
	return s.items[0]
}
