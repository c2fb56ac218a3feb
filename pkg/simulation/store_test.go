package simulation

import (
	"errors"
	"slices"
	"testing"
)

func collect[T any](s *Store[T]) []T {
	var out []T
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}

func TestStore_AddRemove(t *testing.T) {
	s := NewStore[int](4)
	for i := 1; i <= 5; i++ {
		s.Add(i * 10)
	}
	if s.Len() != 5 {
		t.Fatalf("Len = %d; want 5", s.Len())
	}

	s.Remove(0)
	s.Remove(2) // removes 40
	want := []int{20, 30, 50}
	if got := collect(s); !slices.Equal(got, want) {
		t.Errorf("after Remove got %v; want %v", got, want)
	}
	if s.Head() != 20 {
		t.Errorf("Head = %d; want 20", s.Head())
	}
	if s.At(2) != 50 {
		t.Errorf("At(2) = %d; want 50", s.At(2))
	}
}

func TestStore_Retain(t *testing.T) {
	s := NewStore[int](0)
	for i := 0; i < 10; i++ {
		s.Add(i)
	}
	s.Retain(func(v int) bool { return v%3 == 0 })

	want := []int{0, 3, 6, 9}
	if got := collect(s); !slices.Equal(got, want) {
		t.Errorf("Retain got %v; want %v", got, want)
	}

	s.Retain(func(int) bool { return false })
	if s.Len() != 0 {
		t.Errorf("Len after dropping everything = %d; want 0", s.Len())
	}
}

func TestStore_AllStopsEarly(t *testing.T) {
	s := NewStore[string](0)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	var seen []string
	for i, v := range s.All() {
		seen = append(seen, v)
		if i == 1 {
			break
		}
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("seen %v; want [a b]", seen)
	}
}

func TestStore_HeadOnEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyStore) {
			t.Errorf("recovered %v; want ErrEmptyStore", r)
		}
	}()
	NewStore[int](0).Head()
}
