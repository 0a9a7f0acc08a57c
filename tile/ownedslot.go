package tile

// OwnedSlot is a future-like handle for a value that is, at any instant,
// either sitting in the slot or held by whichever worker is currently
// processing it (spec.md §3, §9). It is implemented as a buffered channel
// of capacity 1: the channel holding a value IS the "full" state; the
// channel being empty IS the "awaiting" state, since whoever drained it
// is expected to Release it back once done.
//
// OwnedSlot enforces per-tile serialization for free: Acquire blocks if
// the tile is currently checked out, so two operations on the same tile
// can never run concurrently, and they complete in the order they called
// Acquire (spec.md §5 ordering guarantee).
type OwnedSlot[T any] struct {
	ch chan T
}

// NewOwnedSlot creates a slot that starts full, holding v.
func NewOwnedSlot[T any](v T) *OwnedSlot[T] {
	s := &OwnedSlot[T]{ch: make(chan T, 1)}
	s.ch <- v
	return s
}

// Acquire blocks until the slot is full, then takes exclusive ownership
// of its value, leaving the slot empty ("awaiting") until Release.
func (s *OwnedSlot[T]) Acquire() T {
	return <-s.ch
}

// Release returns v to the slot, making it full again and unblocking the
// next Acquire.
func (s *OwnedSlot[T]) Release(v T) {
	s.ch <- v
}

// Flush blocks until any in-flight operation on this slot completes, then
// immediately restores the value — leaving the slot full, as required by
// spec.md §4.6's flush() contract.
func (s *OwnedSlot[T]) Flush() {
	v := s.Acquire()
	s.Release(v)
}
