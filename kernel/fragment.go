package kernel

import "github.com/gogpu/rastercore/interp"

// Fragment is the caller-supplied pure function from interpolated
// attributes to pixel color (spec.md GLOSSARY, §6). Implementations are
// shared read-only across worker goroutines; any interior-mutable state
// they hold must tolerate nondeterministic ordering across tiles (spec.md
// §5), since pixels from different tiles are produced concurrently.
type Fragment[A interp.Interpolator[A], P any] interface {
	Fragment(attrs A) P
}

// FragmentFunc adapts a plain function to the Fragment interface.
type FragmentFunc[A interp.Interpolator[A], P any] func(attrs A) P

// Fragment calls f(attrs).
func (f FragmentFunc[A, P]) Fragment(attrs A) P { return f(attrs) }
