package blockview

import "iter"

// View is the capability shared by every node of a view hierarchy: a logical
// multi-dimensional array of a fixed element type with known extents.
//
// At and Set take one coordinate per dimension. Coordinates outside Shape() are a
// contract violation. Set must target a cell backed by real storage; writing to a
// region which resolves to the default value is a contract violation as well.
//
// Values iterates over the non-default entries only. Each entry is tagged with its
// row-major position within Shape() (see Ravel/Unravel). Every call to Values
// returns a fresh sequence, i.e. iteration is restartable.
type View[T any] interface {
	Rank() int
	Shape() []int
	At(idx ...int) T
	Set(value T, idx ...int)
	Values() iter.Seq2[int, T]
}

// Composite is a view which is stitched together from sub-views.
type Composite[T any] interface {
	View[T]
	Children() []View[T]
}

// Entry is a non-default entry of a view, together with its flattened position.
type Entry[T any] struct {
	Pos   int
	Value T
}

// Collect drains the values of a view into a slice of entries.
func Collect[T any](v View[T]) []Entry[T] {
	var entries []Entry[T]
	for pos, value := range v.Values() {
		entries = append(entries, Entry[T]{Pos: pos, Value: value})
	}
	return entries
}

// Count returns the number of non-default entries of a view.
func Count[T any](v View[T]) int {
	n := 0
	for range v.Values() {
		n++
	}
	return n
}
