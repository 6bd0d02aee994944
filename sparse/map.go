package sparse

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/npillmayer/blockview"
	"github.com/pkg/errors"
)

// Map is a sparse N-dimensional view. Writing to a coordinate inserts an entry;
// reading a coordinate without an entry yields the default value.
type Map[T any] struct {
	def     *T
	shape   []int
	entries map[int]T
}

var _ blockview.View[int] = (*Map[int])(nil)

// New creates an empty sparse map of the given shape. def is the cell holding the
// default value.
func New[T any](def *T, shape ...int) (*Map[T], error) {
	if def == nil {
		return nil, errors.Wrap(blockview.ErrNoDefault, "sparse map")
	}
	if len(shape) == 0 {
		return nil, errors.Wrap(blockview.ErrShape, "sparse map without dimensions")
	}
	for d, ext := range shape {
		if ext <= 0 {
			return nil, errors.Wrapf(blockview.ErrShape, "sparse map has extent %d in dimension %d", ext, d)
		}
	}
	if _, ok := blockview.CheckedVolume(shape); !ok {
		return nil, errors.Wrapf(blockview.ErrShape, "sparse map %v has more cells than positions", shape)
	}
	tracer().Debugf("new sparse map %s", blockview.ShapeString(shape))
	return &Map[T]{
		def:     def,
		shape:   append([]int(nil), shape...),
		entries: make(map[int]T),
	}, nil
}

func (m *Map[T]) key(idx []int) int {
	if !blockview.Contains(m.shape, idx) {
		assertThat(false, "index %v out of range %v", append([]int(nil), idx...), m.shape)
	}
	return blockview.Ravel(m.shape, idx)
}

// Len returns the number of stored entries.
func (m *Map[T]) Len() int {
	return len(m.entries)
}

// Lookup returns the entry at idx and true, or the default value and false if
// there is no entry.
func (m *Map[T]) Lookup(idx ...int) (T, bool) {
	if v, ok := m.entries[m.key(idx)]; ok {
		return v, true
	}
	return *m.def, false
}

// Delete removes the entry at idx, if any. The coordinate reads as the default
// value afterwards.
func (m *Map[T]) Delete(idx ...int) {
	delete(m.entries, m.key(idx))
}

// Default returns the cell holding the default value.
func (m *Map[T]) Default() *T {
	return m.def
}

// --- View ------------------------------------------------------------------

// Rank returns the number of dimensions.
func (m *Map[T]) Rank() int {
	return len(m.shape)
}

// Shape returns the extents of the map.
func (m *Map[T]) Shape() []int {
	return m.shape
}

// At returns the entry at idx, or the default value.
func (m *Map[T]) At(idx ...int) T {
	v, _ := m.Lookup(idx...)
	return v
}

// Set stores value at idx, inserting an entry if there is none.
func (m *Map[T]) Set(value T, idx ...int) {
	m.entries[m.key(idx)] = value
}

// Values yields the stored entries in ascending position.
func (m *Map[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, pos := range slices.Sorted(maps.Keys(m.entries)) {
			if !yield(pos, m.entries[pos]) {
				return
			}
		}
	}
}

func (m *Map[T]) String() string {
	return fmt.Sprintf("Sparse%s#%d", blockview.ShapeString(m.shape), len(m.entries))
}
