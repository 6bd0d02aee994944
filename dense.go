package blockview

import (
	"iter"

	"github.com/pkg/errors"
)

// Dense is a dense N-dimensional block in row-major order. It does not own its
// storage: it is a window onto a caller-provided slice, and writes are visible to
// everybody holding the same slice.
type Dense[T any] struct {
	buf   []T
	shape []int
}

var _ View[int] = (*Dense[int])(nil)

// NewDense creates a dense view of the given shape over buf. buf must hold at least
// Volume(shape) elements; surplus elements are ignored.
func NewDense[T any](buf []T, shape ...int) (*Dense[T], error) {
	if len(shape) == 0 {
		return nil, errors.Wrap(ErrShape, "dense block without dimensions")
	}
	for d, ext := range shape {
		if ext <= 0 {
			return nil, errors.Wrapf(ErrShape, "dense block has extent %d in dimension %d", ext, d)
		}
	}
	n, ok := CheckedVolume(shape)
	if !ok {
		return nil, errors.Wrapf(ErrShape, "volume of dense block %v overflows", shape)
	}
	if len(buf) < n {
		return nil, errors.Wrapf(ErrShape, "buffer of length %d too small for %v", len(buf), shape)
	}
	tracer().Debugf("new dense block %v", shape)
	return &Dense[T]{buf: buf[:n:n], shape: append([]int(nil), shape...)}, nil
}

// Rank returns the number of dimensions.
func (b *Dense[T]) Rank() int {
	return len(b.shape)
}

// Shape returns the extents of the block.
func (b *Dense[T]) Shape() []int {
	return b.shape
}

// At returns the element at the given coordinates.
func (b *Dense[T]) At(idx ...int) T {
	return b.buf[b.offset(idx)]
}

// Set overwrites the element at the given coordinates.
func (b *Dense[T]) Set(value T, idx ...int) {
	b.buf[b.offset(idx)] = value
}

func (b *Dense[T]) offset(idx []int) int {
	if !Contains(b.shape, idx) {
		assertThat(false, "dense index %v out of range %v", append([]int(nil), idx...), b.shape)
	}
	return Ravel(b.shape, idx)
}

// Values yields every element of the block, as a dense block has no default cells.
func (b *Dense[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.buf {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Data returns the underlying row-major storage.
func (b *Dense[T]) Data() []T {
	return b.buf
}

func (b *Dense[T]) String() string {
	return "Dense" + ShapeString(b.shape)
}
