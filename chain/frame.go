package chain

import (
	"iter"
	"sync"

	"github.com/npillmayer/blockview"
	"github.com/pkg/errors"
)

// frame holds what Chain and Uniform have in common: the children, their nesting
// offsets and the resulting extents. Locating the child along the chain dimension
// is left to the embedding type.
type frame[T any] struct {
	dim      int
	def      *T
	children []blockview.View[T]
	shapes   [][]int // shapes[k] is the shape of child k
	offsets  [][]int // offsets[k] is the nesting offset of child k, in every dimension
	shape    []int
	scratch  *sync.Pool // buffers of child-local coordinates, see borrow
}

// newFrame validates the children and computes lateral nesting offsets and lateral
// extents. Offsets and extent along the chain dimension are left at 0.
func newFrame[T any](dim int, def *T, children []blockview.View[T], p props) (frame[T], error) {
	f := frame[T]{dim: dim, def: def}
	if def == nil {
		return f, errors.Wrap(blockview.ErrNoDefault, "chain")
	}
	if len(children) == 0 {
		return f, errors.Wrap(blockview.ErrNoChildren, "chain")
	}
	for k, ch := range children {
		if ch == nil {
			return f, errors.Wrapf(blockview.ErrShape, "chain child %d is nil", k)
		}
	}
	rank := children[0].Rank()
	if rank < 1 {
		return f, errors.Wrapf(blockview.ErrRank, "chain child 0 has rank %d", rank)
	}
	if dim < 0 || dim >= rank {
		return f, errors.Wrapf(blockview.ErrDimension, "chain dimension %d for rank %d", dim, rank)
	}
	f.scratch = &sync.Pool{New: func() any {
		local := make([]int, rank)
		return &local
	}}
	f.children = append([]blockview.View[T](nil), children...)
	f.shapes = make([][]int, len(children))
	f.offsets = make([][]int, len(children))
	for k, ch := range children {
		if ch.Rank() != rank {
			return f, errors.Wrapf(blockview.ErrRank, "chain child %d has rank %d, expected %d", k, ch.Rank(), rank)
		}
		f.shapes[k] = append([]int(nil), ch.Shape()...)
		f.offsets[k] = make([]int, rank)
	}
	for _, l := range p.offsets {
		if l.child < 0 || l.child >= len(children) {
			return f, errors.Wrapf(blockview.ErrOffset, "offset for unknown child %d", l.child)
		}
		if len(l.offset) != rank-1 {
			return f, errors.Wrapf(blockview.ErrOffset, "child %d: %d lateral offsets for rank %d", l.child, len(l.offset), rank)
		}
		for d, i := 0, 0; d < rank; d++ {
			if d == dim {
				continue
			}
			f.offsets[l.child][d] = l.offset[i]
			i++
		}
	}
	f.shape = make([]int, rank)
	for d := 0; d < rank; d++ {
		if d == dim {
			continue
		}
		low := f.offsets[0][d]
		for k := range children {
			low = min(low, f.offsets[k][d])
		}
		for k := range children {
			f.offsets[k][d] -= low
			f.shape[d] = max(f.shape[d], f.offsets[k][d]+f.shapes[k][d])
		}
	}
	return f, nil
}

// Rank returns the number of dimensions, which is the rank of every child.
func (f *frame[T]) Rank() int {
	return len(f.shape)
}

// Shape returns the extents of the chain.
func (f *frame[T]) Shape() []int {
	return f.shape
}

// Dim returns the chain dimension.
func (f *frame[T]) Dim() int {
	return f.dim
}

// Default returns the cell holding the default value.
func (f *frame[T]) Default() *T {
	return f.def
}

// Children returns the sub-views, in chain order.
func (f *frame[T]) Children() []blockview.View[T] {
	return f.children
}

// NestingOffset returns the origin of child k in the coordinate space of the chain.
func (f *frame[T]) NestingOffset(k int) []int {
	return f.offsets[k]
}

// translate converts chain coordinates into the local frame of child k, given the
// already-known local coordinate along the chain dimension. It reports false if the
// coordinates lie outside the child's lateral bounding box.
func (f *frame[T]) translate(k int, idx []int, along int, local []int) bool {
	for d, x := range idx {
		if d == f.dim {
			local[d] = along
			continue
		}
		l := x - f.offsets[k][d]
		if l < 0 || l >= f.shapes[k][d] {
			return false
		}
		local[d] = l
	}
	return true
}

func (f *frame[T]) checkIndex(idx []int) {
	if !blockview.Contains(f.shape, idx) {
		assertThat(false, "index %v out of range %v", append([]int(nil), idx...), f.shape)
	}
}

// checkVolume rejects chains with more cells than an int can count.
func (f *frame[T]) checkVolume() error {
	if _, ok := blockview.CheckedVolume(f.shape); !ok {
		return errors.Wrapf(blockview.ErrShape, "volume of chain %v overflows", f.shape)
	}
	return nil
}

// borrow hands out a buffer for child-local coordinates. Passing coordinates to a
// child through the View interface moves them to the heap, so buffers are recycled
// instead of allocated per access. Return the buffer with release.
func (f *frame[T]) borrow() *[]int {
	return f.scratch.Get().(*[]int)
}

func (f *frame[T]) release(local *[]int) {
	f.scratch.Put(local)
}

// values concatenates the values of all children, translating their positions
// into the chain's coordinate space.
func (f *frame[T]) values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		coords := make([]int, len(f.shape))
		for k, ch := range f.children {
			for pos, v := range ch.Values() {
				coords = blockview.Unravel(f.shapes[k], pos, coords)
				for d := range coords {
					coords[d] += f.offsets[k][d]
				}
				if !yield(blockview.Ravel(f.shape, coords), v) {
					return
				}
			}
		}
	}
}
