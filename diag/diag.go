package diag

import (
	"fmt"
	"iter"

	"github.com/npillmayer/blockview"
	"github.com/npillmayer/blockview/internal/divide"
	"github.com/pkg/errors"
)

// Diag is a block-diagonal view. It owns the storage of its diagonal blocks.
type Diag[T any] struct {
	def      *T
	block    []int            // block shape
	divs     []divide.Divider // one division strategy per dimension
	extents  []int            // shape of the whole view
	count    int              // number of diagonal blocks
	last     []int            // populated extents of the last block
	lastFull bool
	volume   int  // cells per block
	unit     bool // every block is a single cell
	data     []T  // block-major storage, count·volume cells
}

var _ blockview.View[int] = (*Diag[int])(nil)

// New creates a block-diagonal view with the given extents. The number of diagonal
// blocks is derived from the extents: it is the smallest number of blocks any
// dimension is partitioned into. def is the cell holding the default value for
// every off-diagonal coordinate.
func New[T any](def *T, block []int, extents []int) (*Diag[T], error) {
	if err := checkShape(def, block); err != nil {
		return nil, err
	}
	if len(extents) != len(block) {
		return nil, errors.Wrapf(blockview.ErrRank, "block shape %v for extents %v", block, extents)
	}
	count := -1
	for d, ext := range extents {
		if ext <= 0 {
			return nil, errors.Wrapf(blockview.ErrShape, "extent %d in dimension %d", ext, d)
		}
		n := (ext + block[d] - 1) / block[d]
		if count < 0 || n < count {
			count = n
		}
	}
	if err := checkVolume(block, extents, count); err != nil {
		return nil, err
	}
	return build(def, block, extents, count), nil
}

// NewBlocks creates a block-diagonal view of count full diagonal blocks. The extent
// of every dimension is count times its block size.
func NewBlocks[T any](def *T, block []int, count int) (*Diag[T], error) {
	if err := checkShape(def, block); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, errors.Wrapf(blockview.ErrShape, "block count %d", count)
	}
	extents := make([]int, len(block))
	for d, b := range block {
		ext, ok := blockview.CheckedVolume([]int{count, b})
		if !ok {
			return nil, errors.Wrapf(blockview.ErrShape, "%d blocks of size %d overflow dimension %d", count, b, d)
		}
		extents[d] = ext
	}
	if err := checkVolume(block, extents, count); err != nil {
		return nil, err
	}
	return build(def, block, extents, count), nil
}

func checkShape[T any](def *T, block []int) error {
	if def == nil {
		return errors.Wrap(blockview.ErrNoDefault, "diag")
	}
	if len(block) == 0 {
		return errors.Wrap(blockview.ErrShape, "block shape without dimensions")
	}
	for d, b := range block {
		if b <= 0 {
			return errors.Wrapf(blockview.ErrShape, "block size %d in dimension %d", b, d)
		}
	}
	return nil
}

// checkVolume makes sure positions within extents, and the storage of count blocks,
// can be counted with an int.
func checkVolume(block []int, extents []int, count int) error {
	if _, ok := blockview.CheckedVolume(extents); !ok {
		return errors.Wrapf(blockview.ErrShape, "volume of diag %v overflows", extents)
	}
	if _, ok := blockview.CheckedVolume(append([]int{count}, block...)); !ok {
		return errors.Wrapf(blockview.ErrShape, "storage for %d blocks of %v overflows", count, block)
	}
	return nil
}

func build[T any](def *T, block []int, extents []int, count int) *Diag[T] {
	dg := &Diag[T]{
		def:      def,
		block:    append([]int(nil), block...),
		extents:  append([]int(nil), extents...),
		count:    count,
		last:     make([]int, len(block)),
		lastFull: true,
		volume:   blockview.Volume(block),
		unit:     true,
		divs:     make([]divide.Divider, len(block)),
	}
	for d, b := range block {
		dg.divs[d] = divide.By(b)
		dg.last[d] = min(b, extents[d]-(count-1)*b)
		if dg.last[d] < b {
			dg.lastFull = false
		}
		if b != 1 {
			dg.unit = false
		}
	}
	dg.data = make([]T, count*dg.volume)
	tracer().Debugf("new diag %s: %d blocks of %s, last block %s (full=%v)",
		blockview.ShapeString(extents), count, blockview.ShapeString(block),
		blockview.ShapeString(dg.last), dg.lastFull)
	return dg
}

// --- API -------------------------------------------------------------------

// Blocks returns the number of diagonal blocks.
func (dg *Diag[T]) Blocks() int {
	return dg.count
}

// BlockShape returns the extents of a (full) block.
func (dg *Diag[T]) BlockShape() []int {
	return dg.block
}

// LastBlock returns the populated extents of the last diagonal block, and whether
// it is completely populated.
func (dg *Diag[T]) LastBlock() ([]int, bool) {
	return dg.last, dg.lastFull
}

// Stored returns the number of cells backed by real storage, i.e. the number of
// entries Values yields.
func (dg *Diag[T]) Stored() int {
	return (dg.count-1)*dg.volume + blockview.Volume(dg.last)
}

// Default returns the cell holding the default value.
func (dg *Diag[T]) Default() *T {
	return dg.def
}

// Block returns a dense view of the storage of diagonal block k, in block-local
// coordinates. Writes through it are visible through dg. For the last block, cells
// beyond LastBlock() are storage only and never visible through dg.
func (dg *Diag[T]) Block(k int) *blockview.Dense[T] {
	assertThat(k >= 0 && k < dg.count, "block %d out of range [0,%d)", k, dg.count)
	b, err := blockview.NewDense(dg.data[k*dg.volume:(k+1)*dg.volume], dg.block...)
	assertThat(err == nil, "block %d: %v", k, err)
	return b
}

// locate returns the storage offset of idx, or -1 for off-diagonal coordinates.
func (dg *Diag[T]) locate(idx []int) int {
	if !blockview.Contains(dg.extents, idx) {
		assertThat(false, "index %v out of range %v", append([]int(nil), idx...), dg.extents)
	}
	if dg.unit {
		for _, x := range idx[1:] {
			if x != idx[0] {
				return -1
			}
		}
		return idx[0]
	}
	k, local := dg.divs[0].DivMod(idx[0])
	for d := 1; d < len(idx); d++ {
		q, r := dg.divs[d].DivMod(idx[d])
		if q != k {
			return -1
		}
		local = local*dg.block[d] + r
	}
	if k >= dg.count {
		return -1
	}
	return k*dg.volume + local
}

// --- View ------------------------------------------------------------------

// Rank returns the number of dimensions.
func (dg *Diag[T]) Rank() int {
	return len(dg.extents)
}

// Shape returns the extents of the view.
func (dg *Diag[T]) Shape() []int {
	return dg.extents
}

// At returns the value at idx, which is the default value off the diagonal blocks.
func (dg *Diag[T]) At(idx ...int) T {
	if i := dg.locate(idx); i >= 0 {
		return dg.data[i]
	}
	return *dg.def
}

// Set overwrites the value at idx, which must lie within a diagonal block.
func (dg *Diag[T]) Set(value T, idx ...int) {
	i := dg.locate(idx)
	if i < 0 {
		assertThat(false, "write to off-diagonal cell %v", append([]int(nil), idx...))
	}
	dg.data[i] = value
}

// Values yields the stored entries block by block, and within a block in row-major
// order of the block-local coordinates. Cells of a partially populated last block
// which lie outside the view are skipped.
func (dg *Diag[T]) Values() iter.Seq2[int, T] {
	if dg.unit {
		return dg.diagonal()
	}
	return func(yield func(int, T) bool) {
		origin := make([]int, len(dg.block))
		for k := 0; k < dg.count; k++ {
			for d, b := range dg.block {
				origin[d] = k * b
			}
			box := dg.block
			if k == dg.count-1 {
				box = dg.last
			}
			if !dg.yieldBlock(k, origin, box, yield) {
				return
			}
		}
	}
}

// yieldBlock iterates over the cells of block k within box, which is the block
// shape or, for the last block, its populated part.
func (dg *Diag[T]) yieldBlock(k int, origin, box []int, yield func(int, T) bool) bool {
	base := k * dg.volume
	rank := len(box)
	local := make([]int, rank)
	coords := make([]int, rank)
	for {
		for d := range local {
			coords[d] = origin[d] + local[d]
		}
		if !yield(blockview.Ravel(dg.extents, coords), dg.data[base+blockview.Ravel(dg.block, local)]) {
			return false
		}
		d := rank - 1 // odometer increment of local within box
		for ; d >= 0; d-- {
			local[d]++
			if local[d] < box[d] {
				break
			}
			local[d] = 0
		}
		if d < 0 {
			return true
		}
	}
}

// diagonal iterates a view with unit blocks: one value per diagonal position.
func (dg *Diag[T]) diagonal() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		step := 0 // distance between (i,i,…) and (i+1,i+1,…) in row-major order
		for d := range dg.extents {
			step = step*dg.extents[d] + 1
		}
		for i, v := range dg.data {
			if !yield(i*step, v) {
				return
			}
		}
	}
}

func (dg *Diag[T]) String() string {
	return fmt.Sprintf("Diag%s×%d", blockview.ShapeString(dg.block), dg.count)
}
