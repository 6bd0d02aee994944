package chain

import (
	"fmt"
	"iter"

	"github.com/npillmayer/blockview"
	"github.com/npillmayer/blockview/internal/divide"
	"github.com/pkg/errors"
)

// Uniform is a chain whose children all have the same extent along the chain
// dimension and are separated by gaps of a constant length. Child k starts at
// k·(extent+gap). Locating a child is a division by this period instead of a
// search.
//
// A Uniform behaves exactly like a Chain built from the same children with
// Gap(k, gap) for every k in 1…n-1.
type Uniform[T any] struct {
	frame[T]
	extent int            // extent of every child along the chain dimension
	gap    int            // default cells between two children
	period divide.Divider // extent + gap
}

var _ blockview.Composite[int] = (*Uniform[int])(nil)

// NewUniform creates a uniform chain of children along dimension dim, with gap
// default cells between consecutive children. Lateral offsets may be set with
// option Offset; option Gap is not accepted, as gaps are fixed by parameter gap.
func NewUniform[T any](dim int, def *T, children []blockview.View[T], gap int, opts ...Option) (*Uniform[T], error) {
	var p props
	for _, option := range opts {
		p = option(p)
	}
	if len(p.gaps) > 0 {
		return nil, errors.Wrap(blockview.ErrGap, "uniform chain takes a fixed gap, not individual gaps")
	}
	if gap < 0 {
		return nil, errors.Wrapf(blockview.ErrGap, "negative gap %d", gap)
	}
	f, err := newFrame(dim, def, children, p)
	if err != nil {
		return nil, err
	}
	u := &Uniform[T]{frame: f, gap: gap}
	u.extent = u.shapes[0][dim]
	if u.extent <= 0 {
		return nil, errors.Wrapf(blockview.ErrNotUniform, "children have extent %d along dimension %d", u.extent, dim)
	}
	for k := range children {
		if u.shapes[k][dim] != u.extent {
			return nil, errors.Wrapf(blockview.ErrNotUniform, "child %d has extent %d, child 0 has %d",
				k, u.shapes[k][dim], u.extent)
		}
		u.offsets[k][dim] = k * (u.extent + gap)
	}
	u.period = divide.By(u.extent + gap)
	u.shape[dim] = len(children)*u.extent + (len(children)-1)*gap
	if err = u.checkVolume(); err != nil {
		return nil, err
	}
	tracer().Debugf("new uniform chain %s along dimension %d: %d children, period %v",
		blockview.ShapeString(u.shape), dim, len(children), u.period)
	return u, nil
}

func (u *Uniform[T]) locate(idx []int, local []int) int {
	u.checkIndex(idx)
	k, along := u.period.DivMod(idx[u.dim])
	if along >= u.extent || !u.translate(k, idx, along, local) {
		return -1
	}
	return k
}

// At returns the value at the given coordinates.
func (u *Uniform[T]) At(idx ...int) T {
	local := u.borrow()
	defer u.release(local)
	if k := u.locate(idx, *local); k >= 0 {
		return u.children[k].At(*local...)
	}
	return *u.def
}

// Set writes value into the child covering idx. idx must not resolve to the
// default value.
func (u *Uniform[T]) Set(value T, idx ...int) {
	local := u.borrow()
	defer u.release(local)
	k := u.locate(idx, *local)
	if k < 0 {
		assertThat(false, "write to default region at %v", append([]int(nil), idx...))
	}
	u.children[k].Set(value, *local...)
}

// Covered reports whether idx is backed by a child.
func (u *Uniform[T]) Covered(idx ...int) bool {
	local := u.borrow()
	defer u.release(local)
	return u.locate(idx, *local) >= 0
}

// Values yields the non-default entries of all children in chain order.
func (u *Uniform[T]) Values() iter.Seq2[int, T] {
	return u.values()
}

// Period returns the distance between the origins of two consecutive children
// along the chain dimension.
func (u *Uniform[T]) Period() int {
	return u.period.Divisor()
}

func (u *Uniform[T]) String() string {
	return fmt.Sprintf("Uniform%s/%d", blockview.ShapeString(u.shape), u.dim)
}
