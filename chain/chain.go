package chain

import (
	"fmt"
	"iter"

	"github.com/npillmayer/blockview"
	"github.com/npillmayer/blockview/skiplist"
	"github.com/pkg/errors"
)

// Chain is an N-dimensional composition of sub-views of equal rank, concatenated
// along the chain dimension. See the package documentation for an overview.
type Chain[T any] struct {
	frame[T]
	segments *skiplist.Immutable // gaps and children along the chain dimension
	owner    []int               // owner[s] is the child of segment s, or -1 for a gap
}

var _ blockview.Composite[int] = (*Chain[int])(nil)

// New creates a chain of children along dimension dim. def is the cell holding the
// default value, which is returned for every coordinate not covered by a child.
// Children must all have the same rank and must be given in chain order.
func New[T any](dim int, def *T, children []blockview.View[T], opts ...Option) (*Chain[T], error) {
	var p props
	for _, option := range opts {
		p = option(p)
	}
	f, err := newFrame(dim, def, children, p)
	if err != nil {
		return nil, err
	}
	for i, g := range p.gaps {
		if g.at < 0 || g.at > len(children) || g.length < 0 {
			return nil, errors.Wrapf(blockview.ErrGap, "gap #%d at position %d of length %d", i, g.at, g.length)
		}
		if i > 0 && g.at < p.gaps[i-1].at {
			return nil, errors.Wrapf(blockview.ErrGap, "gap #%d at position %d declared after position %d", i, g.at, p.gaps[i-1].at)
		}
	}
	c := &Chain[T]{frame: f}
	var sizes []int
	pos, gi := 0, 0
	skipGaps := func(k int) {
		run := 0
		for ; gi < len(p.gaps) && p.gaps[gi].at == k; gi++ {
			run += p.gaps[gi].length
		}
		if run > 0 {
			sizes = append(sizes, run)
			c.owner = append(c.owner, -1)
			pos += run
		}
	}
	for k := range children {
		skipGaps(k)
		c.offsets[k][dim] = pos
		sizes = append(sizes, c.shapes[k][dim])
		c.owner = append(c.owner, k)
		pos += c.shapes[k][dim]
	}
	skipGaps(len(children))
	c.shape[dim] = pos
	if err = c.checkVolume(); err != nil {
		return nil, err
	}
	if c.segments, err = skiplist.New(sizes); err != nil {
		return nil, errors.Wrap(err, "chain segments")
	}
	tracer().Debugf("new chain %s along dimension %d: %d children, %d segments",
		blockview.ShapeString(c.shape), dim, len(children), len(sizes))
	return c, nil
}

// locate finds the child covering chain coordinates idx and translates idx into
// the child's frame. It returns -1 if idx resolves to the default value.
func (c *Chain[T]) locate(idx []int, local []int) int {
	c.checkIndex(idx)
	seg, along := c.segments.Locate(idx[c.dim])
	k := c.owner[seg]
	if k < 0 || !c.translate(k, idx, along, local) {
		return -1
	}
	return k
}

// At returns the value at the given coordinates.
func (c *Chain[T]) At(idx ...int) T {
	local := c.borrow()
	defer c.release(local)
	if k := c.locate(idx, *local); k >= 0 {
		return c.children[k].At(*local...)
	}
	return *c.def
}

// Set writes value into the child covering idx. idx must not resolve to the
// default value.
func (c *Chain[T]) Set(value T, idx ...int) {
	local := c.borrow()
	defer c.release(local)
	k := c.locate(idx, *local)
	if k < 0 {
		assertThat(false, "write to default region at %v", append([]int(nil), idx...))
	}
	c.children[k].Set(value, *local...)
}

// Covered reports whether idx is backed by a child, i.e. does not resolve to the
// default value.
func (c *Chain[T]) Covered(idx ...int) bool {
	local := c.borrow()
	defer c.release(local)
	return c.locate(idx, *local) >= 0
}

// Values yields the non-default entries of all children in chain order. Positions
// are row-major within Shape().
func (c *Chain[T]) Values() iter.Seq2[int, T] {
	return c.values()
}

func (c *Chain[T]) String() string {
	return fmt.Sprintf("Chain%s/%d", blockview.ShapeString(c.shape), c.dim)
}
