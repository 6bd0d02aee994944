package chain

// Option is a type to help configuring chains at creation time.
type Option func(props) props

type props struct {
	gaps    []gap
	offsets []lateral
}

type gap struct {
	at     int // insertion position: the gap precedes child #at
	length int
}

type lateral struct {
	child  int
	offset []int
}

// Gap declares a run of length default cells along the chain dimension, placed
// before child #at. A gap at position len(children) is a trailing gap. Gaps must be
// declared in non-decreasing order of position; gaps at the same position add up.
//
// Use it like this:
//
//     c, err := chain.New(0, &def, children, chain.Gap(0, 3), chain.Gap(2, 1))
//
func Gap(at, length int) Option {
	return func(p props) props {
		p.gaps = append(p.gaps, gap{at: at, length: length})
		return p
	}
}

// Offset sets the lateral nesting offset of a child, i.e. the position of its
// origin in every dimension except the chain dimension. offset has one entry per
// non-chain dimension, in dimension order. Children without an explicit offset sit
// at lateral position 0. Offsets may be negative; the chain's extents are
// normalized so that the smallest lateral offset in every dimension becomes 0.
func Offset(child int, offset ...int) Option {
	return func(p props) props {
		p.offsets = append(p.offsets, lateral{child: child, offset: append([]int(nil), offset...)})
		return p
	}
}
