package portion

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/npillmayer/blockview"
)

// List is an ordered aggregate of portions, exposing one flattened one-dimensional
// index space. Index i belongs to the first constituent whose cumulative size
// exceeds i.
//
// Lookup scans the constituents linearly, starting at the constituent which served
// the previous lookup. Sequential access therefore costs O(1) per element.
//
// Portions are appended while building the list; afterwards its structure is fixed.
type List[T any] struct {
	parts  []Portion[T]
	starts []int // starts[k] is the flat index of parts[k][0]; starts[len(parts)] is the size
	hint   atomic.Int32
}

var _ blockview.Composite[int] = (*List[int])(nil)

// NewList creates a list from the given constituents.
func NewList[T any](parts ...Portion[T]) *List[T] {
	l := &List[T]{starts: []int{0}}
	return l.Append(parts...)
}

// Append adds constituents at the end of the list. It returns the list to allow for
// chaining.
func (l *List[T]) Append(parts ...Portion[T]) *List[T] {
	if len(l.starts) == 0 {
		l.starts = []int{0}
	}
	for _, p := range parts {
		l.parts = append(l.parts, p)
		l.starts = append(l.starts, l.starts[len(l.starts)-1]+p.Len())
	}
	tracer().Debugf("list now has %d constituents, size %d", len(l.parts), l.Len())
	return l
}

// Len returns the sum of the constituents' sizes.
func (l *List[T]) Len() int {
	if len(l.starts) == 0 {
		return 0
	}
	return l.starts[len(l.starts)-1]
}

// Constituents returns the portions of the list, in order.
func (l *List[T]) Constituents() []Portion[T] {
	return l.parts
}

// Get returns the element at flat index i.
func (l *List[T]) Get(i int) T {
	k := l.locate(i)
	return l.parts[k].Get(i - l.starts[k])
}

// Put overwrites the element at flat index i.
func (l *List[T]) Put(i int, value T) {
	k := l.locate(i)
	l.parts[k].Put(i-l.starts[k], value)
}

func (l *List[T]) locate(i int) int {
	assertThat(i >= 0 && i < l.Len(), "list index %d out of range [0,%d)", i, l.Len())
	k := int(l.hint.Load())
	if k < len(l.parts) && l.starts[k] <= i {
		// common case: same or next constituent as last time
		for i >= l.starts[k+1] {
			k++
		}
	} else {
		k = 0
		for i >= l.starts[k+1] {
			k++
		}
	}
	l.hint.Store(int32(k))
	return k
}

// --- View ------------------------------------------------------------------

// Rank is 1.
func (l *List[T]) Rank() int {
	return 1
}

// Shape returns []int{l.Len()}.
func (l *List[T]) Shape() []int {
	return []int{l.Len()}
}

// At returns the element at idx[0].
func (l *List[T]) At(idx ...int) T {
	assertThat(len(idx) == 1, "list is one-dimensional, got %d coordinates", len(idx))
	return l.Get(idx[0])
}

// Set overwrites the element at idx[0].
func (l *List[T]) Set(value T, idx ...int) {
	assertThat(len(idx) == 1, "list is one-dimensional, got %d coordinates", len(idx))
	l.Put(idx[0], value)
}

// Values yields the elements of all constituents in order. Dummy constituents
// occupy their index but contribute no value.
func (l *List[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k, p := range l.parts {
			base := l.starts[k]
			for i, v := range p.Values() {
				if !yield(base+i, v) {
					return
				}
			}
		}
	}
}

// Children returns the constituents as views.
func (l *List[T]) Children() []blockview.View[T] {
	ch := make([]blockview.View[T], len(l.parts))
	for k, p := range l.parts {
		ch[k] = p
	}
	return ch
}

func (l *List[T]) String() string {
	return fmt.Sprintf("List[%d]", l.Len())
}
