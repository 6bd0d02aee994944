package portion

import (
	"fmt"
	"iter"

	"github.com/npillmayer/blockview"
)

type kind uint8

const (
	ranged kind = iota
	broadcast
	dummy
)

// Portion is a one-dimensional leaf view. It comes in three flavours:
//
//   - ranged: a (possibly strided) run of elements of a backing slice
//   - broadcast: a single backing cell, repeated logically n times
//   - dummy: a placeholder of size 1 and maximum size 0, which must never be
//     dereferenced
//
// Portions are small values and are meant to be passed by value. Copies alias the
// same storage.
type Portion[T any] struct {
	kind   kind
	buf    []T
	cell   *T
	offset int
	length int
	stride int
}

var _ blockview.View[int] = Portion[int]{}

// Range creates a portion over buf[offset : offset+n].
func Range[T any](buf []T, offset, n int) Portion[T] {
	return Strided(buf, offset, n, 1)
}

// Strided creates a portion over n elements of buf, starting at offset and
// advancing by stride. A stride of 0 is not allowed; use Broadcast instead.
func Strided[T any](buf []T, offset, n, stride int) Portion[T] {
	assertThat(offset >= 0 && n >= 0 && stride > 0, "invalid range: offset=%d, n=%d, stride=%d", offset, n, stride)
	assertThat(n == 0 || offset+(n-1)*stride < len(buf),
		"range offset=%d, n=%d, stride=%d exceeds backing store of length %d", offset, n, stride, len(buf))
	return Portion[T]{kind: ranged, buf: buf, offset: offset, length: n, stride: stride}
}

// Broadcast creates a portion which presents the single value at cell n times.
// Writing to any index of it overwrites the shared cell.
func Broadcast[T any](cell *T, n int) Portion[T] {
	assertThat(cell != nil, "broadcast portion needs a value cell")
	assertThat(n >= 0, "broadcast portion with negative length %d", n)
	return Portion[T]{kind: broadcast, cell: cell, length: n}
}

// Dummy returns the placeholder portion. It reports a size of 1 but a maximum size
// of 0; reading or writing it panics.
func Dummy[T any]() Portion[T] {
	return Portion[T]{kind: dummy, length: 1}
}

// --- API -------------------------------------------------------------------

// Len returns the logical size of the portion.
func (p Portion[T]) Len() int {
	return p.length
}

// MaxLen returns an upper bound for the number of elements addressable through p,
// to be used for capacity reservation. For the dummy portion it is 0.
func (p Portion[T]) MaxLen() int {
	if p.kind == dummy {
		return 0
	}
	return p.length
}

// IsDummy reports whether p is the placeholder portion.
func (p Portion[T]) IsDummy() bool {
	return p.kind == dummy
}

// IsBroadcast reports whether p presents a single shared cell.
func (p Portion[T]) IsBroadcast() bool {
	return p.kind == broadcast
}

// Get returns the i-th element of p.
func (p Portion[T]) Get(i int) T {
	return *p.ref(i)
}

// Put overwrites the i-th element of p, which is visible to every view aliasing the
// same storage.
func (p Portion[T]) Put(i int, value T) {
	*p.ref(i) = value
}

func (p Portion[T]) ref(i int) *T {
	assertThat(p.kind != dummy, "attempt to dereference dummy portion")
	if i < 0 || i >= p.length {
		assertThat(false, "index %d out of range [0,%d)", i, p.length)
	}
	if p.kind == broadcast {
		return p.cell
	}
	return &p.buf[p.offset+i*p.stride]
}

// ShrinkToFirst returns a copy of p truncated to its first element. A portion
// degraded this way may stand in as a singleton, e.g. for default values.
func (p Portion[T]) ShrinkToFirst() Portion[T] {
	assertThat(p.kind != dummy, "attempt to shrink dummy portion")
	if p.length > 1 {
		p.length = 1
	}
	return p
}

// --- View ------------------------------------------------------------------

// Rank is 1 for every portion.
func (p Portion[T]) Rank() int {
	return 1
}

// Shape returns []int{p.Len()}.
func (p Portion[T]) Shape() []int {
	return []int{p.length}
}

// At returns the element at idx[0]. It is the View form of Get.
func (p Portion[T]) At(idx ...int) T {
	assertThat(len(idx) == 1, "portion is one-dimensional, got %d coordinates", len(idx))
	return p.Get(idx[0])
}

// Set overwrites the element at idx[0]. It is the View form of Put.
func (p Portion[T]) Set(value T, idx ...int) {
	assertThat(len(idx) == 1, "portion is one-dimensional, got %d coordinates", len(idx))
	p.Put(idx[0], value)
}

// Values yields every element of p. The dummy portion yields nothing.
func (p Portion[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if p.kind == dummy {
			return
		}
		for i := 0; i < p.length; i++ {
			if !yield(i, *p.ref(i)) {
				return
			}
		}
	}
}

func (p Portion[T]) String() string {
	switch p.kind {
	case dummy:
		return "Dummy"
	case broadcast:
		return fmt.Sprintf("Broadcast[%d]", p.length)
	}
	if p.stride != 1 {
		return fmt.Sprintf("Portion[%d@%d/%d]", p.length, p.offset, p.stride)
	}
	return fmt.Sprintf("Portion[%d@%d]", p.length, p.offset)
}
