package skiplist

import (
	"github.com/pkg/errors"
)

// ErrNegativeBucket is returned by New for bucket sizes below zero.
var ErrNegativeBucket = errors.New("negative bucket size")

// Immutable locates elements in a fixed sequence of buckets. It is never modified
// after construction and is therefore safe for concurrent use.
type Immutable struct {
	skip    []int // heap-indexed tree of skip counts; skip[1] is the root, skip[0] unused
	leaves  int   // index of the first leaf, a power of two
	buckets int
}

// New builds the locator for the given bucket sizes.
func New(sizes []int) (*Immutable, error) {
	sl := &Immutable{buckets: len(sizes)}
	if len(sizes) == 0 {
		tracer().Debugf("empty skip list")
		return sl, nil
	}
	sl.leaves = 1
	for sl.leaves < len(sizes) {
		sl.leaves <<= 1
	}
	sl.skip = make([]int, 2*sl.leaves) // padding leaves stay zero
	for b, n := range sizes {
		if n < 0 {
			return nil, errors.Wrapf(ErrNegativeBucket, "bucket %d has size %d", b, n)
		}
		sl.skip[sl.leaves+b] = n
	}
	for node := sl.leaves - 1; node > 0; node-- {
		sl.skip[node] = sl.skip[2*node] + sl.skip[2*node+1]
	}
	tracer().Debugf("skip list over %d buckets, %d elements, %d levels", sl.buckets, sl.Total(), sl.levels())
	return sl, nil
}

// Must is like New, but panics instead of returning an error.
func Must(sizes []int) *Immutable {
	sl, err := New(sizes)
	if err != nil {
		panic(err)
	}
	return sl
}

// Locate maps the global index i to a bucket and an offset within that bucket, such
// that the sizes of all buckets before the returned one plus offset equal i.
// i must be in [0, Total()).
func (sl *Immutable) Locate(i int) (bucket, offset int) {
	if i < 0 || i >= sl.Total() {
		assertThat(false, "index %d out of range [0,%d)", i, sl.Total())
	}
	node := 1
	for node < sl.leaves {
		left := node << 1
		if i < sl.skip[left] {
			node = left
		} else {
			i -= sl.skip[left]
			node = left + 1
		}
	}
	return node - sl.leaves, i
}

// Start returns the global index of the first element of a bucket, i.e. the sum of
// the sizes of all buckets before it. Start(Buckets()) is Total().
func (sl *Immutable) Start(bucket int) int {
	assertThat(bucket >= 0 && bucket <= sl.buckets, "bucket %d out of range [0,%d]", bucket, sl.buckets)
	if bucket == sl.buckets {
		return sl.Total()
	}
	start := 0
	for node := sl.leaves + bucket; node > 1; node >>= 1 {
		if node&1 == 1 { // right child: everything in the left sibling precedes us
			start += sl.skip[node-1]
		}
	}
	return start
}

// Size returns the size of a bucket.
func (sl *Immutable) Size(bucket int) int {
	assertThat(bucket >= 0 && bucket < sl.buckets, "bucket %d out of range [0,%d)", bucket, sl.buckets)
	return sl.skip[sl.leaves+bucket]
}

// Total returns the number of elements over all buckets.
func (sl *Immutable) Total() int {
	if sl.buckets == 0 {
		return 0
	}
	return sl.skip[1]
}

// MaxIndex returns the largest valid index, or -1 if there are no elements.
// Callers may use it to skip lookups altogether.
func (sl *Immutable) MaxIndex() int {
	return sl.Total() - 1
}

// Buckets returns the number of buckets.
func (sl *Immutable) Buckets() int {
	return sl.buckets
}

// Skip returns the skip count of a node of the heap-indexed tree. Node 1 is the
// root; the children of node k are 2k and 2k+1.
func (sl *Immutable) Skip(node int) int {
	if node <= 0 || node >= len(sl.skip) {
		return 0
	}
	return sl.skip[node]
}

func (sl *Immutable) levels() int {
	n := 0
	for l := sl.leaves; l > 0; l >>= 1 {
		n++
	}
	return n
}
