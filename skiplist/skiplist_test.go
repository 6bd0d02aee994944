package skiplist

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockview.skiplist")
	defer teardown()
	//
	sl, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, sl.Total())
	assert.Equal(t, -1, sl.MaxIndex())
	assert.Equal(t, 0, sl.Buckets())
	assert.Equal(t, 0, sl.Start(0))
	assert.Panics(t, func() { sl.Locate(0) })
}

func TestSingleBucket(t *testing.T) {
	sl := Must([]int{5})
	for i := 0; i < 5; i++ {
		b, off := sl.Locate(i)
		assert.Equal(t, 0, b)
		assert.Equal(t, i, off)
	}
	assert.Equal(t, 4, sl.MaxIndex())
}

func TestHeapTable(t *testing.T) {
	sl := Must([]int{3, 1, 4, 0, 2})
	assert.Equal(t, 10, sl.Skip(1))
	assert.Equal(t, 8, sl.Skip(2))
	assert.Equal(t, 2, sl.Skip(3))
	assert.Equal(t, []int{4, 4, 2, 0}, []int{sl.Skip(4), sl.Skip(5), sl.Skip(6), sl.Skip(7)})
	assert.Equal(t, 0, sl.Skip(15), "padding leaves are zero")
	assert.Equal(t, 0, sl.Skip(16))
}

func TestLocateIrregular(t *testing.T) {
	sl := Must([]int{3, 1, 4, 0, 2})
	expected := [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0},
		{2, 0}, {2, 1}, {2, 2}, {2, 3},
		{4, 0}, {4, 1},
	}
	for i, e := range expected {
		b, off := sl.Locate(i)
		assert.Equal(t, e, [2]int{b, off}, "index %d", i)
	}
	assert.Equal(t, []int{0, 3, 4, 8, 8, 10}, []int{
		sl.Start(0), sl.Start(1), sl.Start(2), sl.Start(3), sl.Start(4), sl.Start(5),
	})
	for b, size := range []int{3, 1, 4, 0, 2} {
		assert.Equal(t, size, sl.Size(b), "bucket %d", b)
	}
	assert.Panics(t, func() { sl.Size(5) })
}

func TestLeadingEmptyBuckets(t *testing.T) {
	sl := Must([]int{0, 0, 2})
	b, off := sl.Locate(0)
	assert.Equal(t, 2, b)
	assert.Equal(t, 0, off)
}

func TestNegativeBucket(t *testing.T) {
	_, err := New([]int{1, -1})
	assert.True(t, errors.Is(err, ErrNegativeBucket))
	assert.Panics(t, func() { Must([]int{-3}) })
}

func TestEdgeCounts(t *testing.T) {
	for _, n := range []int{0, 1, 2, 4, 5, 8, 13} {
		sizes := make([]int, n)
		for b := range sizes {
			sizes[b] = b%3 + 1
		}
		if !roundTrip(sizes) {
			t.Errorf("round trip failed for %d buckets", n)
		}
	}
}

func TestRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("locate reconstructs every index for irregular buckets",
		prop.ForAll(
			roundTrip,
			gen.SliceOf(gen.IntRange(0, 9)),
		))
	properties.Property("locate reconstructs every index for uniform buckets",
		prop.ForAll(
			func(n, size int) bool {
				sizes := make([]int, n)
				for b := range sizes {
					sizes[b] = size
				}
				return roundTrip(sizes)
			},
			gen.IntRange(0, 70),
			gen.IntRange(1, 6),
		))
	properties.TestingRun(t)
}

func roundTrip(sizes []int) bool {
	sl, err := New(sizes)
	if err != nil {
		return false
	}
	total := 0
	for _, n := range sizes {
		total += n
	}
	if sl.Total() != total || sl.MaxIndex() != total-1 {
		return false
	}
	for i := 0; i < total; i++ {
		b, off := sl.Locate(i)
		if off < 0 || off >= sizes[b] {
			return false
		}
		start := 0
		for _, n := range sizes[:b] {
			start += n
		}
		if start+off != i || sl.Start(b) != start {
			return false
		}
	}
	return true
}
