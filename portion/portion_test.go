package portion

import (
	"testing"

	"github.com/npillmayer/blockview"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangedPortion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockview.portion")
	defer teardown()
	//
	buf := []int{0, 1, 2, 3, 4, 5, 6, 7}
	p := Range(buf, 2, 4)
	require.Equal(t, 4, p.Len())
	assert.Equal(t, 4, p.MaxLen())
	assert.Equal(t, 2, p.Get(0))
	assert.Equal(t, 5, p.At(3))
	p.Set(50, 3)
	assert.Equal(t, 50, buf[5], "write must reach the backing store")
	assert.Panics(t, func() { p.Get(4) })
	assert.Panics(t, func() { p.Get(-1) })
}

func TestStridedPortion(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	p := Strided(buf, 1, 3, 3)
	var got []int
	for _, v := range p.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 4, 7}, got)
	assert.Panics(t, func() { Strided(buf, 1, 4, 3) })
	assert.Panics(t, func() { Strided(buf, 0, 2, 0) })
}

func TestBroadcastPortion(t *testing.T) {
	def := -1
	p := Broadcast(&def, 5)
	assert.True(t, p.IsBroadcast())
	assert.False(t, Range([]int{1}, 0, 1).IsBroadcast())
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 5, p.MaxLen())
	for i := 0; i < 5; i++ {
		assert.Equal(t, -1, p.Get(i))
	}
	assert.Equal(t, 5, blockview.Count[int](p))
}

func TestDefaultSharing(t *testing.T) {
	def := -1
	a := Broadcast(&def, 3)
	b := Broadcast(&def, 7)
	a.Put(1, 42)
	assert.Equal(t, 42, b.Get(6), "aliased default cell must be observable through every portion")
	assert.Equal(t, 42, def)
}

func TestDummyPortion(t *testing.T) {
	d := Dummy[string]()
	assert.True(t, d.IsDummy())
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 0, d.MaxLen())
	assert.Panics(t, func() { d.Get(0) })
	assert.Panics(t, func() { d.Put(0, "x") })
	assert.Panics(t, func() { d.ShrinkToFirst() })
	assert.Equal(t, 0, blockview.Count[string](d))
}

func TestShrinkToFirst(t *testing.T) {
	buf := []int{7, 8, 9}
	p := Range(buf, 0, 3).ShrinkToFirst()
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 7, p.Get(0))
	assert.Panics(t, func() { p.Get(1) })
	empty := Range(buf, 0, 0).ShrinkToFirst()
	assert.Equal(t, 0, empty.Len())
}

func TestValuesRestartable(t *testing.T) {
	p := Range([]int{3, 1, 4, 1, 5}, 0, 5)
	first := blockview.Collect[int](p)
	second := blockview.Collect[int](p)
	assert.Equal(t, first, second)
	assert.Len(t, first, 5)
}
