package portion

import (
	"testing"

	"github.com/npillmayer/blockview"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIndexing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockview.portion")
	defer teardown()
	//
	def := 0
	buf := []int{1, 2, 3, 4, 5, 6}
	l := NewList(Range(buf, 0, 2), Broadcast(&def, 3), Range(buf, 2, 4))
	require.Equal(t, 9, l.Len())
	require.Len(t, l.Constituents(), 3)
	assert.True(t, l.Constituents()[1].IsBroadcast())
	expected := []int{1, 2, 0, 0, 0, 3, 4, 5, 6}
	for i, e := range expected {
		assert.Equal(t, e, l.Get(i), "index %d", i)
	}
	// random order, to leave the sequential fast path
	for _, i := range []int{8, 0, 5, 2, 7, 1} {
		assert.Equal(t, expected[i], l.At(i), "index %d", i)
	}
	assert.Panics(t, func() { l.Get(9) })
}

func TestListEmptyConstituents(t *testing.T) {
	buf := []int{1, 2, 3}
	l := NewList(Range(buf, 0, 0), Range(buf, 0, 1), Range(buf, 1, 0), Range(buf, 1, 2))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Get(0))
	assert.Equal(t, 2, l.Get(1))
	assert.Equal(t, 3, l.Get(2))
}

func TestListPut(t *testing.T) {
	buf := make([]int, 4)
	l := NewList[int]().Append(Range(buf, 0, 2)).Append(Range(buf, 2, 2))
	for i := 0; i < l.Len(); i++ {
		l.Set(i*10, i)
	}
	assert.Equal(t, []int{0, 10, 20, 30}, buf)
}

func TestListValues(t *testing.T) {
	buf := []int{1, 2, 3}
	l := NewList(Range(buf, 0, 1), Dummy[int](), Range(buf, 1, 2))
	assert.Equal(t, 4, l.Len())
	entries := blockview.Collect[int](l)
	assert.Equal(t, []blockview.Entry[int]{{Pos: 0, Value: 1}, {Pos: 2, Value: 2}, {Pos: 3, Value: 3}}, entries)
	assert.Len(t, l.Children(), 3)
}
