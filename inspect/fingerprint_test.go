package inspect

import (
	"testing"

	"github.com/npillmayer/blockview"
	"github.com/npillmayer/blockview/portion"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockview.inspect")
	defer teardown()
	//
	buf := []int{1, 2, 3, 4, 5, 6}
	d, err := blockview.NewDense(buf, 6)
	require.NoError(t, err)
	l := portion.NewList(portion.Range(buf, 0, 2), portion.Range(buf, 2, 4))
	assert.Equal(t, Fingerprint[int](d), Fingerprint[int](l), "same entries, different structure")
	//
	before := Fingerprint[int](d)
	l.Set(7, 3)
	assert.NotEqual(t, before, Fingerprint[int](d), "write through aliasing list")
}

func TestFingerprintShape(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6}
	flat, err := blockview.NewDense(buf, 6)
	require.NoError(t, err)
	square, err := blockview.NewDense(buf, 2, 3)
	require.NoError(t, err)
	assert.NotEqual(t, Fingerprint[int](flat), Fingerprint[int](square))
	assert.Len(t, Fingerprint[int](flat).String(), 64)
}

func TestFingerprintEncoding(t *testing.T) {
	// With %v, "1" "23" and "12" "3" would be ambiguous without length suffixes.
	a := []string{"1", "23"}
	b := []string{"12", "3"}
	da, err := blockview.NewDense(a, 2)
	require.NoError(t, err)
	db, err := blockview.NewDense(b, 2)
	require.NoError(t, err)
	assert.NotEqual(t, Fingerprint[string](da), Fingerprint[string](db))
	enc := func(buf []byte, s string) []byte { return append(buf, s...) }
	assert.Equal(t, Fingerprint[string](da), FingerprintWith[string](da, enc))
}
