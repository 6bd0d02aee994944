package blockview

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Volume returns the number of cells of an array of the given shape.
func Volume(shape []int) int {
	n := 1
	for _, ext := range shape {
		n *= ext
	}
	return n
}

// CheckedVolume is like Volume, but reports false if an extent is negative or the
// volume does not fit into an int. Positions within a shape are ints, so every view
// constructor has to reject shapes failing this check.
func CheckedVolume(shape []int) (int, bool) {
	n := uint64(1)
	for _, ext := range shape {
		if ext < 0 {
			return 0, false
		}
		hi, lo := bits.Mul64(n, uint64(ext))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		n = lo
	}
	return int(n), true
}

// Ravel flattens coordinates into a row-major position within shape.
// The last dimension varies fastest.
func Ravel(shape []int, idx []int) int {
	if len(idx) != len(shape) {
		assertThat(false, "ravel: %d coordinates for rank %d", len(idx), len(shape))
	}
	pos := 0
	for d, ext := range shape {
		pos = pos*ext + idx[d]
	}
	return pos
}

// Unravel is the inverse of Ravel. It writes the coordinates of position pos into
// dst, which is allocated if it is too short, and returns it.
func Unravel(shape []int, pos int, dst []int) []int {
	if len(dst) < len(shape) {
		dst = make([]int, len(shape))
	}
	dst = dst[:len(shape)]
	for d := len(shape) - 1; d >= 0; d-- {
		dst[d] = pos % shape[d]
		pos /= shape[d]
	}
	return dst
}

// Contains reports whether idx lies within shape.
func Contains(shape []int, idx []int) bool {
	if len(idx) != len(shape) {
		return false
	}
	for d, ext := range shape {
		if idx[d] < 0 || idx[d] >= ext {
			return false
		}
	}
	return true
}

// ShapeString formats a shape like "[3×4]", for debugging output.
func ShapeString(shape []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for d, ext := range shape {
		if d > 0 {
			b.WriteString("×")
		}
		b.WriteString(strconv.Itoa(ext))
	}
	b.WriteByte(']')
	return b.String()
}
