package portion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaAlloc(t *testing.T) {
	a := NewArena[int](8)
	p := a.Alloc(5)
	q := a.Alloc(3)
	assert.Equal(t, 1, a.Pages(), "two allocations fitting one page")
	p.Put(4, 1)
	q.Put(0, 2)
	assert.Equal(t, 1, p.Get(4))
	assert.Equal(t, 2, q.Get(0))
	r := a.Alloc(2)
	assert.Equal(t, 2, a.Pages())
	assert.Equal(t, 0, r.Get(1))
	assert.Equal(t, 10, a.Allocated())
}

func TestArenaLargeAllocation(t *testing.T) {
	a := NewArena[int](4)
	a.Alloc(2)
	big := a.Alloc(10)
	assert.Equal(t, 10, big.Len())
	small := a.Alloc(2)
	assert.Equal(t, 2, a.Pages(), "remainder of the first page is reused after a dedicated page")
	assert.Equal(t, 2, small.Len())
}

func TestArenaCell(t *testing.T) {
	var a Arena[float64]
	def := a.Cell(-1)
	gap := Broadcast(def, 4)
	values := a.From(1, 2, 3)
	assert.Equal(t, -1.0, gap.Get(3))
	assert.Equal(t, 2.0, values.Get(1))
	*def = 0
	assert.Equal(t, 0.0, gap.Get(0))
}
