/*
Package diag implements block-diagonal views.

A Diag partitions every dimension into blocks of a fixed size. Only the blocks on the
diagonal, where the block indices of all dimensions coincide, hold data; every other
coordinate resolves to a shared default value. Diagonal block k covers the cells

    (k·b0 + c0, k·b1 + c1, …)   for 0 ≤ ci < bi

where (b0, b1, …) is the block shape. If the extents of the view are not multiples
of the block shape, the last diagonal block is only partially populated.

Dividing a coordinate by its block size happens on every access. The division
strategy is selected per dimension at construction time: a shift for powers of two,
nothing at all for blocks of size 1, and plain division otherwise. If every block
size is 1, a Diag degenerates to a plain diagonal with one value per position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockview.diag'.
func tracer() tracing.Trace {
	return tracing.Select("blockview.diag")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("diag: "+msg, msgargs...)
		panic(msg)
	}
}
