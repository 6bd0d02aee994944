/*
Package blockview is a composable indexing engine for structured, mostly sparse,
multi-dimensional arrays.

A large logical matrix is assembled from many small views: dense blocks, diagonal
blocks, constant-value regions and associative sparse maps. The whole matrix, and in
particular its default entries, is never materialized. Clients build a tree of views
bottom-up and query it through two operations:

    v.At(i, j)        // random access, O(1) to O(log n) per level
    v.Values()        // iteration over the non-default entries only

All views share the capability View. Sub-packages provide the structural variants:

    portion    leaf views over caller-owned storage, and the flat List aggregate
    skiplist   an immutable locator mapping a linear index to (bucket, offset)
    chain      N-dimensional stitching of sub-views along one dimension
    diag       block-diagonal storage
    sparse     an associative fallback leaf
    inspect    debugging helpers (hierarchy dump, content fingerprint)

Views are not safe for concurrent mutation. Concurrent reads are fine as long as
nobody writes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package blockview

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockview'.
func tracer() tracing.Trace {
	return tracing.Select("blockview")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("blockview: "+msg, msgargs...)
		panic(msg)
	}
}
