/*
Package skiplist implements an immutable bucket locator.

Given a fixed sequence of bucket sizes, an Immutable maps a global linear index to a
pair (bucket, offset within bucket) in O(log n), where n is the number of buckets.
It serves the same purpose as the express lanes of a skip list, but as the bucket
sizes never change, the lanes are precomputed once: the structure is a complete
binary tree over the bucket sizes, stored as a single flat array indexed like a
binary heap. The bottom level holds the bucket sizes, every inner node holds the sum
of its two children ("skip count"), and the root's skip count is the total number of
elements.

    sizes  = 3 1 4 0 2
    table  = [ _ | 10 | 8 2 | 4 4 2 0 | 3 1 4 0 2 0 0 0 ]
                  root

Locating an index descends from the root, going left if the index is smaller than
the left child's skip count, and going right with the index reduced by that count
otherwise. Empty buckets are never returned.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package skiplist

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockview.skiplist'.
func tracer() tracing.Trace {
	return tracing.Select("blockview.skiplist")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("skiplist: "+msg, msgargs...)
		panic(msg)
	}
}
