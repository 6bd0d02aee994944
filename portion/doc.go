/*
Package portion implements the leaf views of a view hierarchy, and List, a flat
aggregate of leaves.

A Portion never owns its storage. It is a window onto a slice owned by the caller (or
by an Arena), onto a single shared cell, or onto nothing at all. Several portions may
alias the same storage; this is intentional, as it lets many regions of a hierarchy
share one default value cell:

    def := -1
    gapA := portion.Broadcast(&def, 3)
    gapB := portion.Broadcast(&def, 5)
    gapA.Set(0, 0)       // gapB.At(4) now returns 0, too

Indexing a portion outside [0, Len()) is a contract violation and panics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package portion

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockview.portion'.
func tracer() tracing.Trace {
	return tracing.Select("blockview.portion")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("portion: "+msg, msgargs...)
		panic(msg)
	}
}
