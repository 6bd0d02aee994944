/*
Package sparse implements an associative leaf view.

A Map stores only the cells which have been written; every other coordinate reads
as a shared default value. Entries are keyed by the row-major position of their
coordinates within the shape of the map, which is unique for every coordinate tuple
inside the shape.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockview.sparse'.
func tracer() tracing.Trace {
	return tracing.Select("blockview.sparse")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("sparse: "+msg, msgargs...)
		panic(msg)
	}
}
