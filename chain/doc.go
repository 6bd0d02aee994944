/*
Package chain stitches sub-views of equal rank into one larger view.

A Chain concatenates its children along one designated dimension, the chain
dimension. Children may be shifted in every other dimension by a lateral nesting
offset, and gaps may be declared along the chain dimension between children. Every
coordinate which is not covered by a child resolves to a shared default value.

    def := 0
    c, err := chain.New(0, &def, []blockview.View[int]{a, b},
        chain.Gap(1, 2),      // two default rows between a and b
        chain.Offset(1, 3))   // b starts at column 3

Lookup along the chain dimension uses an immutable skip list over the alternating
sequence of gaps and children, which costs O(log n) for n children. Uniform is a
specialization for children of constant extent separated by constant gaps; it
locates children by integer division in O(1).

Children must be listed in increasing order along the chain dimension and must not
overlap. A coordinate on the boundary between two children belongs to the later one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chain

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockview.chain'.
func tracer() tracing.Trace {
	return tracing.Select("blockview.chain")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("chain: "+msg, msgargs...)
		panic(msg)
	}
}
