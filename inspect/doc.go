/*
Package inspect offers debugging helpers for view hierarchies.

Dump renders a hierarchy as an indented tree, a textual stand-in for drawing the
views as nested rectangles. Fingerprint computes a digest over the non-default
entries of a view, which makes it cheap to compare two structurally different
hierarchies for equal content.

Both helpers work through the capabilities of package blockview only and do not
know about concrete view types.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockview.inspect'.
func tracer() tracing.Trace {
	return tracing.Select("blockview.inspect")
}
