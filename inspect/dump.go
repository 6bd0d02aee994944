package inspect

import (
	"fmt"

	"github.com/npillmayer/blockview"
	tp "github.com/xlab/treeprint"
)

// nester is implemented by composites which place their children at nesting
// offsets, e.g. chains.
type nester interface {
	NestingOffset(k int) []int
}

// Dump renders the view hierarchy rooted at v as a tree, one line per view.
// Every line shows the view (via fmt), its shape and, for children of chains, the
// nesting offset within the parent.
func Dump[T any](v blockview.View[T]) string {
	printer := tp.New()
	printer.SetValue(label(v, nil))
	dumpChildren(printer, v)
	return printer.String()
}

func dumpChildren[T any](branch tp.Tree, v blockview.View[T]) {
	c, ok := v.(blockview.Composite[T])
	if !ok {
		return
	}
	n, _ := v.(nester)
	for k, ch := range c.Children() {
		var at []int
		if n != nil {
			at = n.NestingOffset(k)
		}
		if _, ok := ch.(blockview.Composite[T]); ok {
			sub := branch.AddBranch(label(ch, at))
			dumpChildren(sub, ch)
			continue
		}
		branch.AddNode(label(ch, at))
	}
}

func label[T any](v blockview.View[T], at []int) string {
	s := fmt.Sprintf("%v %s", v, blockview.ShapeString(v.Shape()))
	if at != nil {
		s += fmt.Sprintf(" @%v", at)
	}
	return s
}
