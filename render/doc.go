/*
Package render outputs the contents of a bubble for humans: as plain text,
as colored console output, as an HTML table, or as a Graphviz DOT graph.

Renderers use nothing but the public read-only API of a bubble: the number of
buckets, the primary key of every bucket and a copy of its overflow tree.
Keys are formatted by fmt's %v verb.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/bubble"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// row is the printable form of a single bucket. Vacant primary keys are
// put in parentheses.
type row struct {
	key      string
	overflow []string
}

func rows[K any](b *bubble.Bubble[K]) []row {
	rr := make([]row, b.Buckets())
	for i := range rr {
		rr[i].key = fmt.Sprint(b.Key(i))
		if b.Vacant(i) {
			rr[i].key = "(" + rr[i].key + ")"
		}
		for k := range b.Tree(i).All() {
			rr[i].overflow = append(rr[i].overflow, fmt.Sprint(k))
		}
	}
	return rr
}

func (r row) overflowString() string {
	return strings.Join(r.overflow, " ")
}
