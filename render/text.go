package render

import (
	"bufio"
	"io"

	"github.com/npillmayer/bubble"
)

// Text writes one line per bucket of b to w, consisting of the primary key
// followed by the bucket's overflow keys in braces:
//
//	20: {22 30 35}
//
// An empty bubble produces no output.
func Text[K any](b *bubble.Bubble[K], w io.Writer) error {
	if b.IsEmpty() {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, r := range rows(b) {
		bw.WriteString(r.key)
		bw.WriteString(": {")
		bw.WriteString(r.overflowString())
		bw.WriteString("}\n")
	}
	return bw.Flush()
}
