package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bubble"
	"github.com/npillmayer/bubble/avl"
)

// Dot outputs the structure of b in Graphviz DOT format (for debugging
// purposes). The bucket array is drawn as a single record node, with an edge
// from every bucket to the root of its overflow tree.
func Dot[K any](b *bubble.Bubble[K], w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	sb.WriteString("\tbuckets [shape=record,label=\"")
	for i := 0; i < b.Buckets(); i++ {
		if i > 0 {
			sb.WriteString("|")
		}
		fmt.Fprintf(&sb, "<b%d> %s", i, recordEscape(fmt.Sprint(b.Key(i))))
	}
	sb.WriteString("\"];\n")
	for i := 0; i < b.Buckets(); i++ {
		rootID, err := avl.DotFragment(b.Tree(i), &sb, fmt.Sprintf("t%d_", i))
		if err != nil {
			return err
		}
		if rootID != "" {
			fmt.Fprintf(&sb, "\tbuckets:b%d -> \"%s\";\n", i, rootID)
		}
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		T().Errorf("bubble DOT: %s", err.Error())
	}
	return err
}

var recordReplacer = strings.NewReplacer(
	"\\", "\\\\", "\"", "\\\"", "|", "\\|", "{", "\\{", "}", "\\}", "<", "\\<", ">", "\\>",
)

func recordEscape(s string) string {
	return recordReplacer.Replace(s)
}
