package avl

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K any] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[K any](tree *Tree[K], w io.Writer) error {
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := DotFragment(tree, w, "n"); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// DotFragment writes the nodes and edges of tree as DOT statements, without a
// surrounding graph. Node IDs are prefixed by prefix, which lets clients embed
// more than one tree into a single graph. It returns the ID of the root node,
// or "" for an empty tree.
func DotFragment[K any](tree *Tree[K], w io.Writer, prefix string) (string, error) {
	if tree.IsEmpty() {
		return "", nil
	}
	ids := newtable[K]()
	var nodelist, edgelist strings.Builder
	nodeID := func(n *node[K]) string {
		return fmt.Sprintf("%s%d", prefix, ids.alloc(n))
	}
	err := tree.each(func(n *node[K], depth int) error {
		ID := nodeID(n)
		label := fmt.Sprintf("%v\\nh=%d", n.key, n.height)
		fmt.Fprintf(&nodelist, "\t\"%s\" [label=\"%s\" %s];\n", ID, escapeLabel(label), nodeDotStyles(n))
		for i, child := range []*node[K]{n.left, n.right} {
			if child == nil {
				if n.left == nil && n.right == nil {
					continue // no nil markers below leaves
				}
				nilID := fmt.Sprintf("%s_nil%d", ID, i)
				fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", nilID, emptyNode())
				fmt.Fprintf(&edgelist, "\t\"%s\" -> \"%s\";\n", ID, nilID)
				continue
			}
			fmt.Fprintf(&edgelist, "\t\"%s\" -> \"%s\";\n", ID, nodeID(child))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		return "", err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", prefix, ids.find(tree.root)), nil
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles[K any](n *node[K]) string {
	s := ",style=filled,shape=circle"
	if n.left == nil && n.right == nil {
		return s + ",fillcolor=\"#a3d7e4\""
	}
	return s + ",color=black,fillcolor=\"" + hexcolors[min(n.height, len(hexcolors)-1)] + "\""
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
