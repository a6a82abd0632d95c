package sortedset

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/sortedset/btree"
)

// Set2Dot outputs the internal structure of a Set in Graphviz DOT format
// (for debugging purposes).
func Set2Dot[V any](set *Set[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	if set != nil {
		err := set.tree.Walk(func(v btree.NodeView[V]) error {
			styles := nodeDotStyles(v.Leaf)
			if v.Leaf {
				fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", v.ID, dotLabel(v.Min), styles)
			} else {
				label := dotLabel(v.Min) + " … " + dotLabel(v.Max)
				fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", v.ID, label, styles)
			}
			if v.Parent > 0 {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", v.Parent, v.ID)
			}
			return nil
		})
		if err != nil {
			T().Errorf("set DOT: %s", err.Error())
		}
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func dotLabel(v any) string {
	s := fmt.Sprint(v)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
