package sortedset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/sortedset/btree"
	"golang.org/x/term"
)

// Fprint writes an indented dump of the tree structure of set to w (for
// debugging purposes). Inner nodes are printed with their value range and
// fan-out, leaves with their value:
//
//	[1 … 5] (2)
//	  [1 … 3] (3)
//	    1
//	    2
//	    3
//	  [4 … 5] (2)
//	    4
//	    5
//
// If w is an interactive terminal, values are colored.
func Fprint[T any](w io.Writer, set *Set[T]) error {
	leafColor, innerColor := makeDumpPalette(isTerminal(w))
	if set.IsEmpty() {
		_, err := io.WriteString(w, "{}\n")
		return err
	}
	return set.tree.Walk(func(v btree.NodeView[T]) error {
		indent := strings.Repeat("  ", v.Depth)
		var err error
		if v.Leaf {
			_, err = fmt.Fprintf(w, "%s%s\n", indent, leafColor.Sprint(v.Min))
		} else {
			_, err = fmt.Fprintf(w, "%s[%s … %s] (%d)\n", indent,
				innerColor.Sprint(v.Min), innerColor.Sprint(v.Max), v.Children)
		}
		return err
	})
}

func makeDumpPalette(colorize bool) (leaf, inner *color.Color) {
	leaf, inner = color.New(color.FgBlue), color.New(color.FgRed)
	if colorize {
		leaf.EnableColor()
		inner.EnableColor()
	} else {
		leaf.DisableColor()
		inner.DisableColor()
	}
	return
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
