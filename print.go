package avl

import (
	"fmt"
	"io"
)

// to control the dump routine
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Dump writes an ASCII graphic representation of the tree to w, right
// subtrees above their parents. Intended for debugging and test output.
func (t *tree) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	dumpSubtree(w, t.root, "", atRoot)
}

func dumpSubtree(w io.Writer, n *node, prefix string, br branch) {
	if n == nil {
		return
	}

	if n.right != nil {
		pad := "       "
		if atLeft == br {
			pad = "|      "
		}
		dumpSubtree(w, n.right, prefix+pad, atRight)
	}

	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d → %v h=%d\n", n.key, n.value, n.height)

	if n.left != nil {
		pad := "       "
		if atRight == br {
			pad = "|      "
		}
		dumpSubtree(w, n.left, prefix+pad, atLeft)
	}
}
