package model

// WalkFunc is called for every node visited by Walk. depth is 0 for the
// starting node. Returning false skips the node's children.
type WalkFunc func(n Node, depth int) bool

// Walk visits n and its descendants depth-first in insertion order.
// List items and table cells are not nodes themselves; their content is
// visited as children of the enclosing list or table.
func Walk(n Node, fn WalkFunc) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn WalkFunc) {
	if n == nil || !fn(n, depth) {
		return
	}
	switch n := n.(type) {
	case *Heading:
		walkInlines(n.Content, depth+1, fn)
	case *Paragraph:
		walkInlines(n.Content, depth+1, fn)
	case *List:
		for _, item := range n.Items {
			for _, c := range item.Content {
				walk(c, depth+1, fn)
			}
		}
	case *Quote:
		for _, c := range n.Content {
			walk(c, depth+1, fn)
		}
	case *Align:
		for _, c := range n.Content {
			walk(c, depth+1, fn)
		}
	case *Table:
		for _, row := range n.AllRows() {
			for _, cell := range row.Cells {
				walkInlines(cell.Content, depth+1, fn)
			}
		}
	}
}

func walkInlines(inlines []Inline, depth int, fn WalkFunc) {
	for _, in := range inlines {
		walk(in, depth, fn)
	}
}
