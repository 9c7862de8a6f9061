package model

import "github.com/emirpasic/gods/stacks/arraystack"

// OutlineNode is a heading with the headings nested below it
type OutlineNode struct {
	TOCEntry
	Children []*OutlineNode
}

// Outline arranges the table of contents as a tree. A heading becomes a
// child of the closest preceding heading with a lower level; skipped levels
// do not create intermediate nodes.
func (d *Document) Outline() []*OutlineNode {
	var roots []*OutlineNode
	open := arraystack.New()
	for _, entry := range d.TableOfContents() {
		node := &OutlineNode{TOCEntry: entry}
		for !open.Empty() {
			top, _ := open.Peek()
			if top.(*OutlineNode).Level < entry.Level {
				break
			}
			open.Pop()
		}
		if top, ok := open.Peek(); ok {
			parent := top.(*OutlineNode)
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
		open.Push(node)
	}
	return roots
}

// Depth returns the number of levels in the subtree rooted at n
func (n *OutlineNode) Depth() int {
	depth := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > depth {
			depth = d
		}
	}
	return depth + 1
}
