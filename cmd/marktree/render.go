package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/pterm/pterm"

	"github.com/tsawler/marktree"
	"github.com/tsawler/marktree/model"
)

// debugTree pretty-prints the document structure with all fields
func debugTree(doc *model.Document) string {
	return pp.Sprint(doc)
}

// outlineNodes converts the heading outline into pterm tree nodes
func outlineNodes(nodes []*model.OutlineNode) []pterm.TreeNode {
	out := make([]pterm.TreeNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, pterm.TreeNode{
			Text:     fmt.Sprintf("%s (h%d)", n.Text, n.Level),
			Children: outlineNodes(n.Children),
		})
	}
	return out
}

func outlineTree(nodes []*model.OutlineNode) (string, error) {
	if len(nodes) == 0 {
		return "(no headings)\n", nil
	}
	root := pterm.TreeNode{Text: "Document", Children: outlineNodes(nodes)}
	return pterm.DefaultTree.WithRoot(root).Srender()
}

// statsRows lists document statistics as table rows. Node counts follow in
// name order after the totals.
func statsRows(stats marktree.Stats) pterm.TableData {
	rows := pterm.TableData{
		{"Statistic", "Value"},
		{"Size", humanize.Bytes(uint64(stats.Bytes))},
		{"Words", humanize.Comma(int64(stats.Words))},
		{"Characters", humanize.Comma(int64(stats.Characters))},
		{"Headings", humanize.Comma(int64(stats.Headings))},
		{"Blocks", humanize.Comma(int64(stats.BlockCount()))},
		{"Inlines", humanize.Comma(int64(stats.InlineCount()))},
	}

	var counts [][]string
	for bt, n := range stats.Blocks {
		counts = append(counts, []string{"  " + bt.String(), humanize.Comma(int64(n))})
	}
	for it, n := range stats.Inlines {
		counts = append(counts, []string{"  " + it.String(), humanize.Comma(int64(n))})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i][0] < counts[j][0] })
	return append(rows, counts...)
}

func statsTable(stats marktree.Stats) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(statsRows(stats)).Srender()
}
