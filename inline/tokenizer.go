package inline

import (
	"math"
	"strconv"

	"github.com/tsawler/marktree/internal/patterns"
	"github.com/tsawler/marktree/model"
)

// candidate is a match of one inline kind within the remaining text.
// start and end are byte offsets relative to the text that was searched.
type candidate struct {
	start, end int
	node       model.Inline
}

func (c candidate) span() int { return c.end - c.start }

// matcher finds the leftmost match of one inline kind in s
type matcher struct {
	name  string
	match func(s string) (candidate, bool)
}

// matchers lists the candidate kinds. The order breaks ties between
// candidates of equal start and length.
var matchers = []matcher{
	{"image", matchImage},
	{"link", matchLink},
	{"bold", matchBold},
	{"italic", matchItalic},
	{"code", matchCode},
}

// Parse converts text into inline nodes. Empty text yields no nodes.
func Parse(text string) []model.Inline {
	if text == "" {
		return nil
	}

	var nodes []model.Inline
	rest := text
	for rest != "" {
		c, ok := nextCandidate(rest)
		if !ok {
			break
		}
		if c.start > 0 {
			nodes = appendText(nodes, rest[:c.start])
		}
		nodes = append(nodes, c.node)
		rest = rest[c.end:]
	}
	if rest != "" {
		nodes = appendText(nodes, rest)
	}
	return mergePeriods(nodes)
}

// nextCandidate gathers the leftmost match of every kind and selects the
// one with the lowest start, preferring the longer span on ties.
func nextCandidate(s string) (candidate, bool) {
	var best candidate
	found := false
	bestKind := ""
	for _, m := range matchers {
		c, ok := m.match(s)
		if !ok {
			continue
		}
		if !found || c.start < best.start || (c.start == best.start && c.span() > best.span()) {
			best, bestKind, found = c, m.name, true
		}
	}
	if found {
		tracer().Debugf("inline: %s at [%d:%d]", bestKind, best.start, best.end)
	}
	return best, found
}

// appendText adds text as a Text node, extending a trailing Text node
// instead of creating a sibling.
func appendText(nodes []model.Inline, text string) []model.Inline {
	if n := len(nodes); n > 0 {
		if prev, ok := nodes[n-1].(*model.Text); ok {
			nodes[n-1] = &model.Text{Content: prev.Content + text}
			return nodes
		}
	}
	return append(nodes, &model.Text{Content: text})
}

// mergePeriods folds a Text node consisting of a single "." into the Text
// node before it.
func mergePeriods(nodes []model.Inline) []model.Inline {
	if len(nodes) < 2 {
		return nodes
	}
	merged := make([]model.Inline, 0, len(nodes))
	for _, n := range nodes {
		if t, ok := n.(*model.Text); ok && t.Content == "." && len(merged) > 0 {
			if prev, ok := merged[len(merged)-1].(*model.Text); ok {
				merged[len(merged)-1] = &model.Text{Content: prev.Content + "."}
				continue
			}
		}
		merged = append(merged, n)
	}
	return merged
}

func matchImage(s string) (candidate, bool) {
	loc := patterns.Image.FindStringSubmatchIndex(s)
	if loc == nil {
		return candidate{}, false
	}
	img := &model.Image{
		Content: s[loc[2]:loc[3]],
		URL:     s[loc[4]:loc[5]],
	}
	if loc[6] >= 0 {
		img.Size, img.CSS = parseImageAttributes(s[loc[6]:loc[7]])
	}
	return candidate{start: loc[0], end: loc[1], node: img}, true
}

// parseImageAttributes reads size and css from an attribute block such as
// {size=0.5, css="rounded"}.
func parseImageAttributes(attrs string) (*float64, string) {
	var size *float64
	if m := patterns.ImageSizeAttr.FindStringSubmatch(attrs); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && !math.IsNaN(v) {
			v = math.Max(0, math.Min(1, v))
			size = &v
		} else {
			tracer().Debugf("inline: ignoring image size %q", m[1])
		}
	}
	var css string
	if m := patterns.ImageCSSAttr.FindStringSubmatch(attrs); m != nil {
		css = m[1]
	}
	return size, css
}

func matchLink(s string) (candidate, bool) {
	loc := patterns.Link.FindStringSubmatchIndex(s)
	if loc == nil {
		return candidate{}, false
	}
	link := &model.Link{
		Content: s[loc[2]:loc[3]],
		URL:     s[loc[4]:loc[5]],
	}
	if loc[6] >= 0 {
		link.Title = s[loc[6]:loc[7]]
	}
	return candidate{start: loc[0], end: loc[1], node: link}, true
}

func matchBold(s string) (candidate, bool) {
	loc := patterns.Bold.FindStringSubmatchIndex(s)
	if loc == nil {
		return candidate{}, false
	}
	var content string
	if loc[2] >= 0 {
		content = s[loc[2]:loc[3]]
	} else {
		content = s[loc[4]:loc[5]]
	}
	return candidate{start: loc[0], end: loc[1], node: &model.Bold{Content: content}}, true
}

func matchCode(s string) (candidate, bool) {
	loc := patterns.InlineCode.FindStringSubmatchIndex(s)
	if loc == nil {
		return candidate{}, false
	}
	return candidate{start: loc[0], end: loc[1], node: &model.Code{Content: s[loc[2]:loc[3]]}}, true
}

// matchItalic returns the leftmost of the asterisk and underscore forms
func matchItalic(s string) (candidate, bool) {
	a, aok := matchAsteriskItalic(s)
	u, uok := matchUnderscoreItalic(s)
	switch {
	case aok && uok:
		if u.start < a.start {
			return u, true
		}
		return a, true
	case aok:
		return a, true
	case uok:
		return u, true
	}
	return candidate{}, false
}

// matchAsteriskItalic finds *content* where neither marker touches another
// '*'. The content is the shortest run without a newline, and may itself
// contain doubled asterisks.
func matchAsteriskItalic(s string) (candidate, bool) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		if s[i] != '*' || (i > 0 && s[i-1] == '*') || s[i+1] == '*' {
			continue
		}
		for j := i + 1; j < n; j++ {
			if s[j] == '\n' {
				break
			}
			if j > i+1 && s[j] == '*' && s[j-1] != '*' && (j+1 == n || s[j+1] != '*') {
				return candidate{start: i, end: j + 1, node: &model.Italic{Content: s[i+1 : j]}}, true
			}
		}
	}
	return candidate{}, false
}

// matchUnderscoreItalic finds _content_ where content has no underscore and
// neither marker touches another '_'.
func matchUnderscoreItalic(s string) (candidate, bool) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		if s[i] != '_' || (i > 0 && s[i-1] == '_') || s[i+1] == '_' {
			continue
		}
		j := i + 2
		for j < n && s[j] != '_' {
			j++
		}
		if j >= n {
			// no closing marker anywhere further right either
			return candidate{}, false
		}
		if j+1 == n || s[j+1] != '_' {
			return candidate{start: i, end: j + 1, node: &model.Italic{Content: s[i+1 : j]}}, true
		}
	}
	return candidate{}, false
}
