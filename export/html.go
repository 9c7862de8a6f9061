package export

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/shurcooL/sanitized_anchor_name"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/marktree/model"
)

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// HTML renders doc as HTML. By default the result is a fragment; use
// WithFragment(false) for a complete page. Text is escaped by the renderer.
func HTML(doc *model.Document, opts ...Option) (string, error) {
	r := &htmlRenderer{
		cfg: newConfig(opts),
		ids: make(map[string]int),
	}

	root := &html.Node{Type: html.DocumentNode}
	container := root
	if !r.cfg.fragment {
		container = r.page(root, doc)
	}
	for i, b := range doc.Blocks {
		if i > 0 {
			container.AppendChild(textNode("\n"))
		}
		container.AppendChild(r.block(b))
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}

type htmlRenderer struct {
	cfg config
	ids map[string]int
}

// page builds the html, head and body skeleton under root and returns body
func (r *htmlRenderer) page(root *html.Node, doc *model.Document) *html.Node {
	title := r.cfg.title
	if title == "" {
		if headings := doc.Headings(); len(headings) > 0 {
			title = model.InlineText(headings[0].Content)
		} else {
			title = "Document"
		}
	}

	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlEl := element(atom.Html)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	titleEl := element(atom.Title)
	titleEl.AppendChild(textNode(title))
	head.AppendChild(titleEl)
	body := element(atom.Body)
	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)
	root.AppendChild(htmlEl)
	return body
}

func (r *htmlRenderer) block(b model.Block) *html.Node {
	switch b := b.(type) {
	case *model.Heading:
		level := b.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		h := element(headingAtoms[level-1])
		if id := r.headingID(model.InlineText(b.Content)); id != "" {
			h.Attr = append(h.Attr, attr("id", id))
		}
		r.appendInlines(h, b.Content)
		return h
	case *model.Paragraph:
		p := element(atom.P)
		r.appendInlines(p, b.Content)
		return p
	case *model.List:
		return r.list(b)
	case *model.Quote:
		return r.quote(b)
	case *model.CodeBlock:
		return r.code(b)
	case *model.Table:
		return r.table(b)
	case *model.HorizontalRule:
		return element(atom.Hr)
	case *model.Align:
		div := element(atom.Div)
		if r.cfg.extensions && b.Alignment != model.AlignNone {
			div.Attr = append(div.Attr, attr("style", "text-align:"+b.Alignment.String()))
		}
		r.appendNodes(div, b.Content)
		return div
	default:
		return &html.Node{Type: html.CommentNode, Data: fmt.Sprintf(" unsupported block %T ", b)}
	}
}

// headingID derives a unique anchor name from heading text. Repeated names
// get a numeric suffix.
func (r *htmlRenderer) headingID(text string) string {
	id := sanitized_anchor_name.Create(text)
	if id == "" {
		return ""
	}
	n := r.ids[id]
	r.ids[id] = n + 1
	if n > 0 {
		id += "-" + strconv.Itoa(n)
	}
	return id
}

func (r *htmlRenderer) list(l *model.List) *html.Node {
	var el *html.Node
	if l.Ordered {
		el = element(atom.Ol)
		if start := l.StartNumber(); start != 1 {
			el.Attr = append(el.Attr, attr("start", strconv.Itoa(start)))
		}
	} else {
		el = element(atom.Ul)
	}
	for _, item := range l.Items {
		li := element(atom.Li)
		r.appendNodes(li, item.Content)
		el.AppendChild(li)
	}
	return el
}

// quote nests one blockquote element per quote level
func (r *htmlRenderer) quote(q *model.Quote) *html.Node {
	outer := element(atom.Blockquote)
	inner := outer
	for i := 1; i < q.Level; i++ {
		next := element(atom.Blockquote)
		inner.AppendChild(next)
		inner = next
	}
	r.appendNodes(inner, q.Content)
	return outer
}

func (r *htmlRenderer) code(c *model.CodeBlock) *html.Node {
	pre := element(atom.Pre)
	code := element(atom.Code)
	if c.Language != "" {
		code.Attr = append(code.Attr, attr("class", "language-"+c.Language))
	}
	if r.cfg.extensions && c.Filename != "" {
		code.Attr = append(code.Attr, attr("data-filename", c.Filename))
	}
	code.AppendChild(textNode(c.Code))
	pre.AppendChild(code)
	return pre
}

func (r *htmlRenderer) table(t *model.Table) *html.Node {
	table := element(atom.Table)
	thead := element(atom.Thead)
	thead.AppendChild(r.row(t.Header, atom.Th))
	table.AppendChild(thead)

	if len(t.Rows) > 0 {
		tbody := element(atom.Tbody)
		for _, row := range t.Rows {
			tbody.AppendChild(r.row(row, atom.Td))
		}
		table.AppendChild(tbody)
	}
	return table
}

func (r *htmlRenderer) row(row model.TableRow, cellAtom atom.Atom) *html.Node {
	tr := element(atom.Tr)
	for _, cell := range row.Cells {
		c := element(cellAtom)
		if cell.Alignment != model.AlignNone {
			c.Attr = append(c.Attr, attr("style", "text-align:"+cell.Alignment.String()))
		}
		r.appendInlines(c, cell.Content)
		tr.AppendChild(c)
	}
	return tr
}

func (r *htmlRenderer) appendNodes(parent *html.Node, nodes []model.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case model.Block:
			parent.AppendChild(r.block(n))
		case model.Inline:
			parent.AppendChild(r.inline(n))
		}
	}
}

func (r *htmlRenderer) appendInlines(parent *html.Node, inlines []model.Inline) {
	for _, in := range inlines {
		parent.AppendChild(r.inline(in))
	}
}

func (r *htmlRenderer) inline(in model.Inline) *html.Node {
	switch in := in.(type) {
	case *model.Text:
		return textNode(in.Content)
	case *model.Bold:
		return wrap(atom.Strong, in.Content)
	case *model.Italic:
		return wrap(atom.Em, in.Content)
	case *model.Code:
		return wrap(atom.Code, in.Content)
	case *model.Link:
		a := wrap(atom.A, in.Content)
		a.Attr = append(a.Attr, attr("href", in.URL))
		if in.Title != "" {
			a.Attr = append(a.Attr, attr("title", in.Title))
		}
		return a
	case *model.Image:
		return r.image(in)
	default:
		return textNode(in.Literal())
	}
}

func (r *htmlRenderer) image(img *model.Image) *html.Node {
	el := element(atom.Img, attr("src", img.URL), attr("alt", img.Alt()))
	if img.Title != "" {
		el.Attr = append(el.Attr, attr("title", img.Title))
	}
	if !r.cfg.extensions {
		return el
	}
	if style := imageStyle(img); style != "" {
		el.Attr = append(el.Attr, attr("style", style))
	}
	return el
}

// imageStyle combines the size attribute with the declarations of the css
// attribute. Unparsable css is passed through unchanged.
func imageStyle(img *model.Image) string {
	var decls []string
	if img.Size != nil {
		pct := strconv.FormatFloat(math.Round(*img.Size*10000)/100, 'f', -1, 64)
		decls = append(decls, "width: "+pct+"%;")
	}
	if css := strings.TrimSpace(img.CSS); css != "" {
		parsed, err := parser.ParseDeclarations(css)
		if err != nil || len(parsed) == 0 {
			decls = append(decls, css)
		} else {
			for _, d := range parsed {
				decls = append(decls, d.String())
			}
		}
	}
	return strings.Join(decls, " ")
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func wrap(a atom.Atom, text string) *html.Node {
	el := element(a)
	el.AppendChild(textNode(text))
	return el
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
