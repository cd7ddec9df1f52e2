package render

import (
	"io"

	"github.com/npillmayer/bubble"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLNode returns the contents of b as an HTML table node:
//
//	<table class="bubble">
//	  <tr><th>20</th><td>22 30 35</td></tr>
//	  …
//	</table>
//
// Bucket rows without overflow keys carry class "nooverflow".
func HTMLNode[K any](b *bubble.Bubble[K]) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "bubble"})
	for _, r := range rows(b) {
		tr := element(atom.Tr)
		if len(r.overflow) == 0 {
			tr.Attr = append(tr.Attr, html.Attribute{Key: "class", Val: "nooverflow"})
		}
		th := element(atom.Th)
		th.AppendChild(&html.Node{Type: html.TextNode, Data: r.key})
		td := element(atom.Td)
		td.AppendChild(&html.Node{Type: html.TextNode, Data: r.overflowString()})
		tr.AppendChild(th)
		tr.AppendChild(td)
		table.AppendChild(tr)
	}
	return table
}

// HTML writes the contents of b as an HTML table to w. Keys are escaped.
func HTML[K any](b *bubble.Bubble[K], w io.Writer) error {
	return html.Render(w, HTMLNode(b))
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
