package convert

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/mobyle2/xmlbridge/internal/ir"
)

// ToElement reconstructs an XML element tree from an IR node. Children
// are appended in sequence order, so a text run before the first child
// element becomes the element's leading text and every later run lands
// between the elements around it, exactly where it sat in the source
// document.
func ToElement(n *ir.Node) *xmlquery.Node {
	el := &xmlquery.Node{Type: xmlquery.ElementNode}
	el.Prefix, el.Data = splitName(n.Tag)
	for _, a := range n.Attrs {
		space, local := splitName(a.Name)
		el.Attr = append(el.Attr, xmlquery.Attr{
			Name:  xml.Name{Space: space, Local: local},
			Value: a.Value,
		})
	}
	for _, c := range n.Children {
		if c.IsText() {
			xmlquery.AddChild(el, &xmlquery.Node{Type: xmlquery.TextNode, Data: c.Text})
			continue
		}
		xmlquery.AddChild(el, ToElement(c.Elem))
	}
	return el
}

// Serialize renders an element subtree as XML text. Text runs are
// written verbatim apart from entity escaping, so whitespace survives
// the trip. No declaration is emitted.
func Serialize(el *xmlquery.Node) string {
	var buf bytes.Buffer
	writeNode(&buf, el)
	return buf.String()
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#xA;", "\t", "&#x9;", "\r", "&#xD;",
	)
)

func writeNode(buf *bytes.Buffer, n *xmlquery.Node) {
	switch n.Type {
	case xmlquery.ElementNode:
		name := elementName(n)
		buf.WriteByte('<')
		buf.WriteString(name)
		for _, attr := range n.Attr {
			buf.WriteByte(' ')
			buf.WriteString(attrName(attr))
			buf.WriteString(`="`)
			buf.WriteString(attrEscaper.Replace(attr.Value))
			buf.WriteByte('"')
		}
		if n.FirstChild == nil {
			buf.WriteString("/>")
			return
		}
		buf.WriteByte('>')
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			writeNode(buf, child)
		}
		buf.WriteString("</")
		buf.WriteString(name)
		buf.WriteByte('>')
	case xmlquery.TextNode, xmlquery.CharDataNode:
		buf.WriteString(textEscaper.Replace(n.Data))
	}
}

func splitName(name string) (prefix, local string) {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
