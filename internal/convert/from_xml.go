// Package convert implements the bidirectional mapping between XML
// element trees and the interchange representation, plus the
// text-to-text conversion facade built on it.
package convert

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/mobyle2/xmlbridge/internal/ir"
)

// Parse parses an XML document and returns its root element.
func Parse(text string) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child, nil
		}
	}
	return nil, fmt.Errorf("%w: no root element", ir.ErrParse)
}

// FromElement converts an XML element and its subtree into an IR node.
// Text runs and child elements keep their document order; adjacent
// text and CDATA sections coalesce into a single run. When strip is
// set, runs are trimmed and runs that are empty after trimming are
// dropped. Comments, processing instructions and declarations have no
// interchange representation and are skipped.
func FromElement(el *xmlquery.Node, strip bool) *ir.Node {
	node := &ir.Node{Tag: elementName(el), Children: []ir.Child{}}
	for _, attr := range el.Attr {
		node.Attrs = append(node.Attrs, ir.Attr{Name: attrName(attr), Value: attr.Value})
	}

	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		text := run.String()
		run.Reset()
		if strip {
			text = strings.TrimSpace(text)
			if text == "" {
				return
			}
		}
		node.Children = append(node.Children, ir.Text(text))
	}

	for child := el.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			run.WriteString(child.Data)
		case xmlquery.ElementNode:
			flush()
			node.Children = append(node.Children, ir.Elem(FromElement(child, strip)))
		}
	}
	flush()
	return node
}

func elementName(el *xmlquery.Node) string {
	if el.Prefix != "" {
		return el.Prefix + ":" + el.Data
	}
	return el.Data
}

func attrName(attr xmlquery.Attr) string {
	if attr.Name.Space != "" {
		return attr.Name.Space + ":" + attr.Name.Local
	}
	return attr.Name.Local
}
