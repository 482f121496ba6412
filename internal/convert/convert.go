package convert

import (
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/mobyle2/xmlbridge/internal/ir"
)

// XMLToJSON converts an XML document to interchange JSON.
func XMLToJSON(text string, strip bool) (string, error) {
	root, err := Parse(text)
	if err != nil {
		return "", err
	}
	return ir.EncodeJSON(FromElement(root, strip))
}

// JSONToXML converts interchange JSON back to an XML document.
func JSONToXML(text string) (string, error) {
	node, err := ir.DecodeJSON(text)
	if err != nil {
		return "", err
	}
	return Serialize(ToElement(node)), nil
}

// XMLToYAML converts an XML document to interchange YAML.
func XMLToYAML(text string, strip bool) (string, error) {
	root, err := Parse(text)
	if err != nil {
		return "", err
	}
	return ir.EncodeYAML(FromElement(root, strip))
}

// YAMLToXML converts interchange YAML back to an XML document.
func YAMLToXML(text string) (string, error) {
	node, err := ir.DecodeYAML(text)
	if err != nil {
		return "", err
	}
	return Serialize(ToElement(node)), nil
}

// Select returns the first element matching the XPath expression,
// searching from the document root.
func Select(root *xmlquery.Node, query string) (*xmlquery.Node, error) {
	expr, err := xpath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	n := xmlquery.QuerySelector(root, expr)
	if n == nil {
		return nil, fmt.Errorf("query %q matched no node", query)
	}
	if n.Type != xmlquery.ElementNode {
		return nil, fmt.Errorf("query %q did not select an element", query)
	}
	return n, nil
}
