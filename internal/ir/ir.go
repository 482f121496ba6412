// Package ir defines the intermediate representation shared by the XML
// and interchange sides of a conversion: a single-tag element mapping
// with ordered attributes and an ordered list of interleaved text runs
// and child elements.
package ir

// Node is the pivot shape between an XML element tree and an
// interchange document. It is a tagged variant: exactly one tag, plus
// ordered attributes and ordered children. The single-tag invariant is
// enforced when interchange text is decoded, so a Node in hand is
// always well formed.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []Child
}

// Attr is a single attribute, kept in the order the parser yielded it.
type Attr struct {
	Name  string
	Value string
}

// Child is one ordered content entry of an element: a text run when
// Elem is nil, a nested element otherwise.
type Child struct {
	Text string
	Elem *Node
}

// Text wraps a text run as a child entry.
func Text(s string) Child { return Child{Text: s} }

// Elem wraps a nested element as a child entry.
func Elem(n *Node) Child { return Child{Elem: n} }

// IsText reports whether the entry is a text run.
func (c Child) IsText() bool { return c.Elem == nil }

// New returns an element node with no attributes and no children.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// SetAttr appends an attribute and returns the node for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Append adds child entries in order and returns the node for chaining.
func (n *Node) Append(children ...Child) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Equal reports structural equality: same tag, same attributes in the
// same order, same children recursively. Nil and empty child lists
// compare equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Children {
		ac, bc := a.Children[i], b.Children[i]
		if ac.IsText() != bc.IsText() {
			return false
		}
		if ac.IsText() {
			if ac.Text != bc.Text {
				return false
			}
			continue
		}
		if !Equal(ac.Elem, bc.Elem) {
			return false
		}
	}
	return true
}
