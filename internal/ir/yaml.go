package ir

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodeYAML renders the node in the same single-tag mapping shape as
// the JSON codec. The document is built as a yaml.Node tree so the
// key order (tag, attributes, children) survives encoding.
func EncodeYAML(n *Node) (string, error) {
	out, err := yaml.Marshal(yamlNode(n))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func yamlNode(n *Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	add := func(key string, val *yaml.Node) {
		m.Content = append(m.Content, yamlScalar(key), val)
	}
	add(tagKey, yamlScalar(n.Tag))
	for _, a := range n.Attrs {
		add(attrPrefix+a.Name, yamlScalar(a.Value))
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, c := range n.Children {
		if c.IsText() {
			seq.Content = append(seq.Content, yamlScalar(c.Text))
			continue
		}
		seq.Content = append(seq.Content, yamlNode(c.Elem))
	}
	if len(seq.Content) == 0 {
		seq.Style = yaml.FlowStyle
	}
	add(childrenKey, seq)
	return m
}

func yamlScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// DecodeYAML parses interchange YAML into a node, with the same error
// split as DecodeJSON: ErrDecode for syntax, ErrStructure for shape.
func DecodeYAML(text string) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) != 1 {
			return nil, fmt.Errorf("%w: expected a single document", ErrStructure)
		}
		root = root.Content[0]
	}
	return nodeFromYAML(root)
}

func nodeFromYAML(v *yaml.Node) (*Node, error) {
	if v.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: element must be a mapping", ErrStructure)
	}
	node := &Node{}
	tags := 0
	for i := 0; i+1 < len(v.Content); i += 2 {
		key, val := v.Content[i], v.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: mapping keys must be scalars", ErrStructure)
		}
		switch {
		case key.Value == tagKey:
			tags++
			if tags > 1 {
				return nil, fmt.Errorf("%w: multiple %q keys", ErrStructure, tagKey)
			}
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: %q must be a string", ErrStructure, tagKey)
			}
			node.Tag = val.Value
		case key.Value == childrenKey:
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%w: %q must be a sequence", ErrStructure, childrenKey)
			}
			for _, item := range val.Content {
				if item.Kind == yaml.ScalarNode {
					if item.Tag != "!!str" {
						return nil, fmt.Errorf("%w: content entry must be a string or an element, got %s", ErrStructure, item.Tag)
					}
					node.Children = append(node.Children, Text(item.Value))
					continue
				}
				sub, err := nodeFromYAML(item)
				if err != nil {
					return nil, err
				}
				node.Children = append(node.Children, Elem(sub))
			}
		case strings.HasPrefix(key.Value, attrPrefix):
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: attribute %q must be a string", ErrStructure, key.Value)
			}
			node.Attrs = append(node.Attrs, Attr{
				Name:  strings.TrimPrefix(key.Value, attrPrefix),
				Value: val.Value,
			})
		default:
			return nil, fmt.Errorf("%w: unexpected key %q", ErrStructure, key.Value)
		}
	}
	if tags == 0 {
		return nil, fmt.Errorf("%w: missing %q key", ErrStructure, tagKey)
	}
	return node, nil
}
