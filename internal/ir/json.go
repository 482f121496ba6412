package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Interchange mapping keys. Attribute keys carry the "@" prefix so
// they can never collide with the two structural keys.
const (
	tagKey      = "tag"
	childrenKey = "children"
	attrPrefix  = "@"
)

// MarshalJSON emits the single-tag object shape with a fixed key
// order: tag first, attributes in document order, children last.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	n.encodeJSON(&buf)
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) {
	buf.WriteByte('{')
	writeJSONString(buf, tagKey)
	buf.WriteByte(':')
	writeJSONString(buf, n.Tag)
	for _, a := range n.Attrs {
		buf.WriteByte(',')
		writeJSONString(buf, attrPrefix+a.Name)
		buf.WriteByte(':')
		writeJSONString(buf, a.Value)
	}
	buf.WriteByte(',')
	writeJSONString(buf, childrenKey)
	buf.WriteString(":[")
	for i, c := range n.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		if c.IsText() {
			writeJSONString(buf, c.Text)
			continue
		}
		c.Elem.encodeJSON(buf)
	}
	buf.WriteString("]}")
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

// EncodeJSON renders the node as compact interchange JSON.
func EncodeJSON(n *Node) (string, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeJSONIndent renders the node as indented interchange JSON.
func EncodeJSONIndent(n *Node, indent string) (string, error) {
	b, err := json.MarshalIndent(n, "", indent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeJSON parses interchange JSON into a node. Syntax problems are
// reported as ErrDecode; values that do not satisfy the single-tag
// mapping shape are reported as ErrStructure.
func DecodeJSON(text string) (*Node, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDecode)
	}
	return nodeFromJSON(gjson.Parse(text))
}

func nodeFromJSON(v gjson.Result) (*Node, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: element must be an object, got %s", ErrStructure, v.Type)
	}
	node := &Node{}
	tags := 0
	var walkErr error
	v.ForEach(func(key, val gjson.Result) bool {
		switch {
		case key.Str == tagKey:
			// gjson walks the raw text, so a duplicated key in the
			// input shows up here twice.
			tags++
			if tags > 1 {
				walkErr = fmt.Errorf("%w: multiple %q keys", ErrStructure, tagKey)
				return false
			}
			if val.Type != gjson.String {
				walkErr = fmt.Errorf("%w: %q must be a string", ErrStructure, tagKey)
				return false
			}
			node.Tag = val.Str
		case key.Str == childrenKey:
			if !val.IsArray() {
				walkErr = fmt.Errorf("%w: %q must be a sequence", ErrStructure, childrenKey)
				return false
			}
			for _, item := range val.Array() {
				if item.Type == gjson.String {
					node.Children = append(node.Children, Text(item.Str))
					continue
				}
				sub, err := nodeFromJSON(item)
				if err != nil {
					walkErr = err
					return false
				}
				node.Children = append(node.Children, Elem(sub))
			}
		case strings.HasPrefix(key.Str, attrPrefix):
			if val.Type != gjson.String {
				walkErr = fmt.Errorf("%w: attribute %q must be a string", ErrStructure, key.Str)
				return false
			}
			node.Attrs = append(node.Attrs, Attr{
				Name:  strings.TrimPrefix(key.Str, attrPrefix),
				Value: val.Str,
			})
		default:
			walkErr = fmt.Errorf("%w: unexpected key %q", ErrStructure, key.Str)
			return false
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if tags == 0 {
		return nil, fmt.Errorf("%w: missing %q key", ErrStructure, tagKey)
	}
	return node, nil
}
