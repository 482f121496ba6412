package ir

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeYAMLKeyOrder(t *testing.T) {
	node := New("e").SetAttr("name", "value").Append(Text("hello"))
	out, err := EncodeYAML(node)
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}

	tagIdx := strings.Index(out, "tag:")
	attrIdx := strings.Index(out, "@name")
	childrenIdx := strings.Index(out, "children:")
	if tagIdx < 0 || attrIdx < 0 || childrenIdx < 0 {
		t.Fatalf("missing keys in output:\n%s", out)
	}
	if !(tagIdx < attrIdx && attrIdx < childrenIdx) {
		t.Errorf("keys out of order (tag=%d attr=%d children=%d):\n%s", tagIdx, attrIdx, childrenIdx, out)
	}
}

func TestEncodeYAMLEmptyChildren(t *testing.T) {
	out, err := EncodeYAML(New("e"))
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	if !strings.Contains(out, "children: []") {
		t.Errorf("expected inline empty sequence, got:\n%s", out)
	}
}

func TestDecodeYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Node
	}{
		{
			name:     "flow mapping",
			input:    `{tag: e, "@a": "1", children: []}`,
			expected: New("e").SetAttr("a", "1"),
		},
		{
			name: "block mapping with nested element",
			input: "tag: e\nchildren:\n  - before\n  - tag: a\n    children:\n      - x\n",
			expected: New("e").Append(
				Text("before"),
				Elem(New("a").Append(Text("x"))),
			),
		},
		{
			name:     "quoted numeric text stays text",
			input:    "tag: e\nchildren:\n  - \"1\"\n",
			expected: New("e").Append(Text("1")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := DecodeYAML(tt.input)
			if err != nil {
				t.Fatalf("DecodeYAML failed: %v", err)
			}
			if !Equal(actual, tt.expected) {
				t.Errorf("DecodeYAML(%q) mismatch", tt.input)
			}
		})
	}
}

func TestDecodeYAMLSyntaxError(t *testing.T) {
	_, err := DecodeYAML("tag: [unclosed")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestDecodeYAMLStructureErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"scalar document", "just text"},
		{"sequence document", "- a\n- b"},
		{"scalar children", "tag: e\nchildren: x"},
		{"missing tag", "'@a': '1'\nchildren: []"},
		{"unexpected key", "tag: e\nextra: x"},
		{"unquoted integer content", "tag: e\nchildren:\n  - 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML(tt.input)
			if !errors.Is(err, ErrStructure) {
				t.Errorf("DecodeYAML(%q) error = %v, want ErrStructure", tt.input, err)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	node := New("root").SetAttr("version", "2").Append(
		Text("lead"),
		Elem(New("a").Append(Text("1"))),
		Text("between"),
		Elem(New("a").Append(Text("2"))),
	)
	out, err := EncodeYAML(node)
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	back, err := DecodeYAML(out)
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}
	if !Equal(node, back) {
		t.Errorf("round trip changed the node:\n%s", out)
	}
}
