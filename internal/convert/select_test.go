package convert

import (
	"testing"
)

func TestSelect(t *testing.T) {
	root, err := Parse(`<catalog><entry id="a1">x</entry><entry id="a2">y</entry></catalog>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	el, err := Select(root, "//entry[@id='a2']")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	node := FromElement(el, false)
	if v, _ := node.Attr("id"); node.Tag != "entry" || v != "a2" {
		t.Errorf("selected wrong element: tag=%s id=%s", node.Tag, v)
	}
}

func TestSelectErrors(t *testing.T) {
	root, err := Parse(`<catalog/>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := Select(root, "//entry["); err == nil {
		t.Error("expected error for malformed query")
	}
	if _, err := Select(root, "//missing"); err == nil {
		t.Error("expected error for query with no match")
	}
}
