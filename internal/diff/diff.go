// Package diff verifies conversions by running them through a full
// round trip and diffing the first-pass output against the second.
package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/mobyle2/xmlbridge/internal/convert"
)

// RoundTrip converts text forward, back, and forward again for the
// given direction, then diffs the two forward passes. A converter that
// preserves document structure produces no differences. The returned
// string is a rendered unified diff, empty when clean.
func RoundTrip(name, text, direction string, strip bool) (rendered string, clean bool, err error) {
	first, second, err := passes(text, direction, strip)
	if err != nil {
		return "", false, err
	}
	if first == second {
		return "", true, nil
	}

	edits := myers.ComputeEdits(span.URIFromPath(name), first, second)
	unified := fmt.Sprint(gotextdiff.ToUnified(name+" (first pass)", name+" (second pass)", first, edits))
	return render(unified), false, nil
}

func passes(text, direction string, strip bool) (first, second string, err error) {
	switch direction {
	case "xml2json":
		first, err = convert.XMLToJSON(text, strip)
		if err != nil {
			return "", "", err
		}
		back, err := convert.JSONToXML(first)
		if err != nil {
			return "", "", err
		}
		second, err = convert.XMLToJSON(back, strip)
		return first, second, err
	case "xml2yaml":
		first, err = convert.XMLToYAML(text, strip)
		if err != nil {
			return "", "", err
		}
		back, err := convert.YAMLToXML(first)
		if err != nil {
			return "", "", err
		}
		second, err = convert.XMLToYAML(back, strip)
		return first, second, err
	case "yaml2xml":
		first, err = convert.YAMLToXML(text)
		if err != nil {
			return "", "", err
		}
		back, err := convert.XMLToYAML(first, false)
		if err != nil {
			return "", "", err
		}
		second, err = convert.YAMLToXML(back)
		return first, second, err
	default:
		first, err = convert.JSONToXML(text)
		if err != nil {
			return "", "", err
		}
		back, err := convert.XMLToJSON(first, false)
		if err != nil {
			return "", "", err
		}
		second, err = convert.JSONToXML(back)
		return first, second, err
	}
}

// render wraps the unified diff in a markdown code fence and renders
// it with Glamour, falling back to the plain diff when rendering is
// unavailable.
func render(unified string) string {
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}
	return rendered
}
