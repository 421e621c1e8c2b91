package lint

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxNodeWidth bounds the rendered representation of a node.
const maxNodeWidth = 120

// RenderNode renders a parsed YAML node for error output: one line, nested
// content elided, prefixed with the node's source line. Plugins that report
// structural issues use this instead of quoting raw file content. Scalar
// values inside mappings are elided to "..." unless keepText is set.
func RenderNode(node *yaml.Node, keepText bool) string {
	s := renderValue(node, keepText)
	if len(s) > maxNodeWidth {
		s = s[:maxNodeWidth-3] + "..."
	}
	return fmt.Sprintf("   line %d: %s", node.Line, s)
}

func renderValue(node *yaml.Node, keepText bool) string {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			return renderValue(node.Content[0], keepText)
		}
		return ""
	case yaml.AliasNode:
		return "*" + node.Value
	case yaml.ScalarNode:
		return node.Value
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return "[]"
		}
		return fmt.Sprintf("[... %d items]", len(node.Content))
	case yaml.MappingNode:
		var pairs []string
		// Content holds alternating key and value nodes.
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]
			rendered := "..."
			if value.Kind == yaml.ScalarNode && keepText {
				rendered = value.Value
			}
			pairs = append(pairs, fmt.Sprintf("%s: %s", key.Value, rendered))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return node.Value
	}
}
