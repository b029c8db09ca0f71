package outline

import (
	"regexp"
	"strconv"
	"strings"
)

// htmlTagRE strips markup when falling back to Content for a display label.
var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

// labelFallbackLimit caps Content-derived labels in diagram output.
const labelFallbackLimit = 40

// BuildTreeString renders the subtree below rootID as an indented bullet
// list, two spaces per level. The root's own name is not rendered; its
// children are depth 1. maxDepth stops descending past the given depth
// (0 or negative means unlimited). A root with no children yields "".
func BuildTreeString(nodes NodeMap, rootID string, maxDepth int) string {
	root, ok := nodes[rootID]
	if !ok {
		return ""
	}

	type frame struct {
		id    string
		depth int
	}
	var stack []frame
	for i := len(root.ChildrenIDs) - 1; i >= 0; i-- {
		stack = append(stack, frame{root.ChildrenIDs[i], 1})
	}

	var b strings.Builder
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if maxDepth > 0 && f.depth > maxDepth {
			continue
		}
		n, ok := nodes[f.id]
		if !ok {
			continue
		}
		b.WriteString(strings.Repeat("  ", f.depth-1))
		b.WriteString("- ")
		b.WriteString(n.Name)
		b.WriteString("\n")
		for i := len(n.ChildrenIDs) - 1; i >= 0; i-- {
			stack = append(stack, frame{n.ChildrenIDs[i], f.depth + 1})
		}
	}
	return b.String()
}

// GenerateMindmap renders the subtree at root as Mermaid mindmap syntax:
// a "mindmap" header, the root as root((Name)), and children nested by
// two-space indentation per depth.
func GenerateMindmap(root *Node, nodes NodeMap) string {
	var b strings.Builder
	b.WriteString("mindmap\n")
	b.WriteString("  root((" + diagramLabel(root) + "))\n")

	type frame struct {
		id    string
		depth int
	}
	var stack []frame
	for i := len(root.ChildrenIDs) - 1; i >= 0; i-- {
		stack = append(stack, frame{root.ChildrenIDs[i], 1})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := nodes[f.id]
		if !ok {
			continue
		}
		b.WriteString(strings.Repeat("  ", f.depth+1))
		b.WriteString(diagramLabel(n))
		b.WriteString("\n")
		for i := len(n.ChildrenIDs) - 1; i >= 0; i-- {
			stack = append(stack, frame{n.ChildrenIDs[i], f.depth + 1})
		}
	}
	return b.String()
}

// GenerateFlowchart renders the subtree at root as Mermaid flowchart
// syntax: a "flowchart TD" header, one quoted declaration per node in
// pre-order (n0, n1, ...), then one parent --> child line per edge.
func GenerateFlowchart(root *Node, nodes NodeMap) string {
	ids := map[string]string{}
	order := []*Node{}

	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ids[n.ID] = "n" + strconv.Itoa(len(order))
		order = append(order, n)
		for i := len(n.ChildrenIDs) - 1; i >= 0; i-- {
			if child, ok := nodes[n.ChildrenIDs[i]]; ok {
				stack = append(stack, child)
			}
		}
	}

	var b strings.Builder
	b.WriteString("flowchart TD\n")
	for _, n := range order {
		b.WriteString("    " + ids[n.ID] + "[\"" + diagramLabel(n) + "\"]\n")
	}
	for _, n := range order {
		for _, childID := range n.ChildrenIDs {
			if _, ok := ids[childID]; ok {
				b.WriteString("    " + ids[n.ID] + " --> " + ids[childID] + "\n")
			}
		}
	}
	return b.String()
}

// diagramLabel returns the sanitized display label for a node. A blank
// name falls back to a plain-text rendering of Content, the only place
// outside the markdown importer where Content is inspected.
func diagramLabel(n *Node) string {
	label := sanitizeLabel(n.Name)
	if label == "" {
		label = sanitizeLabel(htmlTagRE.ReplaceAllString(n.Content, " "))
		if r := []rune(label); len(r) > labelFallbackLimit {
			label = string(r[:labelFallbackLimit])
		}
	}
	if label == "" {
		return "Untitled"
	}
	return label
}

// sanitizeLabel replaces diagram-syntax-significant characters with spaces
// and collapses runs of whitespace, so names cannot corrupt the generated
// Mermaid syntax.
func sanitizeLabel(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '[', ']', '{', '}', '"':
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
