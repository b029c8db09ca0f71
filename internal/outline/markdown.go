package outline

import (
	"regexp"
	"strings"
)

// bulletRE matches a markdown bullet line: leading whitespace, a "-" or
// "*" marker, then the item text. Headers, prose, and blank lines do not
// match and are ignored by the importer.
var bulletRE = regexp.MustCompile(`^([ \t]*)[-*][ \t]+(.*)$`)

// indentUnit is the number of leading spaces that make one nesting level.
const indentUnit = 2

// ParseMarkdown converts a markdown bullet list into a fresh node store
// rooted at a synthetic root named topicName. Indentation (two spaces or
// one tab per level) determines nesting: a line more indented than its predecessor
// becomes that predecessor's child; equal or lesser indentation returns to
// the matching ancestor. Item text is split on the first ":" into name and
// content.
//
// Bullets that gain children are typed chapter; leaves are documents. The
// returned store satisfies every tree invariant, prefixes included.
func ParseMarkdown(markdownText, topicName string) (string, NodeMap) {
	rootID := NewNodeID()
	nodes := NodeMap{
		rootID: {
			ID:          rootID,
			Name:        topicName,
			Type:        TypeRoot,
			ChildrenIDs: []string{},
		},
	}

	// Indent stack: each entry is an open ancestor at a strictly
	// increasing indent level.
	type entry struct {
		level int
		id    string
	}
	stack := []entry{{level: -1, id: rootID}}

	for _, line := range strings.Split(markdownText, "\n") {
		m := bulletRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		level := indentLevel(m[1])
		name, content := splitNameContent(m[2])

		for len(stack) > 1 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		parent := nodes[stack[len(stack)-1].id]

		id := NewNodeID()
		nodes[id] = &Node{
			ID:          id,
			Name:        name,
			Content:     content,
			Type:        TypeDocument,
			ParentID:    parent.ID,
			ChildrenIDs: []string{},
		}
		parent.ChildrenIDs = append(parent.ChildrenIDs, id)
		promoteOnGain(parent)

		stack = append(stack, entry{level: level, id: id})
	}

	recalculatePrefixes(nodes)
	return rootID, nodes
}

// indentLevel converts a bullet line's leading whitespace into a nesting
// level: one tab counts as a full level, spaces count per indentUnit.
func indentLevel(indent string) int {
	tabs := strings.Count(indent, "\t")
	spaces := len(indent) - tabs
	return tabs + spaces/indentUnit
}

// splitNameContent splits bullet text on the first ":" into a name and
// trimmed content; text without a colon is all name.
func splitNameContent(text string) (name, content string) {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, ":"); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:])
	}
	return text, ""
}
