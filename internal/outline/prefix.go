package outline

import (
	"strconv"
	"strings"
)

// CalculateNodePrefix returns the dotted positional numbering of a node:
// the 1-based sibling positions from the root's first-level children down
// to the node, joined with ".". The root node and unknown ids yield the
// empty string.
func CalculateNodePrefix(nodes NodeMap, nodeID string) string {
	node, ok := nodes[nodeID]
	if !ok {
		return ""
	}

	var parts []string
	for node.ParentID != "" && node.Type != TypeRoot {
		parent, ok := nodes[node.ParentID]
		if !ok {
			break
		}
		idx := indexOf(parent.ChildrenIDs, node.ID)
		if idx < 0 {
			break
		}
		parts = append(parts, strconv.Itoa(idx+1))
		node = parent
	}

	// Collected innermost-first; reverse into root-to-node order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// prefixFrame is one worklist entry of recalculatePrefixes.
type prefixFrame struct {
	id     string
	prefix string
}

// recalculatePrefixes rewrites the Prefix of every node reachable from a
// root in place. Implemented with an explicit worklist rather than
// recursion so pathologically deep outlines cannot exhaust the stack.
func recalculatePrefixes(nodes NodeMap) {
	var stack []prefixFrame
	for _, n := range nodes {
		if n.ParentID == "" || n.Type == TypeRoot {
			n.Prefix = ""
			stack = pushChildFrames(stack, n, "")
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := nodes[f.id]
		if !ok {
			continue
		}
		n.Prefix = f.prefix
		stack = pushChildFrames(stack, n, f.prefix)
	}
}

// pushChildFrames appends one frame per child of n, carrying the child's
// computed prefix.
func pushChildFrames(stack []prefixFrame, n *Node, parentPrefix string) []prefixFrame {
	for i, childID := range n.ChildrenIDs {
		p := strconv.Itoa(i + 1)
		if parentPrefix != "" {
			p = parentPrefix + "." + p
		}
		stack = append(stack, prefixFrame{id: childID, prefix: p})
	}
	return stack
}
