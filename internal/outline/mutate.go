package outline

// Position is the placement of a moved node relative to its target.
type Position string

const (
	// PositionBefore inserts the node as the sibling preceding the target.
	PositionBefore Position = "before"
	// PositionAfter inserts the node as the sibling following the target.
	PositionAfter Position = "after"
	// PositionInside appends the node as the target's last child.
	PositionInside Position = "inside"
)

// NodeUpdate carries the fields to shallow-merge into a node. Nil fields
// are left untouched; structural fields (parent, children) are never
// updatable through it.
type NodeUpdate struct {
	Name        *string
	Content     *string
	Type        *NodeType
	IsCollapsed *bool
}

// AddNode creates a new node of the given type under parentID, appended as
// the last child. It returns the new node store and the new node's id.
// When parentID is unknown the original store is returned with an empty id
// (soft no-op, never an error).
//
// Adding uncollapses the parent and promotes a document parent to chapter.
func AddNode(nodes NodeMap, parentID string, typ NodeType, name, content string) (NodeMap, string) {
	if _, ok := nodes[parentID]; !ok {
		return nodes, ""
	}

	next := nodes.clone()
	newID := NewNodeID()
	next[newID] = &Node{
		ID:          newID,
		Name:        name,
		Content:     content,
		Type:        typ,
		ParentID:    parentID,
		ChildrenIDs: []string{},
	}

	parent := next[parentID]
	parent.ChildrenIDs = append(parent.ChildrenIDs, newID)
	parent.IsCollapsed = false
	promoteOnGain(parent)

	recalculatePrefixes(next)
	return next, newID
}

// AddNodeAfter creates a new node as the sibling immediately following
// afterID. When afterID is the root (no parent to insert into) it falls
// back to AddNode semantics, appending as the root's last child. Unknown
// afterID is a soft no-op with an empty id.
func AddNodeAfter(nodes NodeMap, afterID string, typ NodeType, name, content string) (NodeMap, string) {
	after, ok := nodes[afterID]
	if !ok {
		return nodes, ""
	}
	if after.ParentID == "" || after.Type == TypeRoot {
		return AddNode(nodes, afterID, typ, name, content)
	}
	if _, ok := nodes[after.ParentID]; !ok {
		return nodes, ""
	}

	next := nodes.clone()
	newID := NewNodeID()
	next[newID] = &Node{
		ID:          newID,
		Name:        name,
		Content:     content,
		Type:        typ,
		ParentID:    after.ParentID,
		ChildrenIDs: []string{},
	}

	parent := next[after.ParentID]
	idx := indexOf(parent.ChildrenIDs, afterID)
	parent.ChildrenIDs = insertID(parent.ChildrenIDs, idx+1, newID)
	parent.IsCollapsed = false
	promoteOnGain(parent)

	recalculatePrefixes(next)
	return next, newID
}

// RemoveNode deletes nodeID and its entire subtree. The second return
// reports whether anything changed; an unknown id returns the original
// store and false.
//
// A chapter parent left childless is demoted back to document.
func RemoveNode(nodes NodeMap, nodeID string) (NodeMap, bool) {
	node, ok := nodes[nodeID]
	if !ok {
		return nodes, false
	}

	next := nodes.clone()
	for _, id := range collectSubtree(next, nodeID) {
		delete(next, id)
	}

	if parent, ok := next[node.ParentID]; ok {
		if idx := indexOf(parent.ChildrenIDs, nodeID); idx >= 0 {
			parent.ChildrenIDs = append(parent.ChildrenIDs[:idx], parent.ChildrenIDs[idx+1:]...)
		}
		demoteOnLoss(parent)
	}

	recalculatePrefixes(next)
	return next, true
}

// UpdateNode shallow-merges upd into the node. The second return reports
// whether anything changed; an unknown id returns the original store and
// false.
func UpdateNode(nodes NodeMap, nodeID string, upd NodeUpdate) (NodeMap, bool) {
	if _, ok := nodes[nodeID]; !ok {
		return nodes, false
	}

	next := nodes.clone()
	node := next[nodeID]
	if upd.Name != nil {
		node.Name = *upd.Name
	}
	if upd.Content != nil {
		node.Content = *upd.Content
	}
	if upd.Type != nil {
		node.Type = *upd.Type
	}
	if upd.IsCollapsed != nil {
		node.IsCollapsed = *upd.IsCollapsed
	}
	return next, true
}

// MoveNode relocates nodeID (and its subtree) before, after, or inside
// targetID. It returns nil, the explicit failure sentinel, for a
// self-move or a move into the node's own subtree, both of which would
// create a cycle. Unknown ids and a before/after target with no parent
// are soft no-ops returning the original store.
//
// The node is detached from its old parent first, then the insertion index
// is computed against the already-shrunk sibling list; this is what makes
// same-parent reordering land directly adjacent to the target.
func MoveNode(nodes NodeMap, nodeID, targetID string, pos Position) NodeMap {
	if nodeID == targetID {
		return nil
	}
	if _, ok := nodes[nodeID]; !ok {
		return nodes
	}
	target, ok := nodes[targetID]
	if !ok {
		return nodes
	}
	if isDescendant(nodes, nodeID, targetID) {
		return nil
	}
	if pos != PositionInside && (target.ParentID == "" || target.Type == TypeRoot) {
		return nodes
	}

	next := nodes.clone()
	moved := next[nodeID]
	oldParentID := moved.ParentID

	if oldParent, ok := next[oldParentID]; ok {
		if idx := indexOf(oldParent.ChildrenIDs, nodeID); idx >= 0 {
			oldParent.ChildrenIDs = append(oldParent.ChildrenIDs[:idx], oldParent.ChildrenIDs[idx+1:]...)
		}
	}

	switch pos {
	case PositionInside:
		newParent := next[targetID]
		newParent.ChildrenIDs = append(newParent.ChildrenIDs, nodeID)
		moved.ParentID = targetID
		promoteOnGain(newParent)
	case PositionBefore, PositionAfter:
		newParent := next[target.ParentID]
		idx := indexOf(newParent.ChildrenIDs, targetID)
		if pos == PositionAfter {
			idx++
		}
		newParent.ChildrenIDs = insertID(newParent.ChildrenIDs, idx, nodeID)
		moved.ParentID = newParent.ID
	default:
		return nodes
	}

	if oldParent, ok := next[oldParentID]; ok {
		demoteOnLoss(oldParent)
	}

	recalculatePrefixes(next)
	return next
}

// promoteOnGain applies the chapter promotion rule after a node gains a
// child: a document becomes a chapter. Root and specialized kinds pass
// through unchanged.
func promoteOnGain(n *Node) {
	if n.Type == TypeDocument {
		n.Type = TypeChapter
	}
}

// demoteOnLoss applies the document demotion rule after a node loses a
// child: a chapter with no children left reverts to document.
func demoteOnLoss(n *Node) {
	if n.Type == TypeChapter && len(n.ChildrenIDs) == 0 {
		n.Type = TypeDocument
	}
}

// collectSubtree returns nodeID and every transitive descendant present in
// nodes, gathered with an explicit worklist.
func collectSubtree(nodes NodeMap, nodeID string) []string {
	var ids []string
	queue := []string{nodeID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n, ok := nodes[id]
		if !ok {
			continue
		}
		ids = append(ids, id)
		queue = append(queue, n.ChildrenIDs...)
	}
	return ids
}

// isDescendant reports whether candidateID lies inside the subtree rooted
// at ancestorID (excluding ancestorID itself).
func isDescendant(nodes NodeMap, ancestorID, candidateID string) bool {
	ancestor, ok := nodes[ancestorID]
	if !ok {
		return false
	}
	queue := append([]string(nil), ancestor.ChildrenIDs...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == candidateID {
			return true
		}
		if n, ok := nodes[id]; ok {
			queue = append(queue, n.ChildrenIDs...)
		}
	}
	return false
}

// insertID returns ids with id inserted at idx, clamped to the valid range.
func insertID(ids []string, idx int, id string) []string {
	if idx < 0 {
		idx = 0
	}
	if idx > len(ids) {
		idx = len(ids)
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:idx]...)
	out = append(out, id)
	out = append(out, ids[idx:]...)
	return out
}
