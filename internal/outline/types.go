// Package outline provides the in-memory outline tree engine: the flat
// node store, prefix numbering, mutation operations, text/diagram
// serialization, markdown import, and integrity checking.
package outline

import "github.com/google/uuid"

// NodeType classifies an outline node. Only root, chapter, and document
// participate in automatic promotion/demotion; all other kinds pass
// through mutations unchanged.
type NodeType string

const (
	// TypeRoot is the single top node of an outline. Never demoted.
	TypeRoot NodeType = "root"
	// TypeChapter is a node that currently holds children.
	TypeChapter NodeType = "chapter"
	// TypeSection is a structural grouping kind not subject to promotion.
	TypeSection NodeType = "section"
	// TypeDocument is a plain leaf node.
	TypeDocument NodeType = "document"
	// TypeDrawing is a specialized leaf holding canvas editor payload.
	TypeDrawing NodeType = "drawing"
	// TypeSpreadsheet is a specialized leaf holding sheet editor payload.
	TypeSpreadsheet NodeType = "spreadsheet"
	// TypeDiagram is a specialized leaf holding diagram editor payload.
	TypeDiagram NodeType = "diagram"
)

// AssignableType reports whether t is a kind users may create or assign
// to a node. Root is reserved for the outline container: a second root
// node inside the tree would compete as a numbering origin and break the
// prefix invariant.
func AssignableType(t NodeType) bool {
	switch t {
	case TypeChapter, TypeSection, TypeDocument, TypeDrawing, TypeSpreadsheet, TypeDiagram:
		return true
	}
	return false
}

// Node is one entry of the outline tree. ParentID and ChildrenIDs are kept
// bidirectionally consistent by every mutation; ChildrenIDs order is the
// display order and drives prefix numbering.
type Node struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Content     string   `json:"content,omitempty" yaml:"content,omitempty"`
	Type        NodeType `json:"type" yaml:"type"`
	ParentID    string   `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	ChildrenIDs []string `json:"childrenIds" yaml:"childrenIds"`
	IsCollapsed bool     `json:"isCollapsed,omitempty" yaml:"isCollapsed,omitempty"`
	Prefix      string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// NodeMap is the flat node store: node id → node record.
type NodeMap map[string]*Node

// Outline is the persistence container for a single outline document.
type Outline struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	RootNodeID string  `json:"rootNodeId" yaml:"rootNodeId"`
	Nodes      NodeMap `json:"nodes" yaml:"nodes"`
}

// NewNodeID returns a fresh lowercase UUIDv7 node identifier. UUIDv7 keeps
// ids roughly creation-ordered; if the clock source fails a random v4 id
// is used instead.
func NewNodeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewOutline creates an outline containing only a blank root node.
func NewOutline(name string) *Outline {
	rootID := NewNodeID()
	return &Outline{
		ID:         NewNodeID(),
		Name:       name,
		RootNodeID: rootID,
		Nodes: NodeMap{
			rootID: {
				ID:          rootID,
				Name:        name,
				Type:        TypeRoot,
				ChildrenIDs: []string{},
			},
		},
	}
}

// clone returns a deep copy of nodes: a new map whose node records and
// ChildrenIDs slices are independent of the input. Mutators clone before
// touching anything so callers keep their original map intact.
func (nodes NodeMap) clone() NodeMap {
	next := make(NodeMap, len(nodes))
	for id, n := range nodes {
		c := *n
		c.ChildrenIDs = append([]string(nil), n.ChildrenIDs...)
		if c.ChildrenIDs == nil {
			c.ChildrenIDs = []string{}
		}
		next[id] = &c
	}
	return next
}

// Clone returns a deep copy of the outline, including its node store.
func (o *Outline) Clone() *Outline {
	c := *o
	c.Nodes = o.Nodes.clone()
	return &c
}

// indexOf returns the position of id in ids, or -1 if absent.
func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
