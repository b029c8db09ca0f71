package outline

// Tests for the indented-text and Mermaid diagram serializers.

import (
	"strings"
	"testing"
)

// TestBuildTreeString_RendersChildrenOnly verifies pre-order rendering
// with two-space indentation and no line for the root itself.
func TestBuildTreeString_RendersChildrenOnly(t *testing.T) {
	nodes := testTree()

	got := BuildTreeString(nodes, "root", 0)

	want := strings.Join([]string{
		"- Chapter One",
		"  - Doc 1",
		"  - Doc 2",
		"  - Doc 3",
		"- Chapter Two",
		"  - Doc 4",
		"  - Doc 5",
		"  - Doc 6",
		"",
	}, "\n")
	if got != want {
		t.Errorf("tree string:\n%s\nwant:\n%s", got, want)
	}
}

// TestBuildTreeString_MaxDepth verifies that nodes past the depth limit
// are omitted entirely, subtrees included.
func TestBuildTreeString_MaxDepth(t *testing.T) {
	nodes := testTree()

	got := BuildTreeString(nodes, "root", 1)

	want := "- Chapter One\n- Chapter Two\n"
	if got != want {
		t.Errorf("tree string = %q, want %q", got, want)
	}
}

// TestBuildTreeString_EmptyRoot verifies the empty string for a childless
// root and for an unknown root id.
func TestBuildTreeString_EmptyRoot(t *testing.T) {
	nodes := NodeMap{
		"root": {ID: "root", Name: "Empty", Type: TypeRoot, ChildrenIDs: []string{}},
	}

	if got := BuildTreeString(nodes, "root", 0); got != "" {
		t.Errorf("tree string = %q, want empty", got)
	}
	if got := BuildTreeString(nodes, "missing", 0); got != "" {
		t.Errorf("tree string for unknown root = %q, want empty", got)
	}
}

// TestGenerateMindmap_Structure verifies the header, the root((Name))
// line, and depth-reflecting indentation of descendants.
func TestGenerateMindmap_Structure(t *testing.T) {
	nodes := testTree()

	got := GenerateMindmap(nodes["root"], nodes)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if lines[0] != "mindmap" {
		t.Errorf("header = %q, want mindmap", lines[0])
	}
	if lines[1] != "  root((Book))" {
		t.Errorf("root line = %q", lines[1])
	}
	if lines[2] != "    Chapter One" {
		t.Errorf("first child line = %q", lines[2])
	}
	if lines[3] != "      Doc 1" {
		t.Errorf("grandchild line = %q", lines[3])
	}
}

// TestGenerateFlowchart_DeclaresAndConnects verifies quoted declarations
// and parent --> child edges.
func TestGenerateFlowchart_DeclaresAndConnects(t *testing.T) {
	nodes := NodeMap{
		"root": {ID: "root", Name: "Plan", Type: TypeRoot, ChildrenIDs: []string{"a"}},
		"a":    {ID: "a", Name: "Step A", Type: TypeChapter, ParentID: "root", ChildrenIDs: []string{"b"}},
		"b":    {ID: "b", Name: "Step B", Type: TypeDocument, ParentID: "a", ChildrenIDs: []string{}},
	}

	got := GenerateFlowchart(nodes["root"], nodes)

	if !strings.HasPrefix(got, "flowchart TD\n") {
		t.Errorf("missing header:\n%s", got)
	}
	for _, want := range []string{
		`    n0["Plan"]`,
		`    n1["Step A"]`,
		`    n2["Step B"]`,
		"    n0 --> n1",
		"    n1 --> n2",
	} {
		if !strings.Contains(got, want+"\n") {
			t.Errorf("missing line %q in:\n%s", want, got)
		}
	}
}

// TestDiagramLabel_SanitizesSyntaxCharacters verifies that characters
// significant to Mermaid syntax are replaced with spaces.
func TestDiagramLabel_SanitizesSyntaxCharacters(t *testing.T) {
	n := &Node{Name: `Budget (draft) ["Q3"] {v2}`}

	if got := diagramLabel(n); got != "Budget draft Q3 v2" {
		t.Errorf("label = %q", got)
	}
}

// TestDiagramLabel_ContentFallback verifies the plain-text fallback for a
// blank name: HTML stripped, whitespace collapsed, length capped.
func TestDiagramLabel_ContentFallback(t *testing.T) {
	n := &Node{Content: "<p>Some   <b>rich</b> text</p>"}

	if got := diagramLabel(n); got != "Some rich text" {
		t.Errorf("label = %q", got)
	}

	long := &Node{Content: strings.Repeat("x", 100)}
	if got := diagramLabel(long); len([]rune(got)) != labelFallbackLimit {
		t.Errorf("fallback length = %d, want %d", len([]rune(got)), labelFallbackLimit)
	}

	empty := &Node{}
	if got := diagramLabel(empty); got != "Untitled" {
		t.Errorf("empty label = %q, want Untitled", got)
	}
}
