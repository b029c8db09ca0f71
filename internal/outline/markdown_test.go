package outline

// Tests for the markdown bullet-list importer.

import (
	"strings"
	"testing"
)

// TestParseMarkdown_NestedBullets verifies the canonical two-level parse:
// one chapter with two document children under a synthetic root.
func TestParseMarkdown_NestedBullets(t *testing.T) {
	rootID, nodes := ParseMarkdown("- Parent\n  - Child 1\n  - Child 2", "Topic")

	root := nodes[rootID]
	if root.Type != TypeRoot || root.Name != "Topic" {
		t.Fatalf("root wrong: %+v", root)
	}
	if len(root.ChildrenIDs) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.ChildrenIDs))
	}

	parent := nodes[root.ChildrenIDs[0]]
	if parent.Name != "Parent" || parent.Type != TypeChapter {
		t.Errorf("parent wrong: %+v", parent)
	}
	if len(parent.ChildrenIDs) != 2 {
		t.Fatalf("parent children = %d, want 2", len(parent.ChildrenIDs))
	}
	for i, want := range []string{"Child 1", "Child 2"} {
		child := nodes[parent.ChildrenIDs[i]]
		if child.Name != want || child.Type != TypeDocument {
			t.Errorf("child %d wrong: %+v", i, child)
		}
	}
	checkInvariants(t, nodes, rootID)
}

// TestParseMarkdown_IgnoresNonBulletLines verifies that headers, prose,
// and blank lines contribute no nodes.
func TestParseMarkdown_IgnoresNonBulletLines(t *testing.T) {
	text := strings.Join([]string{
		"# A Header",
		"",
		"Some prose paragraph.",
		"- Only Bullet",
		"1. numbered lists are not bullets",
	}, "\n")

	rootID, nodes := ParseMarkdown(text, "Topic")

	root := nodes[rootID]
	if len(root.ChildrenIDs) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.ChildrenIDs))
	}
	if got := nodes[root.ChildrenIDs[0]].Name; got != "Only Bullet" {
		t.Errorf("child name = %q", got)
	}
}

// TestParseMarkdown_ColonSplitsNameAndContent verifies the first-colon
// split rule and that later colons stay in the content.
func TestParseMarkdown_ColonSplitsNameAndContent(t *testing.T) {
	rootID, nodes := ParseMarkdown("- Setup: install deps: go, make", "Topic")

	child := nodes[nodes[rootID].ChildrenIDs[0]]
	if child.Name != "Setup" {
		t.Errorf("name = %q, want Setup", child.Name)
	}
	if child.Content != "install deps: go, make" {
		t.Errorf("content = %q", child.Content)
	}
}

// TestParseMarkdown_DedentReturnsToAncestor verifies that an item with
// less indentation attaches to the matching ancestor, not the previous
// item.
func TestParseMarkdown_DedentReturnsToAncestor(t *testing.T) {
	text := strings.Join([]string{
		"- A",
		"  - A1",
		"    - A1a",
		"  - A2",
		"- B",
	}, "\n")

	rootID, nodes := ParseMarkdown(text, "Topic")

	root := nodes[rootID]
	if len(root.ChildrenIDs) != 2 {
		t.Fatalf("top-level items = %d, want 2", len(root.ChildrenIDs))
	}
	a := nodes[root.ChildrenIDs[0]]
	if len(a.ChildrenIDs) != 2 {
		t.Fatalf("A children = %d, want 2", len(a.ChildrenIDs))
	}
	a1 := nodes[a.ChildrenIDs[0]]
	if len(a1.ChildrenIDs) != 1 || a1.Type != TypeChapter {
		t.Errorf("A1 wrong: %+v", a1)
	}
	if got := nodes[a.ChildrenIDs[1]].Name; got != "A2" {
		t.Errorf("A second child = %q, want A2", got)
	}
	checkInvariants(t, nodes, rootID)
}

// TestParseMarkdown_StarBullets verifies that "*" markers parse the same
// as "-".
func TestParseMarkdown_StarBullets(t *testing.T) {
	rootID, nodes := ParseMarkdown("* One\n* Two", "Topic")

	if got := len(nodes[rootID].ChildrenIDs); got != 2 {
		t.Errorf("top-level items = %d, want 2", got)
	}
}

// TestParseMarkdown_TabIndent verifies that one tab nests one level, the
// same as two spaces, including mixed tab and space input.
func TestParseMarkdown_TabIndent(t *testing.T) {
	text := strings.Join([]string{
		"- A",
		"\t- A1",
		"\t\t- A1a",
		"  - A2",
	}, "\n")

	rootID, nodes := ParseMarkdown(text, "Topic")

	root := nodes[rootID]
	if len(root.ChildrenIDs) != 1 {
		t.Fatalf("top-level items = %d, want 1", len(root.ChildrenIDs))
	}
	a := nodes[root.ChildrenIDs[0]]
	if len(a.ChildrenIDs) != 2 {
		t.Fatalf("A children = %d, want 2", len(a.ChildrenIDs))
	}
	a1 := nodes[a.ChildrenIDs[0]]
	if a1.Name != "A1" || len(a1.ChildrenIDs) != 1 {
		t.Errorf("A1 wrong: %+v", a1)
	}
	if got := nodes[a1.ChildrenIDs[0]].Name; got != "A1a" {
		t.Errorf("A1 child = %q, want A1a", got)
	}
	if got := nodes[a.ChildrenIDs[1]].Name; got != "A2" {
		t.Errorf("A second child = %q, want A2", got)
	}
	checkInvariants(t, nodes, rootID)
}

// TestParseMarkdown_RoundTrip verifies that parsing then serializing
// preserves names and nesting order.
func TestParseMarkdown_RoundTrip(t *testing.T) {
	text := strings.Join([]string{
		"- Alpha",
		"  - Alpha One",
		"  - Alpha Two",
		"- Beta",
		"  - Beta One",
		"    - Beta One A",
	}, "\n")

	rootID, nodes := ParseMarkdown(text, "Topic")
	got := BuildTreeString(nodes, rootID, 0)

	if got != text+"\n" {
		t.Errorf("round trip:\n%q\nwant:\n%q", got, text+"\n")
	}
}

// TestParseMarkdown_EmptyInput verifies a lone synthetic root for input
// with no bullets at all.
func TestParseMarkdown_EmptyInput(t *testing.T) {
	rootID, nodes := ParseMarkdown("just prose\n\nmore prose", "Topic")

	if len(nodes) != 1 {
		t.Fatalf("store size = %d, want 1", len(nodes))
	}
	if got := len(nodes[rootID].ChildrenIDs); got != 0 {
		t.Errorf("root children = %d, want 0", got)
	}
}
