package outline

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// DuplicateReport names a node whose ChildrenIDs list contains one or more
// ids more than once, alongside the set of duplicated ids (deduplicated,
// in first-seen order).
type DuplicateReport struct {
	NodeID     string
	Duplicates []string
}

// FixResult is the outcome of FixDuplicateChildren.
type FixResult struct {
	Fixed   bool
	Outline *Outline
	Report  []string
}

// FindDuplicateChildren scans every node's ChildrenIDs for ids appearing
// more than once. A clean store yields an empty result. Reports are
// ordered by node id so output is stable across runs.
func FindDuplicateChildren(nodes NodeMap) []DuplicateReport {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var reports []DuplicateReport
	for _, id := range ids {
		if dups := duplicateIDs(nodes[id].ChildrenIDs); len(dups) > 0 {
			reports = append(reports, DuplicateReport{NodeID: id, Duplicates: dups})
		}
	}
	return reports
}

// FixDuplicateChildren returns a repaired copy of the outline in which
// every duplicated child id keeps only its first occurrence, in original
// order. The input is never mutated; running the result through the fixer
// again reports nothing to fix.
func FixDuplicateChildren(o *Outline) FixResult {
	reports := FindDuplicateChildren(o.Nodes)
	if len(reports) == 0 {
		return FixResult{
			Fixed:   false,
			Outline: o,
			Report:  []string{"No duplicate children found."},
		}
	}

	fixed := o.Clone()
	var lines []string
	for _, r := range reports {
		node := fixed.Nodes[r.NodeID]
		node.ChildrenIDs = dedupeFirst(node.ChildrenIDs)
		lines = append(lines, fmt.Sprintf(
			"Removed duplicate children of %q (%s): %s",
			node.Name, r.NodeID, strings.Join(r.Duplicates, ", ")))
	}

	// Deduping shifts sibling positions, so numbering is refreshed too.
	recalculatePrefixes(fixed.Nodes)
	return FixResult{Fixed: true, Outline: fixed, Report: lines}
}

// CheckOutlineIntegrity writes a one-line success message when the outline
// has no duplicate children, or a warning with a per-node breakdown when
// it does. Purely diagnostic: the outline is never altered.
func CheckOutlineIntegrity(o *Outline, w io.Writer) {
	reports := FindDuplicateChildren(o.Nodes)
	if len(reports) == 0 {
		fmt.Fprintf(w, "outline %q: integrity check passed\n", o.Name)
		return
	}
	fmt.Fprintf(w, "warning: outline %q has %d node(s) with duplicate children\n", o.Name, len(reports))
	for _, r := range reports {
		name := ""
		if n, ok := o.Nodes[r.NodeID]; ok {
			name = n.Name
		}
		fmt.Fprintf(w, "  %q (%s): %s\n", name, r.NodeID, strings.Join(r.Duplicates, ", "))
	}
}

// duplicateIDs returns the ids that occur more than once in ids, each
// listed once, in the order their second occurrence was seen.
func duplicateIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	reported := make(map[string]bool)
	var dups []string
	for _, id := range ids {
		if seen[id] && !reported[id] {
			dups = append(dups, id)
			reported[id] = true
		}
		seen[id] = true
	}
	return dups
}

// dedupeFirst keeps the first occurrence of each id, preserving order.
func dedupeFirst(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
