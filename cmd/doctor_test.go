package cmd

// Tests for the doctor command.

import (
	"strings"
	"testing"

	"github.com/idiampro/idp/internal/outline"
)

// corruptFixture returns fixtureOutline with ch1 listing d1 twice.
func corruptFixture() *outline.Outline {
	o := fixtureOutline()
	o.Nodes["ch1"].ChildrenIDs = []string{"d1", "d2", "d1"}
	return o
}

// TestDoctor_CleanOutline verifies the success message and exit status.
func TestDoctor_CleanOutline(t *testing.T) {
	io := newMemOutlineIO()
	io.outlines["book.json"] = fixtureOutline()

	out, err := execute(t, NewDoctorCmd(io), "book.json")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "passed") {
		t.Errorf("output = %q, want success message", out)
	}
}

// TestDoctor_CorruptWithoutFix verifies the warning breakdown, a non-zero
// exit, and that the file is left untouched.
func TestDoctor_CorruptWithoutFix(t *testing.T) {
	io := newMemOutlineIO()
	io.outlines["book.json"] = corruptFixture()

	out, err := execute(t, NewDoctorCmd(io), "book.json")

	if err == nil {
		t.Fatal("expected an error for a corrupt outline")
	}
	if !strings.Contains(out, "warning") || !strings.Contains(out, "ch1") {
		t.Errorf("output = %q, want per-node warning", out)
	}
	if len(io.saved) != 0 {
		t.Error("doctor without --fix must not write")
	}
}

// TestDoctor_Fix verifies the repair path: report lines printed, deduped
// outline saved, and a second run finding nothing.
func TestDoctor_Fix(t *testing.T) {
	io := newMemOutlineIO()
	io.outlines["book.json"] = corruptFixture()

	out, err := execute(t, NewDoctorCmd(io), "book.json", "--fix")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "d1") || !strings.Contains(out, "Repaired") {
		t.Errorf("output = %q", out)
	}
	children := io.outlines["book.json"].Nodes["ch1"].ChildrenIDs
	if strings.Join(children, ",") != "d1,d2" {
		t.Errorf("children after fix = %v, want [d1 d2]", children)
	}

	out, err = execute(t, NewDoctorCmd(io), "book.json", "--fix")
	if err != nil {
		t.Fatalf("second fix errored: %v", err)
	}
	if !strings.Contains(out, "No duplicate children found.") {
		t.Errorf("second fix output = %q", out)
	}
	if len(io.saved) != 1 {
		t.Errorf("saves = %d, want 1 (idempotent second pass must not write)", len(io.saved))
	}
}
