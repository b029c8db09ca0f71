package cmd

// Shared test doubles and helpers for the command tests.

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/idiampro/idp/internal/config"
	"github.com/idiampro/idp/internal/outline"
)

// memOutlineIO implements OutlineIO against in-memory maps, recording
// every save so tests can assert on persistence behavior.
type memOutlineIO struct {
	outlines map[string]*outline.Outline
	files    map[string][]byte
	loadErr  error
	saveErr  error
	saved    []string
}

func newMemOutlineIO() *memOutlineIO {
	return &memOutlineIO{
		outlines: map[string]*outline.Outline{},
		files:    map[string][]byte{},
	}
}

func (m *memOutlineIO) LoadOutline(path string) (*outline.Outline, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	o, ok := m.outlines[path]
	if !ok {
		return nil, fmt.Errorf("reading outline: %w", os.ErrNotExist)
	}
	return o, nil
}

func (m *memOutlineIO) SaveOutline(path string, o *outline.Outline) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.outlines[path] = o
	m.saved = append(m.saved, path)
	return nil
}

func (m *memOutlineIO) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *memOutlineIO) StatFile(path string) (bool, error) {
	if _, ok := m.outlines[path]; ok {
		return true, nil
	}
	_, ok := m.files[path]
	return ok, nil
}

// fixtureOutline builds an outline with hand-assigned ids: root → ch1
// (chapter) → d1, d2.
func fixtureOutline() *outline.Outline {
	nodes := outline.NodeMap{
		"root": {ID: "root", Name: "Book", Type: outline.TypeRoot, ChildrenIDs: []string{"ch1"}},
		"ch1":  {ID: "ch1", Name: "Chapter One", Type: outline.TypeChapter, ParentID: "root", ChildrenIDs: []string{"d1", "d2"}, Prefix: "1"},
		"d1":   {ID: "d1", Name: "Doc 1", Type: outline.TypeDocument, ParentID: "ch1", ChildrenIDs: []string{}, Prefix: "1.1"},
		"d2":   {ID: "d2", Name: "Doc 2", Type: outline.TypeDocument, ParentID: "ch1", ChildrenIDs: []string{}, Prefix: "1.2"},
	}
	return &outline.Outline{ID: "o1", Name: "Book", RootNodeID: "root", Nodes: nodes}
}

// testConfig returns built-in defaults without touching the user's real
// config file.
func testConfig() *config.Config {
	return &config.Config{Format: "json", TreeDepth: 0, DefaultType: "document"}
}

// execute runs cmd with args, capturing stdout and stderr together.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
