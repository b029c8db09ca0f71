// Package storage persists outlines to disk as JSON (canonical) or YAML,
// selected by file extension. Writes are atomic: data lands in a temp
// file that is renamed over the destination.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idiampro/idp/internal/outline"
)

// Format identifies an on-disk outline encoding.
type Format string

const (
	// FormatJSON is the canonical encoding (two-space indent).
	FormatJSON Format = "json"
	// FormatYAML is the alternate encoding for .yaml/.yml files.
	FormatYAML Format = "yaml"
)

// FormatFor returns the encoding implied by path's extension. Anything
// that is not .yaml/.yml is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the outline at path, validating the container
// shape: a root id that resolves into the node store. Corruption inside
// the tree (duplicate children) is not checked here; that is the
// doctor's job, so loading stays non-destructive.
func Load(path string) (*outline.Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline: %w", err)
	}

	var o outline.Outline
	switch FormatFor(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing outline YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing outline JSON: %w", err)
		}
	}

	if o.Nodes == nil {
		o.Nodes = outline.NodeMap{}
	}
	for id, n := range o.Nodes {
		if n.ChildrenIDs == nil {
			n.ChildrenIDs = []string{}
		}
		if n.ID == "" {
			n.ID = id
		}
	}
	if o.RootNodeID == "" {
		return nil, fmt.Errorf("outline %s has no root node id", path)
	}
	if _, ok := o.Nodes[o.RootNodeID]; !ok {
		return nil, fmt.Errorf("outline %s root node %q is missing from the node map", path, o.RootNodeID)
	}
	return &o, nil
}

// Save encodes the outline per path's extension and writes it atomically.
func Save(path string, o *outline.Outline) error {
	var data []byte
	var err error
	switch FormatFor(path) {
	case FormatYAML:
		data, err = yaml.Marshal(o)
		if err != nil {
			return fmt.Errorf("encoding outline YAML: %w", err)
		}
	default:
		data, err = json.MarshalIndent(o, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding outline JSON: %w", err)
		}
		data = append(data, '\n')
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to path via a temp file in the same
// directory plus a rename, so readers never observe a partial outline.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".outline-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
