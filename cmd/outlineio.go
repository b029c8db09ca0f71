package cmd

import (
	"fmt"
	"os"

	"github.com/idiampro/idp/internal/outline"
	"github.com/idiampro/idp/internal/storage"
)

// OutlineIO handles outline file I/O for the commands. Implementations
// other than the OS-backed default exist only in tests.
type OutlineIO interface {
	// LoadOutline reads and decodes the outline at path.
	LoadOutline(path string) (*outline.Outline, error)
	// SaveOutline encodes and atomically writes the outline to path.
	SaveOutline(path string, o *outline.Outline) error
	// ReadFile reads an arbitrary file (markdown import input).
	ReadFile(path string) ([]byte, error)
	// StatFile reports whether a file exists at path.
	StatFile(path string) (bool, error)
}

// fileOutlineIO implements OutlineIO using OS file I/O via the storage
// package.
type fileOutlineIO struct{}

func newDefaultOutlineIO() *fileOutlineIO {
	return &fileOutlineIO{}
}

func (f *fileOutlineIO) LoadOutline(path string) (*outline.Outline, error) {
	return storage.Load(path)
}

func (f *fileOutlineIO) SaveOutline(path string, o *outline.Outline) error {
	return storage.Save(path, o)
}

func (f *fileOutlineIO) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *fileOutlineIO) StatFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// requireNode resolves nodeID inside the outline or returns a uniform
// not-found error for the CLI layer. The core itself never errors on
// unknown ids; commands do, so users get a message instead of silence.
func requireNode(o *outline.Outline, nodeID string) (*outline.Node, error) {
	n, ok := o.Nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("node %q not found in outline", sanitizeText(nodeID))
	}
	return n, nil
}

// subtreeRoot returns the node the diagram/tree commands should start
// from: the outline root when nodeID is empty, otherwise that node.
func subtreeRoot(o *outline.Outline, nodeID string) (*outline.Node, error) {
	if nodeID == "" {
		return requireNode(o, o.RootNodeID)
	}
	return requireNode(o, nodeID)
}
