package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/boxlay/boxlay/pkg/tree"
)

// Document is one exported node: its box relative to the parent, plus
// its children.
type Document struct {
	Name     string     `json:"name"`
	X        float32    `json:"x"`
	Y        float32    `json:"y"`
	Width    float32    `json:"width"`
	Height   float32    `json:"height"`
	Children []Document `json:"children,omitempty"`
}

// Snapshot walks the subtree under root and captures its computed
// boxes. Node ids present in names are exported under their name;
// others get a generated "node-<id>" label.
func Snapshot(tr *tree.Tree, root tree.NodeID, names map[string]tree.NodeID) (Document, error) {
	labels := make(map[tree.NodeID]string, len(names))
	for name, id := range names {
		labels[id] = name
	}
	return snapshot(tr, root, labels)
}

func snapshot(tr *tree.Tree, id tree.NodeID, labels map[tree.NodeID]string) (Document, error) {
	l, err := tr.Layout(id)
	if err != nil {
		return Document{}, err
	}

	name := labels[id]
	if name == "" {
		name = fmt.Sprintf("node-%d", id)
	}
	doc := Document{
		Name:   name,
		X:      l.Location.X,
		Y:      l.Location.Y,
		Width:  l.Size.Width,
		Height: l.Size.Height,
	}

	children, err := tr.Children(id)
	if err != nil {
		return Document{}, err
	}
	for _, c := range children {
		child, err := snapshot(tr, c, labels)
		if err != nil {
			return Document{}, err
		}
		doc.Children = append(doc.Children, child)
	}
	return doc, nil
}

// WriteJSON encodes the subtree under root as JSON and writes it to w.
// The output can be re-read with [ReadJSON].
func WriteJSON(tr *tree.Tree, root tree.NodeID, names map[string]tree.NodeID, w io.Writer) error {
	doc, err := Snapshot(tr, root, names)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the subtree under root to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based
// output.
func ExportJSON(tr *tree.Tree, root tree.NodeID, names map[string]tree.NodeID, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(tr, root, names, f)
}
