package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes an exported layout document from r.
//
// The input must be a nested node object as produced by [WriteJSON].
// Every node must carry a non-empty name; names must be unique across
// the document so importers can address nodes by name.
//
// The returned document is independent of r and can be used freely
// after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	seen := make(map[string]bool)
	if err := validate(doc, seen); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func validate(doc Document, seen map[string]bool) error {
	if doc.Name == "" {
		return fmt.Errorf("node without a name")
	}
	if seen[doc.Name] {
		return fmt.Errorf("duplicate node name %q", doc.Name)
	}
	seen[doc.Name] = true
	for _, c := range doc.Children {
		if err := validate(c, seen); err != nil {
			return err
		}
	}
	return nil
}

// ImportJSON reads a JSON file at path and returns the decoded layout
// document. Errors wrap the underlying cause with the file path for
// context.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Find returns the node with the given name, searching the document
// depth-first.
func (d Document) Find(name string) (Document, bool) {
	if d.Name == name {
		return d, true
	}
	for _, c := range d.Children {
		if found, ok := c.Find(name); ok {
			return found, true
		}
	}
	return Document{}, false
}
