package stylesheet

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/tree"
)

// Node is one entry of the document's node hierarchy.
type Node struct {
	Name     string `toml:"name"`
	Style    string `toml:"style"`
	Context  string `toml:"context"`
	Children []Node `toml:"children"`
}

// document is the raw TOML shape before compilation.
type document struct {
	Styles map[string]map[string]any `toml:"styles"`
	Nodes  []Node                    `toml:"nodes"`
}

// Sheet is a compiled stylesheet: named styles plus the declared node
// hierarchy.
type Sheet struct {
	Styles map[string]*style.Style
	Nodes  []Node
}

// Load reads and parses a stylesheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return Parse(data)
}

// Parse compiles a TOML stylesheet document.
func Parse(data []byte) (*Sheet, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse stylesheet: %w", err)
	}

	sheet := &Sheet{
		Styles: make(map[string]*style.Style, len(doc.Styles)),
		Nodes:  doc.Nodes,
	}
	for name, props := range doc.Styles {
		s, err := compileStyle(props)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		sheet.Styles[name] = s
	}

	if err := sheet.checkNodes(sheet.Nodes); err != nil {
		return nil, err
	}
	return sheet, nil
}

func (s *Sheet) checkNodes(nodes []Node) error {
	for _, n := range nodes {
		if n.Style != "" {
			if _, ok := s.Styles[n.Style]; !ok {
				return fmt.Errorf("node %q references undefined style %q", n.Name, n.Style)
			}
		}
		if err := s.checkNodes(n.Children); err != nil {
			return err
		}
	}
	return nil
}

// StyleOf returns the style a node declaration refers to, or the
// default style when none is named.
func (s *Sheet) StyleOf(n Node) *style.Style {
	if n.Style == "" {
		return style.Default()
	}
	return s.Styles[n.Style]
}

// Build instantiates the declared hierarchy into a fresh tree and
// returns the root ids in declaration order. Node names map to their
// ids in the second return value; declared contexts are attached as
// node contexts.
func (s *Sheet) Build() (*tree.Tree, []tree.NodeID, map[string]tree.NodeID, error) {
	tr := tree.NewTree()
	names := make(map[string]tree.NodeID)

	var build func(n Node) (tree.NodeID, error)
	build = func(n Node) (tree.NodeID, error) {
		children := make([]tree.NodeID, 0, len(n.Children))
		for _, c := range n.Children {
			id, err := build(c)
			if err != nil {
				return 0, err
			}
			children = append(children, id)
		}

		var id tree.NodeID
		var err error
		if len(children) == 0 && n.Context != "" {
			id = tr.NewLeafWithContext(s.StyleOf(n), n.Context)
		} else {
			id, err = tr.NewWithChildren(s.StyleOf(n), children)
			if err != nil {
				return 0, err
			}
			if n.Context != "" {
				if err := tr.SetNodeContext(id, n.Context); err != nil {
					return 0, err
				}
			}
		}
		if n.Name != "" {
			if _, dup := names[n.Name]; dup {
				return 0, fmt.Errorf("duplicate node name %q", n.Name)
			}
			names[n.Name] = id
		}
		return id, nil
	}

	roots := make([]tree.NodeID, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		id, err := build(n)
		if err != nil {
			return nil, nil, nil, err
		}
		roots = append(roots, id)
	}
	return tr, roots, names, nil
}
