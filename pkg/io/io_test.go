package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/boxlay/boxlay/pkg/stylesheet"
	"github.com/boxlay/boxlay/pkg/tree"
)

const rowDoc = `
[styles.row]
display = "flex"
size_width = 200
size_height = 100

[styles.cell]
flex_grow = 1.0

[[nodes]]
name = "root"
style = "row"

  [[nodes.children]]
  name = "left"
  style = "cell"

  [[nodes.children]]
  name = "right"
  style = "cell"
`

func layoutFixture(t *testing.T) (*tree.Tree, tree.NodeID, map[string]tree.NodeID) {
	t.Helper()
	sheet, err := stylesheet.Parse([]byte(rowDoc))
	if err != nil {
		t.Fatal(err)
	}
	tr, roots, names, err := sheet.Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.ComputeLayout(roots[0]); err != nil {
		t.Fatal(err)
	}
	return tr, roots[0], names
}

func TestSnapshot(t *testing.T) {
	tr, root, names := layoutFixture(t)
	doc, err := Snapshot(tr, root, names)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "root" || doc.Width != 200 || doc.Height != 100 {
		t.Errorf("root = %+v", doc)
	}
	if len(doc.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(doc.Children))
	}
	left, right := doc.Children[0], doc.Children[1]
	if left.Name != "left" || left.X != 0 || left.Width != 100 {
		t.Errorf("left = %+v", left)
	}
	if right.Name != "right" || right.X != 100 || right.Width != 100 {
		t.Errorf("right = %+v", right)
	}
}

func TestRoundTrip(t *testing.T) {
	tr, root, names := layoutFixture(t)
	doc, err := Snapshot(tr, root, names)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(tr, root, names, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(doc, back) {
		t.Errorf("round trip mismatch:\nexported: %+v\nimported: %+v", doc, back)
	}
}

func TestExportImportFile(t *testing.T) {
	tr, root, names := layoutFixture(t)

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := ExportJSON(tr, root, names, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	doc, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	right, ok := doc.Find("right")
	if !ok {
		t.Fatal("Find(right) missed")
	}
	if right.X != 100 {
		t.Errorf("right.X = %v, want 100", right.X)
	}
}

func TestReadJSONRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"malformed", `{"name":`, "decode"},
		{"missing name", `{"x": 0, "children": [{"width": 10}]}`, "without a name"},
		{"duplicate name", `{"name": "a", "children": [{"name": "a"}]}`, "duplicate node name"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tc.in))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
