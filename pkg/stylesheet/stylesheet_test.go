package stylesheet

import (
	"strings"
	"testing"

	"github.com/boxlay/boxlay/pkg/layouterr"
	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/tree"
	"github.com/boxlay/boxlay/pkg/value"
)

const sampleDoc = `
[styles.card]
display = "flex"
flex_direction = "column"
size_width = 300
size_height = "auto"
padding_left = {percent = 0.1}
gap_height = 4

[styles.cell]
flex_grow = 1.0

[styles.board]
display = "grid"
grid_template_columns = [100, {fraction = 1.0}, {minmax = {min = "auto", max = {fraction = 2.0}}}]
grid_auto_flow = "column"

[styles.pinned]
grid_column = {start = 1, end = {span = 2}}

[[nodes]]
name = "root"
style = "card"

  [[nodes.children]]
  name = "body"
  style = "cell"
  context = "body text"
`

func TestParseStyles(t *testing.T) {
	sheet, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	card, ok := sheet.Styles["card"]
	if !ok {
		t.Fatal("missing style card")
	}
	if got := card.Display(); got != style.DisplayFlex {
		t.Errorf("display = %v, want flex", got)
	}
	if got := card.FlexDirection(); got != style.FlexDirectionColumn {
		t.Errorf("flex direction = %v, want column", got)
	}
	if got := card.SizeWidth(); got != value.Dimension(value.MustLength(300)) {
		t.Errorf("size width = %v, want 300px", got)
	}
	if got := card.SizeHeight(); got != value.Dimension(value.Auto{}) {
		t.Errorf("size height = %v, want auto", got)
	}
	if got := card.PaddingLeft(); got != value.LengthPercentage(value.MustPercent(0.1)) {
		t.Errorf("padding left = %v, want 10%%", got)
	}
	if !card.IsSet(style.FieldSizeWidth) {
		t.Error("size width flag not set")
	}
	if card.IsSet(style.FieldFlexGrow) {
		t.Error("flex grow flag set but never declared")
	}

	cell := sheet.Styles["cell"]
	if got := cell.FlexGrow(); got != 1 {
		t.Errorf("flex grow = %v, want 1", got)
	}

	board := sheet.Styles["board"]
	cols := board.GridTemplateColumns()
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}
	if cols[0] != value.Track(value.MustLength(100)) {
		t.Errorf("column 0 = %v, want 100px", cols[0])
	}
	if cols[1] != value.Track(value.MustFraction(1)) {
		t.Errorf("column 1 = %v, want 1fr", cols[1])
	}
	mm, ok := cols[2].(value.Minmax)
	if !ok {
		t.Fatalf("column 2 = %T, want minmax", cols[2])
	}
	if mm.Min != value.TrackMin(value.Auto{}) || mm.Max != value.TrackMax(value.MustFraction(2)) {
		t.Errorf("column 2 = %v, want minmax(auto, 2fr)", mm)
	}
	if got := board.GridAutoFlow(); got != style.GridAutoFlowColumn {
		t.Errorf("grid auto flow = %v, want column", got)
	}

	start, end := sheet.Styles["pinned"].GridColumn()
	if start != value.Placement(value.MustGridLine(1)) {
		t.Errorf("grid column start = %v, want line 1", start)
	}
	if end != value.Placement(value.MustGridSpan(2)) {
		t.Errorf("grid column end = %v, want span 2", end)
	}
}

func TestParseNodes(t *testing.T) {
	sheet, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sheet.Nodes) != 1 {
		t.Fatalf("got %d roots, want 1", len(sheet.Nodes))
	}
	root := sheet.Nodes[0]
	if root.Name != "root" || root.Style != "card" {
		t.Errorf("root = %+v", root)
	}
	if len(root.Children) != 1 || root.Children[0].Context != "body text" {
		t.Errorf("children = %+v", root.Children)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown property",
			doc:  "[styles.a]\ncolor = \"red\"\n",
			want: "unknown property",
		},
		{
			name: "unknown keyword",
			doc:  "[styles.a]\ndisplay = \"inline\"\n",
			want: "unknown display",
		},
		{
			name: "wrong value type",
			doc:  "[styles.a]\nflex_grow = \"lots\"\n",
			want: "expected a number",
		},
		{
			name: "undefined style reference",
			doc:  "[[nodes]]\nname = \"n\"\nstyle = \"missing\"\n",
			want: "undefined style",
		},
		{
			name: "minmax missing max",
			doc:  "[styles.a]\ngrid_template_rows = [{minmax = {min = 10}}]\n",
			want: "missing max",
		},
		{
			name: "span outside a table",
			doc:  "[styles.a]\ngrid_row = {start = {stride = 2}}\n",
			want: "expected a span table",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseInvalidValue(t *testing.T) {
	_, err := Parse([]byte("[styles.a]\nsize_width = {percent = 1.5}\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !layouterr.IsInvalidValue(err) {
		t.Errorf("error %q is not an invalid-value error", err)
	}
	if !layouterr.Is(err, layouterr.CodeInvalidPercent) {
		t.Errorf("error %q does not carry the percent code", err)
	}
}

func TestBuild(t *testing.T) {
	sheet, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tr, roots, names, err := sheet.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if names["root"] != roots[0] {
		t.Error("name map does not resolve root")
	}
	body, ok := names["body"]
	if !ok {
		t.Fatal("name map missing body")
	}
	parent, hasParent, err := tr.Parent(body)
	if err != nil || !hasParent || parent != roots[0] {
		t.Errorf("Parent(body) = %v %v %v", parent, hasParent, err)
	}
	ctx, err := tr.GetNodeContext(body)
	if err != nil || ctx != any("body text") {
		t.Errorf("GetNodeContext(body) = %v %v", ctx, err)
	}

	if err := tr.ComputeLayout(roots[0],
		tree.WithAvailableSpace(tree.DefiniteAvailable(400, 400))); err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	l, err := tr.Layout(roots[0])
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if l.Size.Width != 300 {
		t.Errorf("root width = %v, want 300", l.Size.Width)
	}
}

func TestBuildDuplicateName(t *testing.T) {
	doc := "[[nodes]]\nname = \"a\"\n[[nodes]]\nname = \"a\"\n"
	sheet, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, _, _, err := sheet.Build(); err == nil {
		t.Fatal("expected a duplicate-name error")
	}
}
