package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	layoutio "github.com/boxlay/boxlay/pkg/io"
	"github.com/boxlay/boxlay/pkg/stylesheet"
	"github.com/boxlay/boxlay/pkg/tree"
	"github.com/boxlay/boxlay/pkg/value"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	width     float64 // available width in pixels (max-content if negative)
	height    float64 // available height in pixels (max-content if negative)
	rounding  bool    // round the final layout to whole pixels
	unrounded bool    // print the raw fractional layout
	format    string  // output format: "text" or "json"
	output    string  // output file path (stdout if empty)
}

func newComputeCmd() *cobra.Command {
	opts := &computeOpts{}

	cmd := &cobra.Command{
		Use:   "compute <stylesheet.toml>",
		Short: "Compute the layout declared by a stylesheet",
		Long: `Compute loads a TOML stylesheet, builds the node hierarchy it declares,
runs the layout algorithm and prints one line per node with its
position and size relative to its parent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", -1, "available width in pixels (max-content if omitted)")
	cmd.Flags().Float64Var(&opts.height, "height", -1, "available height in pixels (max-content if omitted)")
	cmd.Flags().BoolVar(&opts.rounding, "round", true, "round the layout to whole pixels")
	cmd.Flags().BoolVar(&opts.unrounded, "unrounded", false, "print the raw fractional layout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")

	return cmd
}

func runCompute(cmd *cobra.Command, path string, opts *computeOpts) error {
	logger := loggerFromContext(cmd.Context())

	sheet, err := stylesheet.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d styles, %d root nodes", len(sheet.Styles), len(sheet.Nodes))
	if len(sheet.Nodes) == 0 {
		return fmt.Errorf("%s declares no nodes", path)
	}

	tr, roots, names, err := sheet.Build()
	if err != nil {
		return err
	}
	if !opts.rounding {
		tr.DisableRounding()
	}

	avail := availableFromFlags(opts.width, opts.height)
	prog := newProgress(logger)
	for _, root := range roots {
		if err := tr.ComputeLayout(root, tree.WithAvailableSpace(avail)); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Computed layout for %d nodes", tr.TotalNodeCount()))

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	for _, root := range roots {
		switch opts.format {
		case "json":
			err = layoutio.WriteJSON(tr, root, names, out)
		case "text":
			err = printLayoutTree(out, tr, root, names, opts.unrounded)
		default:
			return fmt.Errorf("unknown format %q", opts.format)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// availableFromFlags maps flag values to available space; negative
// values mean the dimension is unconstrained.
func availableFromFlags(width, height float64) tree.AvailableDimensions {
	avail := tree.MaxContentAvailable()
	if width >= 0 {
		avail.Width = value.MustDefinite(float32(width))
	}
	if height >= 0 {
		avail.Height = value.MustDefinite(float32(height))
	}
	return avail
}

// printLayoutTree writes one line per node, indented with tree guides.
func printLayoutTree(w io.Writer, tr *tree.Tree, root tree.NodeID, names map[string]tree.NodeID, unrounded bool) error {
	labels := make(map[tree.NodeID]string, len(names))
	for name, id := range names {
		labels[id] = name
	}

	var print func(id tree.NodeID, prefix, childPrefix string) error
	print = func(id tree.NodeID, prefix, childPrefix string) error {
		var l tree.Layout
		var err error
		if unrounded {
			l, err = tr.UnroundedLayout(id)
		} else {
			l, err = tr.Layout(id)
		}
		if err != nil {
			return err
		}

		label := labels[id]
		if label == "" {
			label = fmt.Sprintf("node-%d", id)
		}
		fmt.Fprintf(w, "%s%s  %s %s  %s %s\n",
			styleGuide.Render(prefix),
			styleName.Render(label),
			styleLabel.Render("at"),
			styleValue.Render(fmt.Sprintf("(%g, %g)", l.Location.X, l.Location.Y)),
			styleLabel.Render("size"),
			styleValue.Render(fmt.Sprintf("%g×%g", l.Size.Width, l.Size.Height)),
		)

		children, err := tr.Children(id)
		if err != nil {
			return err
		}
		for i, c := range children {
			guide, next := "├─ ", "│  "
			if i == len(children)-1 {
				guide, next = "└─ ", "   "
			}
			if err := print(c, childPrefix+guide, childPrefix+next); err != nil {
				return err
			}
		}
		return nil
	}
	return print(root, "", "")
}

// sprintTree renders a layout tree to a string, for tests and debug
// logging.
func sprintTree(tr *tree.Tree, root tree.NodeID, names map[string]tree.NodeID) (string, error) {
	var b strings.Builder
	if err := printLayoutTree(&b, tr, root, names, false); err != nil {
		return "", err
	}
	return b.String(), nil
}
