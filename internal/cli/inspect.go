package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/stylesheet"
	"github.com/boxlay/boxlay/pkg/value"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <stylesheet.toml>",
		Short: "Show the styles a stylesheet declares",
		Long: `Inspect loads a TOML stylesheet and prints each named style with the
properties it explicitly sets. Properties left unset fall back to their
defaults and are not shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := stylesheet.Load(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debugf("Loaded %d styles", len(sheet.Styles))
			fmt.Fprint(cmd.OutOrStdout(), renderStyles(sheet))
			return nil
		},
	}
}

// renderStyles prints one table per named style, listing only the
// explicitly set properties.
func renderStyles(sheet *stylesheet.Sheet) string {
	names := make([]string, 0, len(sheet.Styles))
	for name := range sheet.Styles {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		s := sheet.Styles[name]
		b.WriteString(styleName.Render(name))
		b.WriteString("\n")

		rows := make([][]string, 0, 8)
		for _, p := range propertyTable {
			if s.IsSet(p.field) {
				rows = append(rows, []string{p.key, p.get(s)})
			}
		}
		if len(rows) == 0 {
			b.WriteString(styleLabel.Render("  (all defaults)"))
			b.WriteString("\n")
			continue
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(styleGuide).
			Headers("property", "value").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return styleHeader.Padding(0, 1)
				}
				if col == 0 {
					return styleLabel.Padding(0, 1)
				}
				return styleValue.Padding(0, 1)
			})
		b.WriteString(t.Render())
		b.WriteString("\n")
	}
	return b.String()
}

// property pairs a style field with its stylesheet key and a printable
// form of the current value.
type property struct {
	field style.Field
	key   string
	get   func(*style.Style) string
}

var propertyTable = []property{
	{style.FieldDisplay, "display", func(s *style.Style) string { return s.Display().String() }},
	{style.FieldBoxSizing, "box_sizing", func(s *style.Style) string { return s.BoxSizing().String() }},
	{style.FieldOverflowX, "overflow_x", func(s *style.Style) string { return s.OverflowX().String() }},
	{style.FieldOverflowY, "overflow_y", func(s *style.Style) string { return s.OverflowY().String() }},
	{style.FieldScrollbarWidth, "scrollbar_width", func(s *style.Style) string { return fmt.Sprintf("%g", s.ScrollbarWidth()) }},
	{style.FieldPosition, "position", func(s *style.Style) string { return s.Position().String() }},
	{style.FieldInsetLeft, "inset_left", func(s *style.Style) string { return s.InsetLeft().String() }},
	{style.FieldInsetRight, "inset_right", func(s *style.Style) string { return s.InsetRight().String() }},
	{style.FieldInsetTop, "inset_top", func(s *style.Style) string { return s.InsetTop().String() }},
	{style.FieldInsetBottom, "inset_bottom", func(s *style.Style) string { return s.InsetBottom().String() }},
	{style.FieldSizeWidth, "size_width", func(s *style.Style) string { return s.SizeWidth().String() }},
	{style.FieldSizeHeight, "size_height", func(s *style.Style) string { return s.SizeHeight().String() }},
	{style.FieldMinSizeWidth, "min_size_width", func(s *style.Style) string { return s.MinSizeWidth().String() }},
	{style.FieldMinSizeHeight, "min_size_height", func(s *style.Style) string { return s.MinSizeHeight().String() }},
	{style.FieldMaxSizeWidth, "max_size_width", func(s *style.Style) string { return s.MaxSizeWidth().String() }},
	{style.FieldMaxSizeHeight, "max_size_height", func(s *style.Style) string { return s.MaxSizeHeight().String() }},
	{style.FieldAspectRatio, "aspect_ratio", func(s *style.Style) string {
		if r, ok := s.AspectRatio(); ok {
			return fmt.Sprintf("%g", r)
		}
		return "auto"
	}},
	{style.FieldMarginLeft, "margin_left", func(s *style.Style) string { return s.MarginLeft().String() }},
	{style.FieldMarginRight, "margin_right", func(s *style.Style) string { return s.MarginRight().String() }},
	{style.FieldMarginTop, "margin_top", func(s *style.Style) string { return s.MarginTop().String() }},
	{style.FieldMarginBottom, "margin_bottom", func(s *style.Style) string { return s.MarginBottom().String() }},
	{style.FieldPaddingLeft, "padding_left", func(s *style.Style) string { return s.PaddingLeft().String() }},
	{style.FieldPaddingRight, "padding_right", func(s *style.Style) string { return s.PaddingRight().String() }},
	{style.FieldPaddingTop, "padding_top", func(s *style.Style) string { return s.PaddingTop().String() }},
	{style.FieldPaddingBottom, "padding_bottom", func(s *style.Style) string { return s.PaddingBottom().String() }},
	{style.FieldBorderLeft, "border_left", func(s *style.Style) string { return s.BorderLeft().String() }},
	{style.FieldBorderRight, "border_right", func(s *style.Style) string { return s.BorderRight().String() }},
	{style.FieldBorderTop, "border_top", func(s *style.Style) string { return s.BorderTop().String() }},
	{style.FieldBorderBottom, "border_bottom", func(s *style.Style) string { return s.BorderBottom().String() }},
	{style.FieldAlignItems, "align_items", func(s *style.Style) string { return s.AlignItems().String() }},
	{style.FieldAlignSelf, "align_self", func(s *style.Style) string { return s.AlignSelf().String() }},
	{style.FieldJustifyItems, "justify_items", func(s *style.Style) string { return s.JustifyItems().String() }},
	{style.FieldJustifySelf, "justify_self", func(s *style.Style) string { return s.JustifySelf().String() }},
	{style.FieldAlignContent, "align_content", func(s *style.Style) string { return s.AlignContent().String() }},
	{style.FieldJustifyContent, "justify_content", func(s *style.Style) string { return s.JustifyContent().String() }},
	{style.FieldGapWidth, "gap_width", func(s *style.Style) string { return s.GapWidth().String() }},
	{style.FieldGapHeight, "gap_height", func(s *style.Style) string { return s.GapHeight().String() }},
	{style.FieldTextAlign, "text_align", func(s *style.Style) string { return s.TextAlign().String() }},
	{style.FieldFlexDirection, "flex_direction", func(s *style.Style) string { return s.FlexDirection().String() }},
	{style.FieldFlexWrap, "flex_wrap", func(s *style.Style) string { return s.FlexWrap().String() }},
	{style.FieldFlexBasis, "flex_basis", func(s *style.Style) string { return s.FlexBasis().String() }},
	{style.FieldFlexGrow, "flex_grow", func(s *style.Style) string { return fmt.Sprintf("%g", s.FlexGrow()) }},
	{style.FieldFlexShrink, "flex_shrink", func(s *style.Style) string { return fmt.Sprintf("%g", s.FlexShrink()) }},
	{style.FieldGridTemplateRows, "grid_template_rows", func(s *style.Style) string { return tracksString(s.GridTemplateRows()) }},
	{style.FieldGridTemplateColumns, "grid_template_columns", func(s *style.Style) string { return tracksString(s.GridTemplateColumns()) }},
	{style.FieldGridAutoRows, "grid_auto_rows", func(s *style.Style) string { return tracksString(s.GridAutoRows()) }},
	{style.FieldGridAutoColumns, "grid_auto_columns", func(s *style.Style) string { return tracksString(s.GridAutoColumns()) }},
	{style.FieldGridAutoFlow, "grid_auto_flow", func(s *style.Style) string { return s.GridAutoFlow().String() }},
	{style.FieldGridRow, "grid_row", func(s *style.Style) string { return placementString(s.GridRow()) }},
	{style.FieldGridColumn, "grid_column", func(s *style.Style) string { return placementString(s.GridColumn()) }},
}

func tracksString(tracks []value.Track) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func placementString(start, end value.Placement) string {
	return fmt.Sprintf("%s / %s", start, end)
}
