// Package stylesheet loads named styles and node hierarchies from TOML
// documents.
//
// A document declares styles under [styles.<name>] with one key per
// style property, and an optional node hierarchy under [[nodes]]:
//
//	[styles.card]
//	display = "flex"
//	flex_direction = "column"
//	size_width = 300
//	padding_left = 8
//
//	[styles.cell]
//	flex_grow = 1.0
//
//	[[nodes]]
//	name = "root"
//	style = "card"
//
//	  [[nodes.children]]
//	  name = "body"
//	  style = "cell"
//
// Dimensional keys take a bare number (pixels), a keyword string
// ("auto", "min-content", "max-content"), or an inline table such as
// {percent = 0.5}, {fraction = 1.0}, {span = 2} or
// {minmax = {min = "auto", max = {fraction = 1.0}}}. There is no CSS
// string syntax; values are structured TOML.
package stylesheet
