// Package style implements partial CSS-like styles with cascade merging.
//
// A Style pairs a full property record with a mask of explicitly-set
// fields. Properties that were never mentioned read as their defaults
// and do not participate in merging; properties that were set, even to
// their default value, overlay the base when merged. Merge implements
// the cascade primitive: base.Merge(overlay) copies every field whose
// flag is set in overlay and keeps base's value everywhere else.
//
// Styles are built either from functional options:
//
//	s := style.New(
//		style.WithDisplay(style.DisplayFlex),
//		style.WithSizeWidth(value.MustLength(100)),
//		style.WithFlexGrow(1),
//	)
//
// or incrementally through setters, which always set the field's flag.
// Reading a style back out of a tree sets every flag, because the
// engine record does not remember which fields were authored.
package style
