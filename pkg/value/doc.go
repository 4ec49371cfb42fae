// Package value defines the typed vocabulary used by style properties:
// lengths, percentages, keywords like auto and min-content, grid track
// sizing functions and grid placements.
//
// Each style property accepts a restricted subset of these types,
// expressed as sealed interfaces (Dimension, LengthPercentage,
// LengthPercentageAuto, TrackMin, TrackMax, Track, Placement). Passing a
// value outside a property's accept set is a compile error rather than a
// runtime one.
//
// Values compare by exact bit pattern: two NaN lengths are equal, and
// positive and negative zero are distinct. Hash64 is consistent with
// Equal for use in hash-keyed caches.
package value
