package style_test

import (
	"fmt"

	"github.com/boxlay/boxlay/pkg/style"
	"github.com/boxlay/boxlay/pkg/value"
)

func ExampleNew() {
	s := style.New(
		style.WithDisplay(style.DisplayFlex),
		style.WithSizeWidth(value.MustLength(300)),
		style.WithFlexGrow(1),
	)
	fmt.Println(s.Display(), s.SizeWidth(), s.FlexGrow())
	// Output: flex 300px 1
}

func ExampleStyle_Merge() {
	base := style.New(
		style.WithSizeWidth(value.MustLength(100)),
		style.WithFlexGrow(1),
	)
	overlay := style.New(
		style.WithSizeWidth(value.MustPercent(0.5)),
	)

	merged := base.Merge(overlay)
	fmt.Println(merged.SizeWidth(), merged.FlexGrow())
	// Output: 50% 1
}

func ExampleStyle_IsSet() {
	s := style.New(style.WithFlexGrow(2))
	fmt.Println(s.IsSet(style.FieldFlexGrow), s.IsSet(style.FieldDisplay))
	// Output: true false
}
