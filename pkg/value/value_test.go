package value

import (
	"math"
	"testing"

	"github.com/boxlay/boxlay/pkg/layouterr"
)

func TestNewLength(t *testing.T) {
	tests := []struct {
		name    string
		input   float32
		wantErr bool
	}{
		{"positive", 42.5, false},
		{"zero", 0, false},
		{"negative", -10, false},
		{"infinity", float32(math.Inf(1)), false},
		{"nan", float32(math.NaN()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLength(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLength(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !layouterr.Is(err, layouterr.CodeInvalidLength) {
					t.Errorf("error code = %v, want %v", layouterr.GetCode(err), layouterr.CodeInvalidLength)
				}
				return
			}
			if l.Value() != tt.input {
				t.Errorf("Value() = %v, want %v", l.Value(), tt.input)
			}
		})
	}
}

func TestNewPercent(t *testing.T) {
	tests := []struct {
		name    string
		input   float32
		wantErr bool
	}{
		{"zero", 0, false},
		{"half", 0.5, false},
		{"one", 1, false},
		{"above one", 1.5, true},
		{"negative", -0.1, true},
		{"nan", float32(math.NaN()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPercent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPercent(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !layouterr.Is(err, layouterr.CodeInvalidPercent) {
				t.Errorf("error code = %v, want %v", layouterr.GetCode(err), layouterr.CodeInvalidPercent)
			}
		})
	}
}

func TestGridLineZeroRejected(t *testing.T) {
	if _, err := NewGridLine(0); !layouterr.Is(err, layouterr.CodeInvalidGridLine) {
		t.Errorf("NewGridLine(0) error = %v, want %v", err, layouterr.CodeInvalidGridLine)
	}
	if g := MustGridLine(-2); g.Line() != -2 {
		t.Errorf("Line() = %d, want -2", g.Line())
	}
}

func TestGridSpanZeroRejected(t *testing.T) {
	if _, err := NewGridSpan(0); !layouterr.Is(err, layouterr.CodeInvalidGridSpan) {
		t.Errorf("NewGridSpan(0) error = %v, want %v", err, layouterr.CodeInvalidGridSpan)
	}
}

func TestBitPatternEquality(t *testing.T) {
	nan := float32(math.NaN())

	a := Length{v: nan}
	b := Length{v: nan}
	if !a.Equal(b) {
		t.Error("NaN lengths should compare equal by bit pattern")
	}
	if a.Hash64() != b.Hash64() {
		t.Error("equal values must hash identically")
	}

	pos := MustLength(0)
	neg := Length{v: float32(math.Copysign(0, -1))}
	if pos.Equal(neg) {
		t.Error("positive and negative zero should differ by bit pattern")
	}
}

func TestHashDistinguishesVariants(t *testing.T) {
	l := MustLength(0.5)
	p := MustPercent(0.5)
	if l.Hash64() == p.Hash64() {
		t.Error("length and percent with the same payload should hash differently")
	}
	if (Auto{}).Hash64() == (MinContent{}).Hash64() {
		t.Error("keyword variants should hash differently")
	}
}

func TestStringForms(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{MustLength(10).String(), "10px"},
		{MustPercent(0.5).String(), "50%"},
		{Auto{}.String(), "auto"},
		{MinContent{}.String(), "min-content"},
		{MaxContent{}.String(), "max-content"},
		{MustFraction(2).String(), "2fr"},
		{NewFitContent(MustLength(100)).String(), "fit-content(100px)"},
		{NewMinmax(MustLength(50), MustFraction(1)).String(), "minmax(50px, 1fr)"},
		{MustGridLine(-1).String(), "-1"},
		{MustGridSpan(3).String(), "span 3"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

// Compile-time accept-set checks.
var (
	_ Dimension            = Length{}
	_ Dimension            = Percent{}
	_ Dimension            = Auto{}
	_ LengthPercentage     = Length{}
	_ LengthPercentage     = Percent{}
	_ LengthPercentageAuto = Auto{}
	_ AvailableSpace       = Definite{}
	_ AvailableSpace       = MinContent{}
	_ AvailableSpace       = MaxContent{}
	_ TrackMax             = Fraction{}
	_ TrackMax             = FitContent{}
	_ Track                = Minmax{}
	_ Track                = Fraction{}
	_ Placement            = Auto{}
	_ Placement            = GridLine{}
	_ Placement            = GridSpan{}
)
