package svgpattern

import (
	"math"
	"testing"
)

func TestApplySpread(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		mode SpreadMethod
		want float64
	}{
		// SpreadPad leaves t alone; the stop search clamps.
		{"pad negative", -0.25, SpreadPad, -0.25},
		{"pad middle", 0.5, SpreadPad, 0.5},
		{"pad over", 1.5, SpreadPad, 1.5},

		// SpreadReflect
		{"reflect negative", -0.25, SpreadReflect, 0.25},
		{"reflect zero", 0, SpreadReflect, 0},
		{"reflect one", 1, SpreadReflect, 1},
		{"reflect 1.25", 1.25, SpreadReflect, 0.75},
		{"reflect 1.5", 1.5, SpreadReflect, 0.5},
		{"reflect 2.0", 2.0, SpreadReflect, 0},
		{"reflect 2.25", 2.25, SpreadReflect, 0.25},
		{"reflect -1.25", -1.25, SpreadReflect, 0.75},

		// SpreadRepeat: whole offsets land on 1, not 0.
		{"repeat negative", -0.25, SpreadRepeat, 0.75},
		{"repeat zero", 0, SpreadRepeat, 0},
		{"repeat one", 1, SpreadRepeat, 1},
		{"repeat 1.25", 1.25, SpreadRepeat, 0.25},
		{"repeat two", 2, SpreadRepeat, 1},
		{"repeat minus one", -1, SpreadRepeat, 1},
		{"repeat 2.5", 2.5, SpreadRepeat, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applySpread(tt.t, tt.t, tt.mode)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("applySpread(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestParseSpreadMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    SpreadMethod
		wantErr bool
	}{
		{"", SpreadPad, false},
		{"pad", SpreadPad, false},
		{"reflect", SpreadReflect, false},
		{"repeat", SpreadRepeat, false},
		{"mirror", SpreadPad, true},
	}
	for _, tt := range tests {
		got, err := ParseSpreadMethod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSpreadMethod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSpreadMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSpreadMethodText(t *testing.T) {
	for _, m := range []SpreadMethod{SpreadPad, SpreadReflect, SpreadRepeat} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		var got SpreadMethod
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != m {
			t.Errorf("text round trip of %v gave %v", m, got)
		}
	}
	var m SpreadMethod
	if err := m.UnmarshalText([]byte("wrap")); err == nil {
		t.Error("UnmarshalText(wrap) should fail")
	}
}
