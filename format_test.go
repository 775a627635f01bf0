package svgpattern

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{-0.5, "-0.5"},
		{1, "1"},
		{100, "100"},
		{123456789012, "123456789012"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{6.123233995736766e-17, "6.123233995736766e-17"},
		{1e21, "1e+21"},
		{-2.5e-8, "-2.5e-8"},
		{math.Copysign(0, -1), "0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestForcePercent(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{0.5, "50%"},
		{0.0, "0%"},
		{1, "100%"},
		{0.07, "7.000000000000001%"},
		{float32(0.25), "25%"},
		{"33%", "33%"},
		{"inherit", "inherit"},
	}
	for _, tt := range tests {
		if got := ForcePercent(tt.in); got != tt.want {
			t.Errorf("ForcePercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
