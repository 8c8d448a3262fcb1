package main

import (
	"testing"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format, out string
		want        string
	}{
		{"", "drawing.png", "png"},
		{"", "drawing.json", "json"},
		{"", "drawing.svg", "svg"},
		{"", "-", "svg"},
		{"PNG", "-", "png"},
		{"json", "drawing.png", "json"},
	}
	for _, tt := range tests {
		if got := outputFormat(tt.format, tt.out); got != tt.want {
			t.Errorf("outputFormat(%q, %q) = %q, want %q", tt.format, tt.out, got, tt.want)
		}
	}
}
