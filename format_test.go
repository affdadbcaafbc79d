package easylog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	easylog "github.com/RealFaceCode/easyLog"
)

func TestFormatPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"indexed", "{0},{1}", []any{1, 2}, "1,2"},
		{"indexed reversed", "{1},{0}", []any{1, 2}, "2,1"},
		{"empty braces", "{},{}", []any{1, 2}, "1,2"},
		{"spaced braces", "{ } and { }", []any{"this", "that"}, "this and that"},
		{"mixed priority", "{1} {} {0}", []any{"a", "b", "c"}, "b c a"},
		{"string spec", "name={:s}", []any{"alice"}, "name=alice"},
		{"int spec", "n={:d}", []any{42}, "n=42"},
		{"excess placeholders stay", "{} {}", []any{"only"}, "only {}"},
		{"excess args dropped", "{}", []any{"a", "b"}, "a"},
		{"no placeholders", "static text", []any{"ignored"}, "static text"},
		{"index beats empty", "{} {0}", []any{"x"}, "{} x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, easylog.Format(tt.template, tt.args...))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		arg      any
		want     string
	}{
		{"truncate", "{:f2}", 3.14159, "3.14"},
		{"pad", "{:f4}", 1.5, "1.5000"},
		{"default precision", "{:f}", 0.5, "0.500000"},
		{"malformed precision", "{:fx}", 3.14159, "3.141590"},
		{"malformed precision pads", "{:f?}", 1.5, "1.500000"},
		{"integer passthrough", "{:f2}", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, easylog.Format(tt.template, tt.arg))
		})
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		name     string
		template string
		arg      any
		want     string
	}{
		{"wide value", "{:x4}", 6789, "0x1A85"},
		{"zero padded", "{:x4}", 3, "0x0003"},
		{"no padding", "{:x}", 255, "0xFF"},
		{"padding shorter than value", "{:x2}", 6789, "0x1A85"},
		{"non numeric drops placeholder", "{:x4}", "nope", ""},
		{"fractional drops placeholder", "{:x4}", 1.5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, easylog.Format(tt.template, tt.arg))
		})
	}
}

func TestFormatConsumesOnePlaceholderPerArg(t *testing.T) {
	// Each argument resolves at most one placeholder even when several forms
	// are present.
	got := easylog.Format("{0} {} {:d}", "x", "y", 3)
	assert.Equal(t, "x y 3", got)
}
