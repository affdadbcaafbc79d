package ansi_test

import (
	"strings"
	"testing"

	"github.com/RealFaceCode/easyLog/ansi"
)

func TestSequenceCoversPalette(t *testing.T) {
	for c := ansi.Reset; c <= ansi.BoldWhite; c++ {
		if ansi.Color(c).Sequence() == "" {
			t.Fatalf("color %v has no escape sequence", c)
		}
	}
	if ansi.None.Sequence() != "" {
		t.Fatalf("None must map to an empty sequence, got %q", ansi.None.Sequence())
	}
}

func TestBoldVariantsPrefixBold(t *testing.T) {
	for c := ansi.BoldBlack; c <= ansi.BoldWhite; c++ {
		seq := c.Sequence()
		if !strings.HasPrefix(seq, "\033[1m") {
			t.Fatalf("%v: expected bold prefix, got %q", c, seq)
		}
	}
}

func TestValid(t *testing.T) {
	if ansi.None.Valid() {
		t.Fatal("None must be invalid")
	}
	if !ansi.Reset.Valid() || !ansi.BoldWhite.Valid() {
		t.Fatal("palette bounds must be valid")
	}
	if ansi.Color(200).Valid() {
		t.Fatal("out-of-range color must be invalid")
	}
	if ansi.Color(200).Sequence() != "" {
		t.Fatal("out-of-range color must have no sequence")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]ansi.Color{
		"red":        ansi.Red,
		"RED":        ansi.Red,
		"bold_green": ansi.BoldGreen,
		"bold-green": ansi.BoldGreen,
		" cyan ":     ansi.Cyan,
	}
	for in, want := range cases {
		got, ok := ansi.ParseColor(in)
		if !ok || got != want {
			t.Fatalf("ParseColor(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := ansi.ParseColor("ultraviolet"); ok {
		t.Fatal("unknown color name must not parse")
	}
	if _, ok := ansi.ParseColor("none"); ok {
		t.Fatal("none is not a parsable palette entry")
	}
}

func TestRoundTripNames(t *testing.T) {
	for c := ansi.Reset; c <= ansi.BoldWhite; c++ {
		parsed, ok := ansi.ParseColor(c.String())
		if !ok || parsed != c {
			t.Fatalf("round trip failed for %v: got %v, %v", c, parsed, ok)
		}
	}
}
