// Package ansi provides the fixed ANSI color palette used by easylog's
// console renderer. Colors are addressed through the Color enum rather than by
// raw escape strings so that level registration, colorize ranges, and
// configuration files can all refer to the same sixteen-entry palette.
package ansi

import "strings"

// Color identifies one entry of the palette. The zero value None means "no
// color": it maps to an empty sequence and is reported as invalid.
type Color uint8

// Palette entries: reset, eight base colors, and their bold variants.
const (
	None Color = iota
	Reset
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BoldBlack
	BoldRed
	BoldGreen
	BoldYellow
	BoldBlue
	BoldMagenta
	BoldCyan
	BoldWhite
)

// ResetSeq is the escape sequence that restores the terminal's default
// rendition. It closes every colorized span the renderer opens.
const ResetSeq = "\033[0m"

var sequences = [...]string{
	None:        "",
	Reset:       ResetSeq,
	Black:       "\033[30m",
	Red:         "\033[31m",
	Green:       "\033[32m",
	Yellow:      "\033[33m",
	Blue:        "\033[34m",
	Magenta:     "\033[35m",
	Cyan:        "\033[36m",
	White:       "\033[37m",
	BoldBlack:   "\033[1m\033[30m",
	BoldRed:     "\033[1m\033[31m",
	BoldGreen:   "\033[1m\033[32m",
	BoldYellow:  "\033[1m\033[33m",
	BoldBlue:    "\033[1m\033[34m",
	BoldMagenta: "\033[1m\033[35m",
	BoldCyan:    "\033[1m\033[36m",
	BoldWhite:   "\033[1m\033[37m",
}

var names = [...]string{
	None:        "none",
	Reset:       "reset",
	Black:       "black",
	Red:         "red",
	Green:       "green",
	Yellow:      "yellow",
	Blue:        "blue",
	Magenta:     "magenta",
	Cyan:        "cyan",
	White:       "white",
	BoldBlack:   "bold_black",
	BoldRed:     "bold_red",
	BoldGreen:   "bold_green",
	BoldYellow:  "bold_yellow",
	BoldBlue:    "bold_blue",
	BoldMagenta: "bold_magenta",
	BoldCyan:    "bold_cyan",
	BoldWhite:   "bold_white",
}

// Sequence returns the escape sequence for c, or the empty string when c is
// None or outside the palette.
func (c Color) Sequence() string {
	if int(c) >= len(sequences) {
		return ""
	}
	return sequences[c]
}

// Valid reports whether c names an actual palette entry. None and anything
// beyond BoldWhite are invalid.
func (c Color) Valid() bool {
	return c > None && c <= BoldWhite
}

// String returns the lower-case name of c, e.g. "bold_green". Unknown values
// render as "none".
func (c Color) String() string {
	if int(c) >= len(names) {
		return names[None]
	}
	return names[c]
}

// ParseColor resolves a palette entry by name, case insensitively. Both
// "bold_red" and "bold-red" spellings are accepted. The boolean is false when
// the name does not match any entry.
func ParseColor(name string) (Color, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for c, n := range names {
		if n == normalized && Color(c) != None {
			return Color(c), true
		}
	}
	return None, false
}
