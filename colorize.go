package easylog

import (
	"strings"

	"github.com/RealFaceCode/easyLog/ansi"
)

// Colorize describes one recoloring request against a message: every (or only
// the first) standalone occurrence of Target is wrapped in Color's escape
// sequence. Ranges are applied in the order they are passed to a log call;
// a later range that lands inside the span of an earlier one restores that
// earlier color instead of resetting to the terminal default.
type Colorize struct {
	Target     string
	Color      ansi.Color
	ReplaceAll bool
}

// Color builds a Colorize range that recolors the first standalone occurrence
// of target.
func Color(target string, color ansi.Color) Colorize {
	return Colorize{Target: target, Color: color}
}

// ColorAll builds a Colorize range that recolors every standalone occurrence
// of target.
func ColorAll(target string, color ansi.Color) Colorize {
	return Colorize{Target: target, Color: color, ReplaceAll: true}
}

// isPunctuation reports whether c belongs to the boundary set that makes a
// match standalone.
func isPunctuation(c byte) bool {
	switch c {
	case ' ', ',', '.', '!', '?', ';', ':', '\n', '\t':
		return true
	}
	return false
}

// standaloneIndex returns the position of the next standalone occurrence of
// match in s at or after from, or -1. A standalone occurrence is bounded on
// each side by a punctuation character or by the string edge.
func standaloneIndex(s, match string, from int) int {
	if match == "" {
		return -1
	}
	for from <= len(s)-len(match) {
		idx := strings.Index(s[from:], match)
		if idx < 0 {
			return -1
		}
		pos := from + idx
		end := pos + len(match)
		leadOK := pos == 0 || isPunctuation(s[pos-1])
		tailOK := end == len(s) || isPunctuation(s[end])
		if leadOK && tailOK {
			return pos
		}
		from = pos + len(match)
	}
	return -1
}

// replaceStandalone substitutes standalone occurrences of match in s with
// replacement. With all=false only the first occurrence is replaced. With
// all=true the search resumes just past the inserted replacement text, since
// each substitution shifts the remainder of the string.
func replaceStandalone(s, match, replacement string, all bool) string {
	pos := standaloneIndex(s, match, 0)
	if pos < 0 {
		return s
	}
	if !all {
		return s[:pos] + replacement + s[pos+len(match):]
	}
	var b strings.Builder
	for pos >= 0 {
		b.WriteString(s[:pos])
		b.WriteString(replacement)
		s = s[pos+len(match):]
		pos = standaloneIndex(s, match, 0)
	}
	b.WriteString(s)
	return b.String()
}

// colorizedReplacement is one prepared substitution: the target text, the
// fully assembled replacement (color + target + closing color), and the
// bookkeeping needed to decide how the next range closes its span.
type colorizedReplacement struct {
	target      string
	replacement string
	color       string // escape sequence this range paints with
	spanEnd     int    // position just past the first occurrence in the base string
	all         bool
}

// prepareColorize turns ranges into concrete substitutions against msg.
// Ranges with an empty target and an invalid color are skipped. The closing
// sequence of each range is the previous range's color when the new range
// begins before the previous span has ended, otherwise the palette reset.
func prepareColorize(msg string, ranges []Colorize) []colorizedReplacement {
	prepared := make([]colorizedReplacement, 0, len(ranges))
	for _, r := range ranges {
		if r.Target == "" && !r.Color.Valid() {
			continue
		}
		prevColor := ansi.ResetSeq
		prevSpanEnd := 0
		if n := len(prepared); n > 0 {
			prevColor = prepared[n-1].color
			prevSpanEnd = prepared[n-1].spanEnd
		}
		pos := strings.Index(msg, r.Target)
		closing := ansi.ResetSeq
		if pos >= 0 && pos < prevSpanEnd {
			closing = prevColor
		}
		spanEnd := 0
		if pos >= 0 {
			spanEnd = pos + len(r.Target)
		}
		seq := r.Color.Sequence()
		prepared = append(prepared, colorizedReplacement{
			target:      r.Target,
			replacement: seq + r.Target + closing,
			color:       seq,
			spanEnd:     spanEnd,
			all:         r.ReplaceAll,
		})
	}
	return prepared
}

// colorizeMessage applies ranges to msg, in order, and returns the colorized
// result. Ranges whose target never occurs standalone are no-ops.
func colorizeMessage(msg string, ranges []Colorize) string {
	if len(ranges) == 0 {
		return msg
	}
	for _, p := range prepareColorize(msg, ranges) {
		msg = replaceStandalone(msg, p.target, p.replacement, p.all)
	}
	return msg
}
