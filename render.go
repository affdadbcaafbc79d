package easylog

import (
	"strconv"
	"strings"

	"github.com/RealFaceCode/easyLog/ansi"
)

// metadataColor paints the call-site block on the console.
const metadataColor = ansi.BoldWhite

// renderer assembles the canonical line for a record:
//
//	LEVEL\t: [label] [date | time | file | function | line] : message\n
//
// The label segment is skipped for the default label; every metadata segment
// honors its include flag, and the whole bracketed block disappears when all
// of them are off. Console rendering wraps the level tag and the metadata
// block in color; file rendering never does.
type renderer struct {
	levels *levelRegistry
	clock  *timestampCache
}

func newRenderer(levels *levelRegistry) *renderer {
	return &renderer{levels: levels, clock: newTimestampCache()}
}

// line renders rec with message (already colorized when applicable).
// colorized selects the console form; the file form ignores color entirely.
func (r *renderer) line(rec record, st settings, message string, colorized bool) string {
	useColor := colorized && !st.colorless

	var b strings.Builder
	r.writeLevelTag(&b, rec.level, useColor)
	b.WriteString("\t: ")
	if rec.label != DefaultLabel {
		b.WriteByte('[')
		b.WriteString(rec.label)
		b.WriteByte(']')
		if st.metadata() {
			b.WriteByte(' ')
		}
	}
	r.writeMetadata(&b, rec, st, useColor)
	b.WriteString(" : ")
	b.WriteString(message)
	b.WriteByte('\n')
	return b.String()
}

func (r *renderer) writeLevelTag(b *strings.Builder, level string, useColor bool) {
	color, known := r.levels.resolve(level)
	if !known {
		level = unknownLevel
		color = unknownLevelColor
	}
	if !useColor {
		b.WriteString(level)
		return
	}
	b.WriteString(color.Sequence())
	b.WriteString(level)
	b.WriteString(ansi.ResetSeq)
}

func (r *renderer) writeMetadata(b *strings.Builder, rec record, st settings, useColor bool) {
	if !st.metadata() {
		return
	}
	if useColor {
		b.WriteString(metadataColor.Sequence())
	}
	b.WriteByte('[')
	if st.useDate || st.useTime {
		date, clock := r.clock.at(rec.when)
		if st.useDate {
			b.WriteString(date)
			b.WriteString(" | ")
		}
		if st.useTime {
			b.WriteString(clock)
			b.WriteString(" | ")
		}
	}
	if st.useFile {
		b.WriteString(rec.site.File)
		b.WriteString(" | ")
	}
	if st.useFunction {
		b.WriteString(rec.site.Function)
		b.WriteString(" | ")
	}
	if st.useLine {
		b.WriteString(strconv.Itoa(rec.site.Line))
	}
	b.WriteByte(']')
	if useColor {
		b.WriteString(ansi.ResetSeq)
	}
}
