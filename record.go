package easylog

import "time"

// DefaultLabel is the sentinel for unlabeled records. Records carrying it
// render without a label segment and are not routed into label-keyed buffers
// under a visible name of their own.
const DefaultLabel = "default"

// record is one log event on its way to the sinks. A record handed to the
// async worker owns all of its data: strings are immutable and the colorize
// slice is copied on creation, so nothing in it aliases the call site.
type record struct {
	level   string
	label   string
	message string
	colors  []Colorize
	site    CallSite
	when    time.Time
}

// newRecord assembles a record at the call site. skip counts the stack frames
// between the caller of the public log function and this call.
func newRecord(level, label, message string, colors []Colorize, skip int) record {
	var owned []Colorize
	if len(colors) > 0 {
		owned = make([]Colorize, len(colors))
		copy(owned, colors)
	}
	return record{
		level:   level,
		label:   label,
		message: message,
		colors:  owned,
		site:    captureCallSite(skip + 1),
		when:    time.Now(),
	}
}
