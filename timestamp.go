package easylog

import (
	"sync/atomic"
	"time"
)

// Layouts of the rendered metadata block's date and time segments.
const (
	dateLayout = "Jan 02 2006"
	timeLayout = "15:04:05"
)

// stamp is one pre-formatted date/time pair.
type stamp struct {
	unix  int64
	date  string
	clock string
}

// timestampCache avoids re-running time.Format on every record. Both layouts
// only change once per second, so the formatted pair is cached per unix
// second and swapped atomically; concurrent loggers racing on the same second
// just format the same value twice.
type timestampCache struct {
	current atomic.Pointer[stamp]
	now     func() time.Time
}

func newTimestampCache() *timestampCache {
	return &timestampCache{now: time.Now}
}

// at returns the formatted date and time segments for the current moment.
func (c *timestampCache) at(t time.Time) (date, clock string) {
	unix := t.Unix()
	if s := c.current.Load(); s != nil && s.unix == unix {
		return s.date, s.clock
	}
	s := &stamp{
		unix:  unix,
		date:  t.Format(dateLayout),
		clock: t.Format(timeLayout),
	}
	c.current.Store(s)
	return s.date, s.clock
}
