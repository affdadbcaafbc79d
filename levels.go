package easylog

import (
	"sync"

	"github.com/RealFaceCode/easyLog/ansi"
)

// Built-in level names. Levels are plain strings so applications can register
// additional ones at run time through AddLogLevel.
const (
	LevelTrace   = "TRACE"
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
	LevelFatal   = "FATAL"
)

// unknownLevel is what a record with an unregistered level renders as.
const unknownLevel = "UNKNOWN"

// unknownLevelColor is the console color of the UNKNOWN fallback tag.
const unknownLevelColor = ansi.BoldWhite

// levelRegistry maps a level name to its console color. Registration is
// insert-if-absent: a name can never be recolored once present.
type levelRegistry struct {
	mu     sync.RWMutex
	colors map[string]ansi.Color
}

func newLevelRegistry() *levelRegistry {
	return &levelRegistry{
		colors: map[string]ansi.Color{
			LevelTrace:   ansi.BoldCyan,
			LevelDebug:   ansi.BoldBlue,
			LevelInfo:    ansi.BoldGreen,
			LevelWarning: ansi.BoldYellow,
			LevelError:   ansi.BoldRed,
			LevelFatal:   ansi.BoldMagenta,
		},
	}
}

// add registers name with color. It reports false and leaves the registry
// untouched when name is already present.
func (r *levelRegistry) add(name string, color ansi.Color) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.colors[name]; exists {
		return false
	}
	r.colors[name] = color
	return true
}

// resolve returns the color registered for name. Unregistered names report
// ok=false; the renderer then falls back to the UNKNOWN tag.
func (r *levelRegistry) resolve(name string) (ansi.Color, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	color, ok := r.colors[name]
	return color, ok
}
