package easylog

import (
	"io"
	"os"
	"sync"

	"github.com/RealFaceCode/easyLog/ansi"
)

// Options controls construction of a Logger. The zero value is a console
// logger on stdout with color detection, the default file target, and the
// default buffer reservation.
type Options struct {
	// ConsoleWriter receives console output. Defaults to os.Stdout.
	ConsoleWriter io.Writer

	// DefaultFilePath is the path of the default file sink. Defaults to
	// DefaultFilePath ("log.txt").
	DefaultFilePath string

	// BufferCapacity is the advisory reservation of the in-memory buffers.
	BufferCapacity int

	// NoColor starts the logger colorless regardless of terminal detection.
	NoColor bool

	// ForceColor starts the logger colorized even when the console writer is
	// not a terminal. Useful for tests and forced-color environments.
	ForceColor bool

	// OnWriteError observes sink write failures. Log calls never surface
	// errors themselves; this callback plus SinkStats are the way to notice a
	// degraded sink. It may be invoked from any logging goroutine and from
	// the async worker.
	OnWriteError func(error)
}

// Logger is one logging pipeline: a shared sink configuration, a level
// registry, a file sink registry, in-memory buffers, and an optional
// background worker. Every method is safe for concurrent use.
type Logger struct {
	cfg     *sinkConfig
	levels  *levelRegistry
	files   *fileRegistry
	buffers *logBuffers
	disp    *dispatcher
	worker  *worker

	// stateMu serializes SetState's worker transitions so concurrent
	// ThreadedLog flips cannot interleave start and stop.
	stateMu sync.Mutex
}

// New returns a Logger with default options.
func New() *Logger {
	return NewWithOptions(Options{})
}

// NewWithOptions returns a Logger configured by opts.
func NewWithOptions(opts Options) *Logger {
	out := opts.ConsoleWriter
	if out == nil {
		out = os.Stdout
	}
	colorless := opts.NoColor
	if !colorless && !opts.ForceColor {
		colorless = !colorSupported(out)
	}

	l := &Logger{
		cfg:     newSinkConfig(colorless),
		levels:  newLevelRegistry(),
		files:   newFileRegistry(opts.DefaultFilePath),
		buffers: newLogBuffers(opts.BufferCapacity),
	}
	l.disp = &dispatcher{
		cfg:          l.cfg,
		render:       newRenderer(l.levels),
		files:        l.files,
		buffers:      l.buffers,
		consoleOut:   out,
		onWriteError: opts.OnWriteError,
	}
	l.worker = newWorker(l.disp.dispatch)
	return l
}

// log is the single emission path. All public wrappers sit exactly one frame
// above it so the call-site skip stays constant.
func (l *Logger) log(level, label, message string, colors []Colorize) {
	rec := newRecord(level, label, message, colors, 2)
	if l.cfg.snapshot().threaded {
		l.worker.push(rec)
	} else {
		l.disp.dispatch(rec)
	}
}

// Custom logs message under an arbitrary level name. Unregistered levels
// render as UNKNOWN.
func (l *Logger) Custom(level, message string, colors ...Colorize) {
	l.log(level, DefaultLabel, message, colors)
}

// Trace logs message at TRACE level. Optional colorize ranges recolor parts
// of the message on color-capable sinks.
func (l *Logger) Trace(message string, colors ...Colorize) {
	l.log(LevelTrace, DefaultLabel, message, colors)
}

// Debug logs message at DEBUG level.
func (l *Logger) Debug(message string, colors ...Colorize) {
	l.log(LevelDebug, DefaultLabel, message, colors)
}

// Info logs message at INFO level.
func (l *Logger) Info(message string, colors ...Colorize) {
	l.log(LevelInfo, DefaultLabel, message, colors)
}

// Warning logs message at WARNING level.
func (l *Logger) Warning(message string, colors ...Colorize) {
	l.log(LevelWarning, DefaultLabel, message, colors)
}

// Error logs message at ERROR level.
func (l *Logger) Error(message string, colors ...Colorize) {
	l.log(LevelError, DefaultLabel, message, colors)
}

// Fatal logs message at FATAL level. It does not terminate the process.
func (l *Logger) Fatal(message string, colors ...Colorize) {
	l.log(LevelFatal, DefaultLabel, message, colors)
}

// CustomIf logs like Custom when condition is true.
func (l *Logger) CustomIf(condition bool, level, message string, colors ...Colorize) {
	if condition {
		l.log(level, DefaultLabel, message, colors)
	}
}

// TraceIf logs like Trace when condition is true.
func (l *Logger) TraceIf(condition bool, message string, colors ...Colorize) {
	if condition {
		l.log(LevelTrace, DefaultLabel, message, colors)
	}
}

// DebugIf logs like Debug when condition is true.
func (l *Logger) DebugIf(condition bool, message string, colors ...Colorize) {
	if condition {
		l.log(LevelDebug, DefaultLabel, message, colors)
	}
}

// InfoIf logs like Info when condition is true.
func (l *Logger) InfoIf(condition bool, message string, colors ...Colorize) {
	if condition {
		l.log(LevelInfo, DefaultLabel, message, colors)
	}
}

// WarningIf logs like Warning when condition is true.
func (l *Logger) WarningIf(condition bool, message string, colors ...Colorize) {
	if condition {
		l.log(LevelWarning, DefaultLabel, message, colors)
	}
}

// ErrorIf logs like Error when condition is true.
func (l *Logger) ErrorIf(condition bool, message string, colors ...Colorize) {
	if condition {
		l.log(LevelError, DefaultLabel, message, colors)
	}
}

// FatalIf logs like Fatal when condition is true.
func (l *Logger) FatalIf(condition bool, message string, colors ...Colorize) {
	if condition {
		l.log(LevelFatal, DefaultLabel, message, colors)
	}
}

// Label returns a handle that logs with the given label. Labeled records
// render a [label] segment and route into the label's buffers when label
// buffering is enabled.
func (l *Logger) Label(label string) *Labeled {
	if label == "" {
		label = DefaultLabel
	}
	return &Labeled{logger: l, label: label}
}

// SetState flips one configuration toggle. ThreadedLog additionally starts
// the background worker when enabled; disabling stops the worker and blocks
// until its goroutine has exited.
func (l *Logger) SetState(state State, enabled bool) {
	if state != ThreadedLog {
		l.cfg.set(state, enabled)
		return
	}
	l.stateMu.Lock()
	defer l.stateMu.Unlock()
	l.cfg.set(ThreadedLog, enabled)
	if enabled {
		l.worker.start()
	} else {
		l.worker.stop()
	}
}

// Wait drains the async queue: it blocks until every record enqueued so far
// has been dispatched, then stops the worker and clears the ThreadedLog
// toggle. Records enqueued concurrently with Wait may or may not be
// delivered.
func (l *Logger) Wait() {
	l.stateMu.Lock()
	defer l.stateMu.Unlock()
	l.worker.drain()
	l.cfg.set(ThreadedLog, false)
}

// WorkerRunning reports whether the background worker is active.
func (l *Logger) WorkerRunning() bool {
	return l.worker.isRunning()
}

// AddLogLevel registers a new level with its console color. It reports false
// and changes nothing when the level already exists.
func (l *Logger) AddLogLevel(name string, color ansi.Color) bool {
	return l.levels.add(name, color)
}

// AddFileLogger registers a named file target. It reports false and changes
// nothing when the name is already taken.
func (l *Logger) AddFileLogger(name, path string, mode OpenMode) bool {
	return l.files.add(name, path, mode)
}

// UseFileLogger selects the named file target used while DefaultFileLog is
// disabled. An unknown or empty name falls back to the default target.
func (l *Logger) UseFileLogger(name string) {
	l.cfg.useFileLogger(name)
}

// SetDefaultFilePath points the default file sink at path. It does not touch
// an already opened stream; close it first to reopen at the new path.
func (l *Logger) SetDefaultFilePath(path string) {
	l.files.def.setPath(path)
}

// SetBufferCapacity adjusts the advisory buffer reservation hint.
func (l *Logger) SetBufferCapacity(capacity int) {
	l.buffers.setCapacity(capacity)
}

// CloseStream closes the stream of the named file sink; "" or "default"
// closes the default sink. The sink reopens lazily on its next write.
func (l *Logger) CloseStream(name string) error {
	return l.files.closeOne(name)
}

// CloseStreams closes every open file stream.
func (l *Logger) CloseStreams() error {
	return l.files.closeAll()
}

// SinkStats returns the accumulated per-sink write failure counters.
func (l *Logger) SinkStats() SinkStats {
	return l.disp.stats()
}

// ConsoleBuffer returns a copy of the global console buffer.
func (l *Logger) ConsoleBuffer() []string { return l.buffers.consoleLines() }

// FileBuffer returns a copy of the global file buffer.
func (l *Logger) FileBuffer() []string { return l.buffers.fileLines() }

// ConsoleBufferLabels returns a copy of every label-keyed console buffer.
func (l *Logger) ConsoleBufferLabels() map[string][]string { return l.buffers.consoleLabelLines() }

// FileBufferLabels returns a copy of every label-keyed file buffer.
func (l *Logger) FileBufferLabels() map[string][]string { return l.buffers.fileLabelLines() }

// ConsoleBufferByLabel returns a copy of one label's console buffer.
func (l *Logger) ConsoleBufferByLabel(label string) []string { return l.buffers.consoleByLabel(label) }

// FileBufferByLabel returns a copy of one label's file buffer.
func (l *Logger) FileBufferByLabel(label string) []string { return l.buffers.fileByLabel(label) }

// ClearConsoleBuffer empties the global console buffer.
func (l *Logger) ClearConsoleBuffer() { l.buffers.clearConsole() }

// ClearFileBuffer empties the global file buffer.
func (l *Logger) ClearFileBuffer() { l.buffers.clearFile() }

// ClearConsoleBufferLabels drops every label-keyed console buffer.
func (l *Logger) ClearConsoleBufferLabels() { l.buffers.clearConsoleLabels() }

// ClearFileBufferLabels drops every label-keyed file buffer.
func (l *Logger) ClearFileBufferLabels() { l.buffers.clearFileLabels() }

// ClearConsoleBufferByLabel drops one label's console buffer.
func (l *Logger) ClearConsoleBufferByLabel(label string) { l.buffers.clearConsoleByLabel(label) }

// ClearFileBufferByLabel drops one label's file buffer.
func (l *Logger) ClearFileBufferByLabel(label string) { l.buffers.clearFileByLabel(label) }

// ClearBuffers empties all four buffers.
func (l *Logger) ClearBuffers() {
	l.buffers.clearConsole()
	l.buffers.clearFile()
	l.buffers.clearConsoleLabels()
	l.buffers.clearFileLabels()
}

// Labeled logs through its parent Logger with a fixed label. Handles are
// cheap and safe to share.
type Labeled struct {
	logger *Logger
	label  string
}

// Custom logs message under an arbitrary level name with the handle's label.
func (h *Labeled) Custom(level, message string, colors ...Colorize) {
	h.logger.log(level, h.label, message, colors)
}

// Trace logs message at TRACE level with the handle's label.
func (h *Labeled) Trace(message string, colors ...Colorize) {
	h.logger.log(LevelTrace, h.label, message, colors)
}

// Debug logs message at DEBUG level with the handle's label.
func (h *Labeled) Debug(message string, colors ...Colorize) {
	h.logger.log(LevelDebug, h.label, message, colors)
}

// Info logs message at INFO level with the handle's label.
func (h *Labeled) Info(message string, colors ...Colorize) {
	h.logger.log(LevelInfo, h.label, message, colors)
}

// Warning logs message at WARNING level with the handle's label.
func (h *Labeled) Warning(message string, colors ...Colorize) {
	h.logger.log(LevelWarning, h.label, message, colors)
}

// Error logs message at ERROR level with the handle's label.
func (h *Labeled) Error(message string, colors ...Colorize) {
	h.logger.log(LevelError, h.label, message, colors)
}

// Fatal logs message at FATAL level with the handle's label. It does not
// terminate the process.
func (h *Labeled) Fatal(message string, colors ...Colorize) {
	h.logger.log(LevelFatal, h.label, message, colors)
}

// CustomIf logs like Custom when condition is true.
func (h *Labeled) CustomIf(condition bool, level, message string, colors ...Colorize) {
	if condition {
		h.logger.log(level, h.label, message, colors)
	}
}

// TraceIf logs like Trace when condition is true.
func (h *Labeled) TraceIf(condition bool, message string, colors ...Colorize) {
	if condition {
		h.logger.log(LevelTrace, h.label, message, colors)
	}
}

// DebugIf logs like Debug when condition is true.
func (h *Labeled) DebugIf(condition bool, message string, colors ...Colorize) {
	if condition {
		h.logger.log(LevelDebug, h.label, message, colors)
	}
}

// InfoIf logs like Info when condition is true.
func (h *Labeled) InfoIf(condition bool, message string, colors ...Colorize) {
	if condition {
		h.logger.log(LevelInfo, h.label, message, colors)
	}
}

// WarningIf logs like Warning when condition is true.
func (h *Labeled) WarningIf(condition bool, message string, colors ...Colorize) {
	if condition {
		h.logger.log(LevelWarning, h.label, message, colors)
	}
}

// ErrorIf logs like Error when condition is true.
func (h *Labeled) ErrorIf(condition bool, message string, colors ...Colorize) {
	if condition {
		h.logger.log(LevelError, h.label, message, colors)
	}
}

// FatalIf logs like Fatal when condition is true.
func (h *Labeled) FatalIf(condition bool, message string, colors ...Colorize) {
	if condition {
		h.logger.log(LevelFatal, h.label, message, colors)
	}
}
