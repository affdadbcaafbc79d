package easylog

import "github.com/RealFaceCode/easyLog/ansi"

// std is the package-level logger behind the top-level functions.
var std = New()

// Default returns the package-level Logger used by the top-level functions.
func Default() *Logger {
	return std
}

// Custom logs through the package-level logger under an arbitrary level name.
func Custom(level, message string, colors ...Colorize) {
	std.log(level, DefaultLabel, message, colors)
}

// Trace logs through the package-level logger at TRACE level.
func Trace(message string, colors ...Colorize) {
	std.log(LevelTrace, DefaultLabel, message, colors)
}

// Debug logs through the package-level logger at DEBUG level.
func Debug(message string, colors ...Colorize) {
	std.log(LevelDebug, DefaultLabel, message, colors)
}

// Info logs through the package-level logger at INFO level.
func Info(message string, colors ...Colorize) {
	std.log(LevelInfo, DefaultLabel, message, colors)
}

// Warning logs through the package-level logger at WARNING level.
func Warning(message string, colors ...Colorize) {
	std.log(LevelWarning, DefaultLabel, message, colors)
}

// Error logs through the package-level logger at ERROR level.
func Error(message string, colors ...Colorize) {
	std.log(LevelError, DefaultLabel, message, colors)
}

// Fatal logs through the package-level logger at FATAL level. It does not
// terminate the process.
func Fatal(message string, colors ...Colorize) {
	std.log(LevelFatal, DefaultLabel, message, colors)
}

// CustomIf logs like Custom when condition is true.
func CustomIf(condition bool, level, message string, colors ...Colorize) {
	if condition {
		std.log(level, DefaultLabel, message, colors)
	}
}

// TraceIf logs like Trace when condition is true.
func TraceIf(condition bool, message string, colors ...Colorize) {
	if condition {
		std.log(LevelTrace, DefaultLabel, message, colors)
	}
}

// DebugIf logs like Debug when condition is true.
func DebugIf(condition bool, message string, colors ...Colorize) {
	if condition {
		std.log(LevelDebug, DefaultLabel, message, colors)
	}
}

// InfoIf logs like Info when condition is true.
func InfoIf(condition bool, message string, colors ...Colorize) {
	if condition {
		std.log(LevelInfo, DefaultLabel, message, colors)
	}
}

// WarningIf logs like Warning when condition is true.
func WarningIf(condition bool, message string, colors ...Colorize) {
	if condition {
		std.log(LevelWarning, DefaultLabel, message, colors)
	}
}

// ErrorIf logs like Error when condition is true.
func ErrorIf(condition bool, message string, colors ...Colorize) {
	if condition {
		std.log(LevelError, DefaultLabel, message, colors)
	}
}

// FatalIf logs like Fatal when condition is true.
func FatalIf(condition bool, message string, colors ...Colorize) {
	if condition {
		std.log(LevelFatal, DefaultLabel, message, colors)
	}
}

// Label returns a labeled handle on the package-level logger.
func Label(label string) *Labeled {
	return std.Label(label)
}

// SetState flips one configuration toggle on the package-level logger.
func SetState(state State, enabled bool) {
	std.SetState(state, enabled)
}

// Wait drains the package-level logger's async queue.
func Wait() {
	std.Wait()
}

// WorkerRunning reports whether the package-level worker is active.
func WorkerRunning() bool {
	return std.WorkerRunning()
}

// AddLogLevel registers a level on the package-level logger.
func AddLogLevel(name string, color ansi.Color) bool {
	return std.AddLogLevel(name, color)
}

// AddFileLogger registers a named file target on the package-level logger.
func AddFileLogger(name, path string, mode OpenMode) bool {
	return std.AddFileLogger(name, path, mode)
}

// UseFileLogger selects the named file target on the package-level logger.
func UseFileLogger(name string) {
	std.UseFileLogger(name)
}

// SetDefaultFilePath points the package-level default file sink at path.
func SetDefaultFilePath(path string) {
	std.SetDefaultFilePath(path)
}

// SetBufferCapacity adjusts the package-level buffer reservation hint.
func SetBufferCapacity(capacity int) {
	std.SetBufferCapacity(capacity)
}

// CloseStream closes one package-level file stream.
func CloseStream(name string) error {
	return std.CloseStream(name)
}

// CloseStreams closes every open package-level file stream.
func CloseStreams() error {
	return std.CloseStreams()
}

// Stats returns the package-level sink failure counters.
func Stats() SinkStats {
	return std.SinkStats()
}

// ConsoleBuffer returns a copy of the package-level console buffer.
func ConsoleBuffer() []string { return std.ConsoleBuffer() }

// FileBuffer returns a copy of the package-level file buffer.
func FileBuffer() []string { return std.FileBuffer() }

// ConsoleBufferLabels returns a copy of the package-level label-keyed console buffers.
func ConsoleBufferLabels() map[string][]string { return std.ConsoleBufferLabels() }

// FileBufferLabels returns a copy of the package-level label-keyed file buffers.
func FileBufferLabels() map[string][]string { return std.FileBufferLabels() }

// ConsoleBufferByLabel returns a copy of one package-level label console buffer.
func ConsoleBufferByLabel(label string) []string { return std.ConsoleBufferByLabel(label) }

// FileBufferByLabel returns a copy of one package-level label file buffer.
func FileBufferByLabel(label string) []string { return std.FileBufferByLabel(label) }

// ClearConsoleBuffer empties the package-level console buffer.
func ClearConsoleBuffer() { std.ClearConsoleBuffer() }

// ClearFileBuffer empties the package-level file buffer.
func ClearFileBuffer() { std.ClearFileBuffer() }

// ClearConsoleBufferLabels drops the package-level label-keyed console buffers.
func ClearConsoleBufferLabels() { std.ClearConsoleBufferLabels() }

// ClearFileBufferLabels drops the package-level label-keyed file buffers.
func ClearFileBufferLabels() { std.ClearFileBufferLabels() }

// ClearConsoleBufferByLabel drops one package-level label console buffer.
func ClearConsoleBufferByLabel(label string) { std.ClearConsoleBufferByLabel(label) }

// ClearFileBufferByLabel drops one package-level label file buffer.
func ClearFileBufferByLabel(label string) { std.ClearFileBufferByLabel(label) }

// ClearBuffers empties all package-level buffers.
func ClearBuffers() { std.ClearBuffers() }
