package easylog

import "sync"

// State enumerates the configuration toggles accepted by SetState. Each one
// switches a single boolean in the pipeline's shared sink configuration.
type State int

const (
	// TerminalLog enables the console sink.
	TerminalLog State = iota
	// FileLog enables the file sink.
	FileLog
	// DefaultFileLog routes file output to the default handle instead of the
	// logger selected with UseFileLogger.
	DefaultFileLog
	// DirectFlush forces a flush of the console or file stream after every
	// write.
	DirectFlush
	// BufferLog appends console-rendered lines to the global console buffer.
	BufferLog
	// BufferLogLabel appends console-rendered lines to the buffer of the
	// record's label.
	BufferLogLabel
	// BufferFileLog appends file-rendered lines to the global file buffer.
	BufferFileLog
	// BufferFileLogLabel appends file-rendered lines to the file buffer of
	// the record's label.
	BufferFileLogLabel
	// ThreadedLog switches between synchronous dispatch and the background
	// worker. Enabling starts the worker; disabling stops it and blocks until
	// it has exited.
	ThreadedLog
	// UseDate includes the date in the metadata block.
	UseDate
	// UseTime includes the time of day in the metadata block.
	UseTime
	// UseFile includes the call-site file name in the metadata block.
	UseFile
	// UseFunction includes the call-site function in the metadata block.
	UseFunction
	// UseLine includes the call-site line number in the metadata block.
	UseLine
	// Colorless disables all escape sequences, including colorize ranges.
	Colorless
)

// settings is a point-in-time copy of the sink configuration. Dispatch works
// on a snapshot so a single record sees one consistent view even while
// SetState runs concurrently.
type settings struct {
	console        bool
	file           bool
	defaultFile    bool
	directFlush    bool
	bufferConsole  bool
	bufferConsoleL bool
	bufferFile     bool
	bufferFileL    bool
	threaded       bool
	useDate        bool
	useTime        bool
	useFile        bool
	useFunction    bool
	useLine        bool
	colorless      bool
	fileLogger     string // active named file logger, "" = default
}

// buffering reports whether any buffer sink is active.
func (s settings) buffering() bool {
	return s.bufferConsole || s.bufferConsoleL || s.bufferFile || s.bufferFileL
}

// metadata reports whether any metadata segment is included.
func (s settings) metadata() bool {
	return s.useDate || s.useTime || s.useFile || s.useFunction || s.useLine
}

// sinkConfig is the shared mutable configuration consulted by every dispatch.
// All mutation goes through set/useFileLogger under one mutex; readers take
// snapshots.
type sinkConfig struct {
	mu sync.Mutex
	s  settings
}

// newSinkConfig seeds the defaults: console on, file off, default file handle
// active, full metadata, colorless only when the environment cannot render
// color.
func newSinkConfig(colorless bool) *sinkConfig {
	return &sinkConfig{s: settings{
		console:     true,
		defaultFile: true,
		useDate:     true,
		useTime:     true,
		useFile:     true,
		useFunction: true,
		useLine:     true,
		colorless:   colorless,
	}}
}

func (c *sinkConfig) snapshot() settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s
}

// set flips one toggle. The ThreadedLog side effects (starting and stopping
// the worker) live in Logger.SetState; here it is just a bit.
func (c *sinkConfig) set(state State, enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch state {
	case TerminalLog:
		c.s.console = enabled
	case FileLog:
		c.s.file = enabled
	case DefaultFileLog:
		c.s.defaultFile = enabled
	case DirectFlush:
		c.s.directFlush = enabled
	case BufferLog:
		c.s.bufferConsole = enabled
	case BufferLogLabel:
		c.s.bufferConsoleL = enabled
	case BufferFileLog:
		c.s.bufferFile = enabled
	case BufferFileLogLabel:
		c.s.bufferFileL = enabled
	case ThreadedLog:
		c.s.threaded = enabled
	case UseDate:
		c.s.useDate = enabled
	case UseTime:
		c.s.useTime = enabled
	case UseFile:
		c.s.useFile = enabled
	case UseFunction:
		c.s.useFunction = enabled
	case UseLine:
		c.s.useLine = enabled
	case Colorless:
		c.s.colorless = enabled
	}
}

// useFileLogger selects the named file logger that receives file output while
// DefaultFileLog is disabled. The empty name selects the default handle.
func (c *sinkConfig) useFileLogger(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.fileLogger = name
}
