package easylog

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// SinkStats aggregates write failures per sink so callers can notice a dead
// or degraded sink without log calls ever returning errors.
type SinkStats struct {
	ConsoleFailures uint64
	FileFailures    uint64
}

type syncer interface {
	Sync() error
}

// dispatcher fans a record out to the console, file, and buffer sinks per the
// current configuration snapshot. Each sink has its own mutex and no dispatch
// holds more than one of them at a time, so a stalled file write never blocks
// console output or another file.
type dispatcher struct {
	cfg     *sinkConfig
	render  *renderer
	files   *fileRegistry
	buffers *logBuffers

	consoleMu  sync.Mutex
	consoleOut io.Writer

	consoleFailures atomic.Uint64
	fileFailures    atomic.Uint64
	onWriteError    func(error)
}

// dispatch delivers rec to every enabled sink. Failures are counted and
// reported through the configured callback; they never escape to the caller,
// and a panicking writer only disables that one delivery.
func (d *dispatcher) dispatch(rec record) {
	st := d.cfg.snapshot()

	message := rec.message
	if len(rec.colors) > 0 && !st.colorless {
		message = colorizeMessage(message, rec.colors)
	}

	var consoleLine, fileLine string
	if st.console || st.bufferConsole || st.bufferConsoleL {
		consoleLine = d.render.line(rec, st, message, true)
	}
	if st.file || st.bufferFile || st.bufferFileL {
		fileLine = d.render.line(rec, st, message, false)
	}

	if st.console {
		d.writeConsole(consoleLine, st.directFlush)
	}
	if st.file {
		d.writeFile(fileLine, st)
	}
	if st.buffering() {
		d.buffers.append(st, rec.label, consoleLine, fileLine)
	}
}

func (d *dispatcher) writeConsole(line string, flush bool) {
	defer d.recoverSinkPanic(&d.consoleFailures, "console")
	d.consoleMu.Lock()
	defer d.consoleMu.Unlock()
	if _, err := io.WriteString(d.consoleOut, line); err != nil {
		d.sinkFailed(&d.consoleFailures, fmt.Errorf("console write: %w", err))
		return
	}
	if flush {
		if s, ok := d.consoleOut.(syncer); ok {
			_ = s.Sync()
		}
	}
}

func (d *dispatcher) writeFile(line string, st settings) {
	defer d.recoverSinkPanic(&d.fileFailures, "file")
	sink := d.files.active(st)
	if err := sink.write(line, st.directFlush); err != nil {
		d.sinkFailed(&d.fileFailures, err)
	}
}

func (d *dispatcher) sinkFailed(counter *atomic.Uint64, err error) {
	counter.Add(1)
	if d.onWriteError != nil {
		d.onWriteError(err)
	}
}

func (d *dispatcher) recoverSinkPanic(counter *atomic.Uint64, sink string) {
	if r := recover(); r != nil {
		d.sinkFailed(counter, fmt.Errorf("panic writing %s sink: %v", sink, r))
	}
}

func (d *dispatcher) stats() SinkStats {
	return SinkStats{
		ConsoleFailures: d.consoleFailures.Load(),
		FileFailures:    d.fileFailures.Load(),
	}
}
