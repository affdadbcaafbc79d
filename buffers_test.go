package easylog_test

import (
	"bytes"
	"io"
	"testing"

	easylog "github.com/RealFaceCode/easyLog"
)

// newBufferingLogger returns a silent logger (no console, no file) with
// metadata disabled, ready for buffer-only assertions.
func newBufferingLogger() *easylog.Logger {
	log := easylog.NewWithOptions(easylog.Options{
		ConsoleWriter: io.Discard,
		NoColor:       true,
	})
	disableMetadata(log)
	log.SetState(easylog.TerminalLog, false)
	return log
}

func TestGlobalBuffers(t *testing.T) {
	log := newBufferingLogger()
	log.SetState(easylog.BufferLog, true)
	log.SetState(easylog.BufferFileLog, true)

	log.Info("first")
	log.Error("second")

	wantConsole := []string{
		"INFO\t:  : first\n",
		"ERROR\t:  : second\n",
	}
	assertLines(t, "console buffer", log.ConsoleBuffer(), wantConsole)
	assertLines(t, "file buffer", log.FileBuffer(), wantConsole)
}

func TestBufferFlagsAreIndependent(t *testing.T) {
	log := newBufferingLogger()
	log.SetState(easylog.BufferLog, true)

	log.Info("console only")

	if got := log.FileBuffer(); len(got) != 0 {
		t.Fatalf("file buffer has %d lines, want 0", len(got))
	}
	if got := log.ConsoleBuffer(); len(got) != 1 {
		t.Fatalf("console buffer has %d lines, want 1", len(got))
	}
}

func TestLabelBuffers(t *testing.T) {
	log := newBufferingLogger()
	log.SetState(easylog.BufferLogLabel, true)
	log.SetState(easylog.BufferFileLogLabel, true)

	log.Label("database").Info("query")
	log.Label("network").Warning("timeout")
	log.Info("unlabeled")

	byLabel := log.ConsoleBufferLabels()
	if len(byLabel) != 3 {
		t.Fatalf("console label buffers = %d, want 3 (database, network, default)", len(byLabel))
	}
	assertLines(t, "database buffer", log.ConsoleBufferByLabel("database"),
		[]string{"INFO\t: [database] : query\n"})
	assertLines(t, "network file buffer", log.FileBufferByLabel("network"),
		[]string{"WARNING\t: [network] : timeout\n"})
	assertLines(t, "default buffer", log.ConsoleBufferByLabel(easylog.DefaultLabel),
		[]string{"INFO\t:  : unlabeled\n"})
}

func TestBufferedLinesKeepColor(t *testing.T) {
	log := easylog.NewWithOptions(easylog.Options{
		ConsoleWriter: io.Discard,
		ForceColor:    true,
	})
	disableMetadata(log)
	log.SetState(easylog.TerminalLog, false)
	log.SetState(easylog.BufferLog, true)
	log.SetState(easylog.BufferFileLog, true)

	log.Info("colored")

	console := log.ConsoleBuffer()
	if len(console) != 1 || !bytes.Contains([]byte(console[0]), []byte("\x1b[")) {
		t.Fatalf("console buffer line %q misses color", console)
	}
	file := log.FileBuffer()
	if len(file) != 1 || bytes.Contains([]byte(file[0]), []byte("\x1b[")) {
		t.Fatalf("file buffer line %q carries color", file)
	}
}

func TestBuffersAccumulateBeyondCapacity(t *testing.T) {
	log := newBufferingLogger()
	log.SetBufferCapacity(4)
	log.SetState(easylog.BufferLog, true)

	for i := 0; i < 32; i++ {
		log.Info("line")
	}
	if got := len(log.ConsoleBuffer()); got != 32 {
		t.Fatalf("console buffer kept %d lines, want all 32", got)
	}
}

func TestClearBuffers(t *testing.T) {
	log := newBufferingLogger()
	log.SetState(easylog.BufferLog, true)
	log.SetState(easylog.BufferFileLog, true)
	log.SetState(easylog.BufferLogLabel, true)
	log.SetState(easylog.BufferFileLogLabel, true)

	log.Label("job").Info("queued")
	log.Info("plain")

	log.ClearConsoleBufferByLabel("job")
	if got := log.ConsoleBufferByLabel("job"); len(got) != 0 {
		t.Fatalf("label buffer survived clear: %v", got)
	}

	log.ClearBuffers()
	if got := log.ConsoleBuffer(); len(got) != 0 {
		t.Fatalf("console buffer survived ClearBuffers: %v", got)
	}
	if got := log.FileBuffer(); len(got) != 0 {
		t.Fatalf("file buffer survived ClearBuffers: %v", got)
	}
	if got := log.FileBufferLabels(); len(got) != 0 {
		t.Fatalf("file label buffers survived ClearBuffers: %v", got)
	}
}

func TestBufferAccessorsReturnCopies(t *testing.T) {
	log := newBufferingLogger()
	log.SetState(easylog.BufferLog, true)

	log.Info("original")
	lines := log.ConsoleBuffer()
	lines[0] = "tampered"

	if got := log.ConsoleBuffer()[0]; got == "tampered" {
		t.Fatal("accessor exposed internal slice")
	}
}

func assertLines(t *testing.T, what string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s has %d lines, want %d: %v", what, len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s[%d] = %q, want %q", what, i, got[i], want[i])
		}
	}
}
