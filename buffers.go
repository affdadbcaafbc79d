package easylog

import "sync"

// DefaultBufferCapacity is the initial reservation of each in-memory buffer.
// It is an advisory growth hint, not a cap: buffers never drop lines.
const DefaultBufferCapacity = 100

// logBuffers holds the four rendered-line buffers: console and file, each
// globally and keyed by label. One mutex guards all four; appends are cheap
// enough that finer locking would buy nothing.
type logBuffers struct {
	mu           sync.Mutex
	capacity     int
	console      []string
	file         []string
	consoleLabel map[string][]string
	fileLabel    map[string][]string
}

func newLogBuffers(capacity int) *logBuffers {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	return &logBuffers{
		capacity:     capacity,
		console:      make([]string, 0, capacity),
		file:         make([]string, 0, capacity),
		consoleLabel: make(map[string][]string),
		fileLabel:    make(map[string][]string),
	}
}

// append stores the rendered console and file lines per the active buffering
// flags. Global and label-keyed buffering are independent; both may receive
// the same record.
func (b *logBuffers) append(st settings, label, consoleLine, fileLine string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st.bufferConsole {
		b.console = append(b.console, consoleLine)
	}
	if st.bufferConsoleL {
		b.consoleLabel[label] = b.appendLabeled(b.consoleLabel[label], consoleLine)
	}
	if st.bufferFile {
		b.file = append(b.file, fileLine)
	}
	if st.bufferFileL {
		b.fileLabel[label] = b.appendLabeled(b.fileLabel[label], fileLine)
	}
}

func (b *logBuffers) appendLabeled(lines []string, line string) []string {
	if lines == nil {
		lines = make([]string, 0, b.capacity)
	}
	return append(lines, line)
}

// setCapacity records the new reservation hint for buffers created from now
// on. Existing contents are preserved.
func (b *logBuffers) setCapacity(capacity int) {
	if capacity <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.capacity = capacity
}

func (b *logBuffers) consoleLines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneLines(b.console)
}

func (b *logBuffers) fileLines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneLines(b.file)
}

func (b *logBuffers) consoleLabelLines() map[string][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneLabelLines(b.consoleLabel)
}

func (b *logBuffers) fileLabelLines() map[string][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneLabelLines(b.fileLabel)
}

func (b *logBuffers) consoleByLabel(label string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneLines(b.consoleLabel[label])
}

func (b *logBuffers) fileByLabel(label string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneLines(b.fileLabel[label])
}

func (b *logBuffers) clearConsole() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.console = make([]string, 0, b.capacity)
}

func (b *logBuffers) clearFile() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.file = make([]string, 0, b.capacity)
}

func (b *logBuffers) clearConsoleLabels() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.consoleLabel = make(map[string][]string)
}

func (b *logBuffers) clearFileLabels() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fileLabel = make(map[string][]string)
}

func (b *logBuffers) clearConsoleByLabel(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.consoleLabel, label)
}

func (b *logBuffers) clearFileByLabel(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.fileLabel, label)
}

func cloneLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

func cloneLabelLines(buffers map[string][]string) map[string][]string {
	out := make(map[string][]string, len(buffers))
	for label, lines := range buffers {
		out[label] = cloneLines(lines)
	}
	return out
}
