package easylog

import (
	"fmt"
	"os"
	"sync"
)

// OpenMode selects how a file sink opens its stream on first write.
type OpenMode int

const (
	// Append opens the file for appending, creating it when absent. This is
	// the default for every file sink.
	Append OpenMode = iota
	// Truncate empties the file on open.
	Truncate
)

// DefaultFilePath is where the default file sink writes until
// SetDefaultFilePath changes it.
const DefaultFilePath = "log.txt"

const fileSinkPerm = 0o644

// fileSink is one named (or the default) file target. The stream opens lazily
// on the first write and stays open until explicitly closed. Each sink has
// its own mutex so writers to different files never contend.
type fileSink struct {
	mu   sync.Mutex
	path string
	mode OpenMode
	file *os.File
}

// write renders the line into the stream, opening it first when needed and
// flushing when flush is set. The error carries path context for the
// degradation callback.
func (s *fileSink) write(line string, flush bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		flags := os.O_CREATE | os.O_WRONLY
		if s.mode == Truncate {
			flags |= os.O_TRUNC
		} else {
			flags |= os.O_APPEND
		}
		f, err := os.OpenFile(s.path, flags, fileSinkPerm)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", s.path, err)
		}
		s.file = f
	}
	if _, err := s.file.WriteString(line); err != nil {
		return fmt.Errorf("write log file %s: %w", s.path, err)
	}
	if flush {
		if err := s.file.Sync(); err != nil {
			return fmt.Errorf("flush log file %s: %w", s.path, err)
		}
	}
	return nil
}

func (s *fileSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (s *fileSink) setPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// fileRegistry maps names to file sinks. The default sink always exists;
// named sinks are added on demand and never removed.
type fileRegistry struct {
	mu  sync.Mutex
	def *fileSink
	byN map[string]*fileSink
}

func newFileRegistry(defaultPath string) *fileRegistry {
	if defaultPath == "" {
		defaultPath = DefaultFilePath
	}
	return &fileRegistry{
		def: &fileSink{path: defaultPath, mode: Append},
		byN: make(map[string]*fileSink),
	}
}

// add registers a named sink. It reports false and keeps the existing entry
// when name is already taken.
func (r *fileRegistry) add(name, path string, mode OpenMode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byN[name]; exists {
		return false
	}
	r.byN[name] = &fileSink{path: path, mode: mode}
	return true
}

// active resolves the sink a record should hit: the default sink when the
// default-file flag is set, when no named logger is selected, or when the
// selected name is unknown.
func (r *fileRegistry) active(st settings) *fileSink {
	if st.defaultFile || st.fileLogger == "" {
		return r.def
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if sink, ok := r.byN[st.fileLogger]; ok {
		return sink
	}
	return r.def
}

// closeOne closes the stream of the named sink, or of the default sink for
// name "" or "default". Closing an unopened or unknown sink is a no-op.
func (r *fileRegistry) closeOne(name string) error {
	if name == "" || name == DefaultLabel {
		return r.def.close()
	}
	r.mu.Lock()
	sink, ok := r.byN[name]
	r.mu.Unlock()
	if !ok {
		return nil
	}
	return sink.close()
}

// closeAll closes the default stream and every named stream, reporting the
// first error encountered.
func (r *fileRegistry) closeAll() error {
	first := r.def.close()
	r.mu.Lock()
	sinks := make([]*fileSink, 0, len(r.byN))
	for _, sink := range r.byN {
		sinks = append(sinks, sink)
	}
	r.mu.Unlock()
	for _, sink := range sinks {
		if err := sink.close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
