package easylog

import (
	"path/filepath"
	"runtime"
	"strings"
)

const unknownCallSite = "unknown"

// CallSite is the call-site metadata attached to every record: the base file
// name, the function name without package path, and the line number. It is
// captured from the runtime at the log call and carried by value so async
// tasks stay self-contained.
type CallSite struct {
	File     string
	Function string
	Line     int
}

// captureCallSite resolves the call site skip frames above the caller.
func captureCallSite(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{File: unknownCallSite, Function: unknownCallSite}
	}
	return CallSite{
		File:     filepath.Base(file),
		Function: functionName(pc),
		Line:     line,
	}
}

func functionName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownCallSite
	}
	name := fn.Name()
	// Trim the package path, keep "pkg.Func".
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownCallSite
	}
	return name
}
