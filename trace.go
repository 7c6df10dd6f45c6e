package stdagent

import (
	"fmt"
	"path"
	"runtime"
	"strings"
)

const maxFrames = 32

// callers renders the calling goroutine's stack as "function" / "\tfile:line"
// pairs. Runtime frames are dropped and no addresses are included, so the
// same call path always renders the same text.
func callers(skip int) []string {
	pcs := make([]uintptr, maxFrames)

	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]string, 0, n*2)

	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			out = append(out, frame.Function, fmt.Sprintf("\t%s:%d", shortFile(frame.File), frame.Line))
		}

		if !more {
			break
		}
	}

	return out
}

// shortFile keeps the last directory and the file name, so details never
// carry the build machine's paths.
func shortFile(file string) string {
	dir, name := path.Split(file)
	if dir == "" {
		return name
	}

	return path.Join(path.Base(dir), name)
}
