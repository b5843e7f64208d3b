package common

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	logOutput io.Writer = os.Stderr
	logMu     sync.Mutex
)

// SetLogOutput redirects all log lines to the given writer. A nil writer
// restores standard error.
func SetLogOutput(target io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if target == nil {
		target = os.Stderr
	}
	logOutput = target
}

func printout(message string) {
	logMu.Lock()
	defer logMu.Unlock()

	stamp := ""
	if TraceFlag() {
		stamp = time.Now().Format("02.150405.000 ")
	}
	fmt.Fprintf(logOutput, "%s%s\n", stamp, message)
}

func Fatal(context string, err error) {
	if err != nil {
		printout(fmt.Sprintf("Fatal [%s]: %v", context, err))
	}
}

func Error(context string, err error) {
	if err != nil {
		Log("Error [%s]: %v", context, err)
	}
}

func Uncritical(context string, err error) {
	if err != nil {
		Log("Warning [%s; not critical]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() || TraceFlag() {
			prefix = "[N] "
		}
		printout(fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}
