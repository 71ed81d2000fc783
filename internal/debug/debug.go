// Package debug provides opt-in trace output for match and keying decisions.
// Output is disabled unless a writer is configured and debug mode is on, so the
// hot matching paths stay free of formatting work by default.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Enable turns on debug tracing at build time:
// go build -ldflags "-X github.com/standardbeagle/taxmap/internal/debug.Enable=true"
var Enable = "false"

var (
	mu     sync.Mutex
	output io.Writer
)

// SetOutput sets the writer for trace output. Pass nil to disable entirely.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether tracing is active.
func Enabled() bool {
	if Enable == "true" {
		return true
	}
	return os.Getenv("TAXMAP_DEBUG") == "1" || os.Getenv("TAXMAP_DEBUG") == "true"
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Logf writes a trace line for the named component when tracing is active.
func Logf(component, format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[taxmap:%s] "+format+"\n", append([]interface{}{component}, args...)...)
}

// Disambig traces sense-disambiguation decisions.
func Disambig(format string, args ...interface{}) {
	Logf("disambig", format, args...)
}

// Keying traces key allocation and propagation decisions.
func Keying(format string, args ...interface{}) {
	Logf("keying", format, args...)
}
