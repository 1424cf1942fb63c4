//go:build linux || android

package guard

import (
	"os"
	"strings"
)

// DefaultProbe checks /proc/self/status for an attached tracer. A
// nonzero TracerPid means a debugger or strace-like tool is inspecting
// the process.
func DefaultProbe() bool {
	contents, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return false
	}

	for _, line := range strings.Split(string(contents), "\n") {
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, "TracerPid:"))
		return value != "" && value != "0"
	}
	return false
}
