//go:build !unix && !windows

package memory

import (
	"os"
)

// HostPageSize returns the page size of the machine running the simulator
func HostPageSize() int {
	return os.Getpagesize()
}
