//go:build unix

package memory

import (
	"golang.org/x/sys/unix"
)

// HostPageSize returns the page size of the machine running the simulator
func HostPageSize() int {
	return unix.Getpagesize()
}
