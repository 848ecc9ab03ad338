//go:build windows

package memory

import (
	"golang.org/x/sys/windows"
)

// HostPageSize returns the page size of the machine running the simulator
func HostPageSize() int {
	return windows.Getpagesize()
}
