package memory

import (
	"testing"
)

func TestHostPageSize(t *testing.T) {
	size := HostPageSize()
	if size <= 0 || size&(size-1) != 0 {
		t.Errorf("Expected a positive power of two page size, got %d", size)
	}
}

func TestResidentBytes(t *testing.T) {
	if got := ResidentBytes(3); got != int64(3*HostPageSize()) {
		t.Errorf("Expected %d bytes, got %d", 3*HostPageSize(), got)
	}
	if got := ResidentBytes(0); got != 0 {
		t.Errorf("Expected 0 bytes for no frames, got %d", got)
	}
}
