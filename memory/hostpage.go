package memory

// ResidentBytes is the memory a frame set of frameCount frames would pin on
// this host if every frame held one host page
func ResidentBytes(frameCount int) int64 {
	if frameCount <= 0 {
		return 0
	}
	return int64(frameCount) * int64(HostPageSize())
}
