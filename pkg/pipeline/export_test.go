package pipeline

// SetSpoolMem changes how much output is held in memory and returns
// a function putting it back.
func SetSpoolMem(n int) (restore func()) {
	old := spoolMem
	spoolMem = n
	return func() { spoolMem = old }
}
