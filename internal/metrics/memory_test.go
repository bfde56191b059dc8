package metrics

import "testing"

func TestReadMemory(t *testing.T) {
	t.Parallel()

	snap := ReadMemory()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemorySnapshot_AllocatedSince(t *testing.T) {
	t.Parallel()

	before := ReadMemory()
	buf := make([]byte, 1<<20)
	buf[len(buf)-1] = 1
	after := ReadMemory()

	if got := after.AllocatedSince(before); got < 1<<20 {
		t.Errorf("AllocatedSince = %d, want at least 1 MiB", got)
	}
	if got := before.AllocatedSince(after); got != 0 {
		t.Errorf("reversed AllocatedSince = %d, want 0", got)
	}
	_ = buf
}
