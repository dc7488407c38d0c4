package buffer

import (
	"sync"
	"testing"
)

func TestRingPushPullOrder(t *testing.T) {
	r := NewRing[float64](4, 3)

	for i := range 3 {
		if !r.Push([]float64{float64(i), float64(i) + 0.5, float64(i) + 0.25}) {
			t.Fatalf("push %d failed", i)
		}
	}
	if r.Available() != 3 {
		t.Fatalf("Available() = %d, want 3", r.Available())
	}

	var dst []float64
	for i := range 3 {
		var ok bool
		dst, ok = r.Pull(dst)
		if !ok {
			t.Fatalf("pull %d failed", i)
		}
		if dst[0] != float64(i) || len(dst) != 3 {
			t.Fatalf("pull %d: got %v", i, dst)
		}
	}

	if _, ok := r.Pull(dst); ok {
		t.Fatal("pull from empty ring should fail")
	}
}

func TestRingOverflowDropsExcess(t *testing.T) {
	const capacity = 5
	r := NewRing[float64](capacity, 2)

	failures := 0
	for i := range capacity + 3 {
		if !r.Push([]float64{float64(i), -float64(i)}) {
			failures++
		}
	}

	if failures != 3 {
		t.Fatalf("failed pushes = %d, want 3", failures)
	}
	if r.Dropped() != 3 {
		t.Fatalf("Dropped() = %d, want 3", r.Dropped())
	}

	var dst []float64
	for i := range capacity {
		var ok bool
		dst, ok = r.Pull(dst)
		if !ok {
			t.Fatalf("pull %d failed", i)
		}
		if dst[0] != float64(i) || dst[1] != -float64(i) {
			t.Fatalf("retained entry %d corrupted: %v", i, dst)
		}
	}
}

func TestRingPullDoesNotAliasSlot(t *testing.T) {
	r := NewRing[float64](2, 2)
	src := []float64{1, 2}
	r.Push(src)
	src[0] = 99

	got, ok := r.Pull(nil)
	if !ok || got[0] != 1 {
		t.Fatalf("Push should copy the block, got %v", got)
	}

	got[1] = 42
	r.Push([]float64{3, 4})
	next, _ := r.Pull(nil)
	if next[1] != 4 {
		t.Fatalf("Pull should copy out of the slot, got %v", next)
	}
}

func TestRingGrowsOversizedBlocks(t *testing.T) {
	r := NewRing[int](2, 1)
	if !r.Push([]int{1, 2, 3}) {
		t.Fatal("push failed")
	}
	got, ok := r.Pull(nil)
	if !ok || len(got) != 3 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestRingPrepareResets(t *testing.T) {
	r := NewRing[float64](1, 1)
	r.Push([]float64{1})
	r.Push([]float64{2})
	r.Prepare(3, 4)

	if r.Available() != 0 || r.Dropped() != 0 {
		t.Fatalf("Prepare should reset: available=%d dropped=%d", r.Available(), r.Dropped())
	}
	if r.Capacity() != 3 {
		t.Fatalf("Capacity() = %d, want 3", r.Capacity())
	}

	r.Prepare(0, -1)
	if r.Capacity() != 1 {
		t.Fatalf("Capacity() = %d, want clamp to 1", r.Capacity())
	}
}

func TestRingConcurrentProducerConsumer(t *testing.T) {
	const (
		blocks   = 2000
		blockLen = 16
	)
	r := NewRing[float64](8, blockLen)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		block := make([]float64, blockLen)
		for i := 0; i < blocks; {
			for j := range block {
				block[j] = float64(i)
			}
			if r.Push(block) {
				i++
			}
		}
	}()

	var dst []float64
	for want := 0; want < blocks; {
		var ok bool
		dst, ok = r.Pull(dst)
		if !ok {
			continue
		}
		for j, v := range dst {
			if v != float64(want) {
				t.Fatalf("block %d sample %d = %v (torn block)", want, j, v)
			}
		}
		want++
	}

	wg.Wait()
}
