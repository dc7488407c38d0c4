package buffer

import "sync/atomic"

// Ring is a bounded single-producer/single-consumer queue of blocks.
//
// Slots are allocated by Prepare. Push copies a block into the next free
// slot and Pull copies the oldest block out, so neither side ever shares a
// slice with the other. The write cursor is owned by the producer and the
// read cursor by the consumer; no locks are taken.
//
// Push into a full ring fails and the block is dropped. Prepare and Reset
// are not safe for concurrent use with Push or Pull.
type Ring[E any] struct {
	slots [][]E

	write   atomic.Uint64
	read    atomic.Uint64
	dropped atomic.Uint64
}

// NewRing returns a ring with capacity slots, each preallocated to hold
// blockLen elements.
func NewRing[E any](capacity, blockLen int) *Ring[E] {
	r := &Ring[E]{}
	r.Prepare(capacity, blockLen)
	return r
}

// Prepare (re)allocates capacity slots of blockLen elements and empties the ring.
func (r *Ring[E]) Prepare(capacity, blockLen int) {
	if capacity < 1 {
		capacity = 1
	}
	if blockLen < 0 {
		blockLen = 0
	}

	r.slots = make([][]E, capacity)
	for i := range r.slots {
		r.slots[i] = make([]E, blockLen)
	}

	r.Reset()
}

// Reset empties the ring and clears the drop counter without touching slot storage.
func (r *Ring[E]) Reset() {
	r.write.Store(0)
	r.read.Store(0)
	r.dropped.Store(0)
}

// Push copies block into the ring. It returns false, and counts a drop, when
// the ring is full. It does not allocate as long as len(block) does not
// exceed the prepared block length.
func (r *Ring[E]) Push(block []E) bool {
	size := uint64(len(r.slots))
	if size == 0 {
		return false
	}

	w := r.write.Load()
	if w-r.read.Load() >= size {
		r.dropped.Add(1)
		return false
	}

	idx := w % size
	slot := r.slots[idx]
	if cap(slot) < len(block) {
		slot = make([]E, len(block))
	}
	slot = slot[:len(block)]
	copy(slot, block)
	r.slots[idx] = slot

	r.write.Store(w + 1)
	return true
}

// Pull copies the oldest block into dst, growing it if needed, and returns
// the result. ok is false when the ring is empty, in which case dst is
// returned unchanged.
func (r *Ring[E]) Pull(dst []E) (out []E, ok bool) {
	size := uint64(len(r.slots))
	if size == 0 {
		return dst, false
	}

	rd := r.read.Load()
	if rd == r.write.Load() {
		return dst, false
	}

	slot := r.slots[rd%size]
	out = append(dst[:0], slot...)

	r.read.Store(rd + 1)
	return out, true
}

// Available returns the number of blocks ready to be pulled.
func (r *Ring[E]) Available() int {
	return int(r.write.Load() - r.read.Load())
}

// Capacity returns the number of slots.
func (r *Ring[E]) Capacity() int {
	return len(r.slots)
}

// Dropped returns how many pushes failed because the ring was full.
func (r *Ring[E]) Dropped() uint64 {
	return r.dropped.Load()
}
