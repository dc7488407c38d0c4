package params

import "sync/atomic"

// Change is one accepted parameter update.
type Change struct {
	ID    string
	Index int
	Value float64
}

// Subscription is a bounded single-consumer queue of changes.
//
// Delivery never blocks the setter. When the queue is full the event is
// dropped, counted, and the subscription is still marked as changed so a
// consumer that only needs to know "something changed" never misses it.
type Subscription struct {
	store    *Store
	ch       chan Change
	pending  atomic.Bool
	overflow atomic.Uint64
	closed   atomic.Bool
}

func (sub *Subscription) deliver(ev Change) {
	if sub.closed.Load() {
		return
	}

	sub.pending.Store(true)

	select {
	case sub.ch <- ev:
	default:
		sub.overflow.Add(1)
	}
}

// Events exposes the queue for consumers that select on it.
func (sub *Subscription) Events() <-chan Change { return sub.ch }

// Drain empties the queue without blocking. It reports how many events were
// queued and whether any change happened since the last Drain, including
// changes lost to overflow.
func (sub *Subscription) Drain() (n int, changed bool) {
	changed = sub.pending.Swap(false)

	for {
		select {
		case <-sub.ch:
			n++
		default:
			return n, changed || n > 0
		}
	}
}

// Overflowed returns the number of events dropped on a full queue.
func (sub *Subscription) Overflowed() uint64 { return sub.overflow.Load() }

// Close removes the subscription from its store. Further changes are not
// delivered. Close is idempotent.
func (sub *Subscription) Close() {
	if sub.closed.Swap(true) {
		return
	}

	sub.store.unsubscribe(sub)
}
