package params

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// Store is a fixed set of parameters with lock-free reads.
//
// Value, ValueAt and Version never lock and are safe on the audio thread.
// Set and SetNormalized may be called from any goroutine; they notify
// subscribers under a mutex that readers never touch.
type Store struct {
	defs    []Definition
	index   map[string]int
	values  []atomic.Uint64
	version atomic.Uint64

	mu   sync.Mutex
	subs []*Subscription
}

// NewStore registers defs in order and initialises every value to its default.
func NewStore(defs ...Definition) (*Store, error) {
	s := &Store{
		defs:   make([]Definition, len(defs)),
		index:  make(map[string]int, len(defs)),
		values: make([]atomic.Uint64, len(defs)),
	}

	for i, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}

		if _, dup := s.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParameter, d.ID)
		}

		s.defs[i] = d
		s.index[d.ID] = i
		s.values[i].Store(math.Float64bits(d.Default))
	}

	return s, nil
}

// Len returns the number of parameters.
func (s *Store) Len() int { return len(s.defs) }

// Definitions returns a copy of the registered definitions in order.
func (s *Store) Definitions() []Definition {
	return append([]Definition(nil), s.defs...)
}

// Definition returns the definition registered under id.
func (s *Store) Definition(id string) (Definition, bool) {
	i, ok := s.index[id]
	if !ok {
		return Definition{}, false
	}

	return s.defs[i], true
}

// Index returns the position of id. Audio code resolves indices once and
// then reads with ValueAt.
func (s *Store) Index(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// ValueAt returns the value at position i.
func (s *Store) ValueAt(i int) float64 {
	return math.Float64frombits(s.values[i].Load())
}

// Value returns the current value of id, or 0 for unknown ids.
func (s *Store) Value(id string) float64 {
	i, ok := s.index[id]
	if !ok {
		return 0
	}

	return s.ValueAt(i)
}

// Bool reports whether a bool parameter is on.
func (s *Store) Bool(id string) bool { return s.Value(id) >= 0.5 }

// ChoiceIndex returns a choice parameter's selected index.
func (s *Store) ChoiceIndex(id string) int { return int(math.Round(s.Value(id))) }

// Version returns a counter that increases on every accepted change.
func (s *Store) Version() uint64 { return s.version.Load() }

// Set stores v for id after clamping and snapping it to the legal range.
// Setting the current value again is not a change and notifies nobody.
func (s *Store) Set(id string, v float64) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}

	s.setAt(i, s.defs[i].Legalize(v))

	return nil
}

// Normalized returns the value of id mapped to [0, 1].
func (s *Store) Normalized(id string) (float64, error) {
	i, ok := s.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}

	return s.defs[i].Range.ToNormalized(s.ValueAt(i)), nil
}

// SetNormalized sets id from a normalised position in [0, 1].
func (s *Store) SetNormalized(id string, p float64) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}

	d := s.defs[i]
	s.setAt(i, d.Legalize(d.Range.FromNormalized(p)))

	return nil
}

// Reset restores every parameter to its default.
func (s *Store) Reset() {
	for i, d := range s.defs {
		s.setAt(i, d.Default)
	}
}

func (s *Store) setAt(i int, v float64) {
	bits := math.Float64bits(v)
	if s.values[i].Swap(bits) == bits {
		return
	}

	s.version.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()

	ev := Change{ID: s.defs[i].ID, Index: i, Value: v}
	for _, sub := range s.subs {
		sub.deliver(ev)
	}
}

// Subscribe registers a new subscriber whose queue holds up to buf pending
// changes. buf < 1 is treated as 1.
func (s *Store) Subscribe(buf int) *Subscription {
	sub := &Subscription{
		store: s,
		ch:    make(chan Change, max(buf, 1)),
	}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return sub
}

func (s *Store) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, x := range s.subs {
		if x == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
