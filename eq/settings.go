package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/params"
)

// Slope is the roll-off of a cut filter.
type Slope int

const (
	Slope12 Slope = iota
	Slope24
	Slope36
	Slope48
)

// NumSlopes is the number of selectable slopes, and the number of biquad
// sections reserved per cut filter.
const NumSlopes = 4

// Slopes returns all slopes in choice order.
func Slopes() []Slope { return []Slope{Slope12, Slope24, Slope36, Slope48} }

// Sections returns the number of active biquad sections, 1 to 4.
func (s Slope) Sections() int { return int(s.clamped()) + 1 }

// Order returns the Butterworth order, 2 to 8.
func (s Slope) Order() int { return 2 * s.Sections() }

// DBPerOctave returns the asymptotic roll-off.
func (s Slope) DBPerOctave() int { return 6 * s.Order() }

func (s Slope) String() string {
	if s < Slope12 || s > Slope48 {
		return fmt.Sprintf("Slope(%d)", int(s))
	}

	return fmt.Sprintf("%d dB/Oct", s.DBPerOctave())
}

func (s Slope) clamped() Slope {
	return min(max(s, Slope12), Slope48)
}

// Parameter bounds shared by the store layout and Settings.Clamped.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
	MinQuality   = 0.1
	MaxQuality   = 10.0
	MaxGainDB    = 24.0
)

// Settings is a snapshot of every user parameter.
type Settings struct {
	LowCutFreq  float64
	HighCutFreq float64
	PeakFreq    float64
	PeakGainDB  float64
	PeakQuality float64

	LowCutSlope  Slope
	HighCutSlope Slope

	LowCutBypassed  bool
	PeakBypassed    bool
	HighCutBypassed bool
	AnalyzerEnabled bool
}

// DefaultSettings returns the parameter defaults: cuts wide open, a flat
// bell at 750 Hz with Q 1, 12 dB/oct slopes and the analyzer on.
func DefaultSettings() Settings {
	return Settings{
		LowCutFreq:      MinFrequency,
		HighCutFreq:     MaxFrequency,
		PeakFreq:        750,
		PeakGainDB:      0,
		PeakQuality:     1,
		LowCutSlope:     Slope12,
		HighCutSlope:    Slope12,
		AnalyzerEnabled: true,
	}
}

// Clamped returns s with every field inside its legal range. NaN values
// fall back to the lower bound.
func (s Settings) Clamped() Settings {
	s.LowCutFreq = clampFinite(s.LowCutFreq, MinFrequency, MaxFrequency)
	s.HighCutFreq = clampFinite(s.HighCutFreq, MinFrequency, MaxFrequency)
	s.PeakFreq = clampFinite(s.PeakFreq, MinFrequency, MaxFrequency)
	s.PeakGainDB = clampFinite(s.PeakGainDB, -MaxGainDB, MaxGainDB)
	s.PeakQuality = clampFinite(s.PeakQuality, MinQuality, MaxQuality)
	s.LowCutSlope = s.LowCutSlope.clamped()
	s.HighCutSlope = s.HighCutSlope.clamped()

	return s
}

func clampFinite(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}

	return core.Clamp(v, lo, hi)
}

// SettingsReader takes snapshots from a store using indices resolved once.
// Snapshot performs only atomic loads.
type SettingsReader struct {
	store *params.Store
	idx   [numParams]int
}

// NewSettingsReader resolves the parameter indices in store. The store must
// contain the layout of NewParameterStore.
func NewSettingsReader(store *params.Store) (*SettingsReader, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	r := &SettingsReader{store: store}
	for i, id := range paramIDs {
		idx, ok := store.Index(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", params.ErrUnknownParameter, id)
		}
		r.idx[i] = idx
	}

	return r, nil
}

// Store returns the underlying store.
func (r *SettingsReader) Store() *params.Store { return r.store }

// Snapshot reads the current settings.
func (r *SettingsReader) Snapshot() Settings {
	v := func(p int) float64 { return r.store.ValueAt(r.idx[p]) }
	b := func(p int) bool { return v(p) >= 0.5 }

	return Settings{
		LowCutFreq:      v(pLowCutFreq),
		HighCutFreq:     v(pHighCutFreq),
		PeakFreq:        v(pPeakFreq),
		PeakGainDB:      v(pPeakGain),
		PeakQuality:     v(pPeakQuality),
		LowCutSlope:     Slope(v(pLowCutSlope) + 0.5),
		HighCutSlope:    Slope(v(pHighCutSlope) + 0.5),
		LowCutBypassed:  b(pLowCutBypassed),
		PeakBypassed:    b(pPeakBypassed),
		HighCutBypassed: b(pHighCutBypassed),
		AnalyzerEnabled: b(pAnalyzerEnabled),
	}.Clamped()
}

// SettingsFromStore takes a snapshot from store. Unknown ids read as zero
// and are then clamped.
func SettingsFromStore(store *params.Store) Settings {
	return Settings{
		LowCutFreq:      store.Value(IDLowCutFreq),
		HighCutFreq:     store.Value(IDHighCutFreq),
		PeakFreq:        store.Value(IDPeakFreq),
		PeakGainDB:      store.Value(IDPeakGain),
		PeakQuality:     store.Value(IDPeakQuality),
		LowCutSlope:     Slope(store.ChoiceIndex(IDLowCutSlope)),
		HighCutSlope:    Slope(store.ChoiceIndex(IDHighCutSlope)),
		LowCutBypassed:  store.Bool(IDLowCutBypassed),
		PeakBypassed:    store.Bool(IDPeakBypassed),
		HighCutBypassed: store.Bool(IDHighCutBypassed),
		AnalyzerEnabled: store.Bool(IDAnalyzerEnabled),
	}.Clamped()
}
