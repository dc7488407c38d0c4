package eq

import (
	"math"
	"testing"
)

func TestSlope(t *testing.T) {
	tests := []struct {
		slope    Slope
		sections int
		order    int
		name     string
	}{
		{Slope12, 1, 2, "12 dB/Oct"},
		{Slope24, 2, 4, "24 dB/Oct"},
		{Slope36, 3, 6, "36 dB/Oct"},
		{Slope48, 4, 8, "48 dB/Oct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.slope.Sections() != tt.sections || tt.slope.Order() != tt.order {
				t.Fatalf("sections=%d order=%d, want %d %d", tt.slope.Sections(), tt.slope.Order(), tt.sections, tt.order)
			}
			if tt.slope.String() != tt.name {
				t.Fatalf("String() = %q, want %q", tt.slope.String(), tt.name)
			}
		})
	}
	if Slope(9).Sections() != 4 || Slope(-1).Sections() != 1 {
		t.Fatal("out of range slopes must clamp")
	}
	if Slope(9).String() != "Slope(9)" {
		t.Fatalf("String() = %q", Slope(9).String())
	}
}

func TestSettingsClamped(t *testing.T) {
	s := Settings{
		LowCutFreq:   1,
		HighCutFreq:  1e9,
		PeakFreq:     math.NaN(),
		PeakGainDB:   40,
		PeakQuality:  0,
		LowCutSlope:  -3,
		HighCutSlope: 7,
	}.Clamped()
	want := Settings{
		LowCutFreq:   20,
		HighCutFreq:  20000,
		PeakFreq:     20,
		PeakGainDB:   24,
		PeakQuality:  0.1,
		LowCutSlope:  Slope12,
		HighCutSlope: Slope48,
	}
	if s != want {
		t.Fatalf("Clamped() = %+v, want %+v", s, want)
	}
	if d := DefaultSettings(); d.Clamped() != d {
		t.Fatal("defaults must already be legal")
	}
}

func TestSettingsFromStoreDefaults(t *testing.T) {
	store := NewParameterStore()
	if got := SettingsFromStore(store); got != DefaultSettings() {
		t.Fatalf("SettingsFromStore() = %+v, want %+v", got, DefaultSettings())
	}
	r, err := NewSettingsReader(store)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Snapshot(); got != DefaultSettings() {
		t.Fatalf("Snapshot() = %+v, want defaults", got)
	}
}

func TestSettingsReaderFollowsStore(t *testing.T) {
	store := NewParameterStore()
	r, err := NewSettingsReader(store)
	if err != nil {
		t.Fatal(err)
	}
	_ = store.Set(IDPeakGain, 6)
	_ = store.Set(IDLowCutSlope, 3)
	_ = store.Set(IDHighCutBypassed, 1)
	_ = store.Set(IDAnalyzerEnabled, 0)
	s := r.Snapshot()
	if s.PeakGainDB != 6 || s.LowCutSlope != Slope48 || !s.HighCutBypassed || s.AnalyzerEnabled {
		t.Fatalf("Snapshot() = %+v", s)
	}
	if SettingsFromStore(store) != s {
		t.Fatal("SettingsFromStore and SettingsReader disagree")
	}
}

func TestNewSettingsReaderErrors(t *testing.T) {
	if _, err := NewSettingsReader(nil); err != ErrNilStore {
		t.Fatalf("error = %v, want ErrNilStore", err)
	}
}

func TestParameterLayout(t *testing.T) {
	defs := ParameterLayout()
	if len(defs) != 11 {
		t.Fatalf("len(ParameterLayout()) = %d, want 11", len(defs))
	}
	for i, d := range defs {
		if d.ID != paramIDs[i] {
			t.Fatalf("definition %d id = %q, want %q", i, d.ID, paramIDs[i])
		}
	}
	store := NewParameterStore()
	def, _ := store.Definition(IDLowCutSlope)
	if len(def.Choices) != 4 || def.Choices[3] != "48 dB/Oct" {
		t.Fatalf("slope choices = %v", def.Choices)
	}
}
