package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/window"
	"github.com/cwbudde/algo-eq/eq"
)

func defaultFlags() settingsFlags {
	return settingsFlags{
		SampleRate:   48000,
		LowCut:       20,
		HighCut:      20000,
		PeakFreq:     750,
		PeakQ:        1,
		LowCutSlope:  12,
		HighCutSlope: 12,
	}
}

func TestSettingsFromFlags(t *testing.T) {
	f := defaultFlags()
	f.LowCut = 80.4
	f.LowCutSlope = 48
	f.HighCutSlope = 24
	f.PeakGain = 30

	s, err := f.settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.LowCutFreq != 80 || s.LowCutSlope != eq.Slope48 || s.HighCutSlope != eq.Slope24 || s.PeakGainDB != 24 {
		t.Fatalf("settings = %+v", s)
	}

	f.SampleRate = 0
	if _, err := f.settings(); err == nil {
		t.Fatal("zero sample rate accepted")
	}
}

func TestSettingsParamsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(path, []byte(`{"Peak Gain": -6}`), 0o644); err != nil {
		t.Fatal(err)
	}
	f := defaultFlags()
	f.PeakGain = 3
	f.Params = path

	s, err := f.settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.PeakGainDB != -6 {
		t.Fatalf("PeakGainDB = %v, want -6", s.PeakGainDB)
	}
}

func TestPrintCoefficients(t *testing.T) {
	s := eq.DefaultSettings()
	s.LowCutSlope = eq.Slope36
	s.HighCutSlope = eq.Slope24

	var buf bytes.Buffer
	if err := printCoefficients(&buf, s, 48000); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	counts := map[string]int{}
	for _, line := range strings.Split(out, "\n") {
		for _, stage := range []string{"LowCut", "Peak", "HighCut"} {
			if strings.HasPrefix(line, stage+" ") {
				counts[stage]++
			}
		}
	}
	if counts["LowCut"] != 3 || counts["Peak"] != 1 || counts["HighCut"] != 2 {
		t.Fatalf("rows = %v\n%s", counts, out)
	}
	if strings.Contains(out, "false") {
		t.Fatalf("unstable section reported:\n%s", out)
	}
}

func TestMeasureGainMatchesAnalytic(t *testing.T) {
	s := eq.DefaultSettings()
	s.PeakGainDB = 6
	s.LowCutFreq = 100
	s.LowCutSlope = eq.Slope24

	chain := eq.NewMonoChain()
	chain.Update(eq.ButterworthDesigner{}.Design(s, 48000), s)

	for _, f := range []float64{100, 400, 750, 3000} {
		got, err := measureGain(chain, f, 48000)
		if err != nil {
			t.Fatal(err)
		}
		want := core.GainToDecibels(chain.MagnitudeForFrequency(f, 48000), core.DefaultMinusInfinityDB)
		if math.Abs(got-want) > 0.1 {
			t.Fatalf("%.0f Hz: measured %.3f dB, analytic %.3f dB", f, got, want)
		}
	}
}

func TestPrintResponse(t *testing.T) {
	s := eq.DefaultSettings()
	s.PeakGainDB = 6

	var buf bytes.Buffer
	if err := printResponse(&buf, s, 48000, []float64{750}, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) != 5 || fields[0] != "750.0" || fields[2] != "6.00" {
		t.Fatalf("row = %q", lines[len(lines)-1])
	}
}

func TestResponseFrequencies(t *testing.T) {
	f := responseFrequencies(4)
	want := []float64{20, 200, 2000, 20000}
	for i := range want {
		if math.Abs(f[i]-want[i]) > 1e-9*want[i] {
			t.Fatalf("f[%d] = %v, want %v", i, f[i], want[i])
		}
	}
}

func TestPrintWindows(t *testing.T) {
	var buf bytes.Buffer
	if err := printWindows(&buf, []window.Type{window.TypeRectangular, window.TypeBlackmanHarris4Term}, 1024, window.WithPeriodic()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Rectangular") || !strings.Contains(out, "Blackman-Harris") {
		t.Fatalf("missing rows:\n%s", out)
	}
	if !strings.Contains(out, "0.358750") {
		t.Fatalf("Blackman-Harris coherent gain missing:\n%s", out)
	}
}
