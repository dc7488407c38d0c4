package window

import "testing"

func TestAnalyze(t *testing.T) {
	tests := []struct {
		typ         Type
		sidelobeMax float64
		sidelobeMin float64
		scallop     float64
		firstMin    float64
	}{
		{TypeHann, -30.5, -32.5, -1.42, 2},
		{TypeBlackmanHarris4Term, -90, -95, -0.83, 4},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			a := Analyze(Generate(tt.typ, 256, WithPeriodic()))

			if a.HighestSidelobedB > tt.sidelobeMax || a.HighestSidelobedB < tt.sidelobeMin {
				t.Fatalf("sidelobe=%.2f dB, want in [%v, %v]", a.HighestSidelobedB, tt.sidelobeMin, tt.sidelobeMax)
			}

			if !almostEqual(a.ScallopLossdB, tt.scallop, 0.05) {
				t.Fatalf("scallop loss=%.3f dB, want ~%v", a.ScallopLossdB, tt.scallop)
			}

			if !almostEqual(a.FirstMinimumBins, tt.firstMin, 0.05) {
				t.Fatalf("first minimum=%.3f bins, want ~%v", a.FirstMinimumBins, tt.firstMin)
			}

			if !almostEqual(a.ENBW, Info(tt.typ).ENBW, 0.02) {
				t.Fatalf("ENBW=%.3f, metadata %v", a.ENBW, Info(tt.typ).ENBW)
			}

			if !almostEqual(a.AmplitudeCorrection*a.CoherentGain, 1, 1e-12) {
				t.Fatalf("correction %v does not invert coherent gain %v", a.AmplitudeCorrection, a.CoherentGain)
			}
		})
	}
}

func TestAnalyzeFirstMinimumIsFirstNull(t *testing.T) {
	// The periodic Blackman-Harris main lobe closes at 4 bins with a second
	// null 0.22 bins further out.
	for _, n := range []int{256, 1024, 2048} {
		a := Analyze(Generate(TypeBlackmanHarris4Term, n, WithPeriodic()))
		if a.FirstMinimumBins < 3.95 || a.FirstMinimumBins > 4.05 {
			t.Fatalf("n=%d: first minimum = %.3f bins, want ~4", n, a.FirstMinimumBins)
		}
	}
}

func TestAnalyzeRectangularBandwidth(t *testing.T) {
	a := Analyze(Generate(TypeRectangular, 512))

	// sinc main lobe: -3 dB at ~0.443 bins each side.
	if !almostEqual(a.Bandwidth3dB, 0.886, 0.01) {
		t.Fatalf("Bandwidth3dB = %.4f, want ~0.886", a.Bandwidth3dB)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if got := Analyze(nil); got != (Analysis{}) {
		t.Fatalf("Analyze(nil) = %+v", got)
	}
}
