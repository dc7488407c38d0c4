package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RequireNoAllocs fails t if fn allocates on average over runs calls.
func RequireNoAllocs(t *testing.T, runs int, fn func()) {
	t.Helper()
	if allocs := testing.AllocsPerRun(runs, fn); allocs != 0 {
		t.Fatalf("expected zero allocations, got %v per run", allocs)
	}
}

// RequireNearDB fails t if the linear levels got and want differ by more than
// tolDB decibels.
func RequireNearDB(t *testing.T, got, want, tolDB float64) {
	t.Helper()
	if got <= 0 || want <= 0 {
		t.Fatalf("levels must be positive: got %v, want %v", got, want)
	}
	diff := 20 * math.Log10(got/want)
	if math.Abs(diff) > tolDB {
		t.Fatalf("level mismatch: got %v, want %v (%.3f dB > %.3f dB)", got, want, diff, tolDB)
	}
}
