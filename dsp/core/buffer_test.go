package core

import "testing"

func TestFloatConversions(t *testing.T) {
	wide := make([]float64, 3)
	if n := Float32To64(wide, []float32{0.5, -0.25}); n != 2 {
		t.Fatalf("Float32To64 n = %d, want 2", n)
	}
	if wide[0] != 0.5 || wide[1] != -0.25 || wide[2] != 0 {
		t.Fatalf("unexpected wide: %#v", wide)
	}

	narrow := make([]float32, 2)
	if n := Float64To32(narrow, []float64{1, 2, 3}); n != 2 {
		t.Fatalf("Float64To32 n = %d, want 2", n)
	}
	if narrow[0] != 1 || narrow[1] != 2 {
		t.Fatalf("unexpected narrow: %#v", narrow)
	}
}
