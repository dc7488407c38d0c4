package core

// Float32To64 widens src into dst and returns the number of converted samples.
func Float32To64(dst []float64, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}
	return n
}

// Float64To32 narrows src into dst and returns the number of converted samples.
func Float64To32(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i])
	}
	return n
}
