// Package cpu reports the SIMD extensions of the running processor. The
// equalizer's vector kernels pick their implementation on their own; this
// report is for diagnostics and startup logs.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel is the widest SIMD extension available.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
)

func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the processor.
type Features struct {
	Architecture string `json:"arch"`

	HasSSE2   bool `json:"sse2"`
	HasAVX    bool `json:"avx"`
	HasAVX2   bool `json:"avx2"`
	HasAVX512 bool `json:"avx512"`
	HasNEON   bool `json:"neon"`
}

// Best returns the widest extension f supports.
func (f Features) Best() SIMDLevel {
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// String lists the supported extensions, e.g. "amd64 SSE2 AVX AVX2".
func (f Features) String() string {
	parts := []string{f.Architecture}
	for _, e := range []struct {
		ok   bool
		name SIMDLevel
	}{
		{f.HasSSE2, SIMDSSE2},
		{f.HasAVX, SIMDAVX},
		{f.HasAVX2, SIMDAVX2},
		{f.HasAVX512, SIMDAVX512},
		{f.HasNEON, SIMDNEON},
	} {
		if e.ok {
			parts = append(parts, e.name.String())
		}
	}
	return strings.Join(parts, " ")
}

var detect = sync.OnceValue(detectFeaturesImpl)

// Detect returns the features of this processor. Detection runs once.
func Detect() Features { return detect() }
