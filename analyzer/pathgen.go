package analyzer

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/buffer"
	"github.com/cwbudde/algo-eq/dsp/core"
)

const (
	minFrequency = 20.0
	maxFrequency = 20000.0
)

// GeneratePath converts dB magnitudes into a polyline inside bounds.
//
// y maps [negInfDB, 0] dB onto [bottom, top], clamped to the rectangle. The first point is bin 0 at
// the left edge; after that every PathResolution-th bin starting at 1 is
// placed at x = floor(mapFromLog10(bin*binWidth, 20, 20000) * width).
// Bins whose y is not finite are skipped, except the first point which
// falls back to the bottom edge.
func GeneratePath(data []float64, bounds Rect, fftSize int, binWidth, negInfDB float64) Path {
	return AppendPath(make(Path, 0, len(data)/PathResolution+1), data, bounds, fftSize, binWidth, negInfDB)
}

// AppendPath is GeneratePath appending to dst. It does not allocate when
// dst has enough capacity.
func AppendPath(dst Path, data []float64, bounds Rect, fftSize int, binWidth, negInfDB float64) Path {
	dst = dst[:0]
	if len(data) == 0 {
		return dst
	}

	top := bounds.Y
	bottom := bounds.Bottom()
	mapY := func(db float64) float64 {
		y := core.Map(db, negInfDB, 0, bottom, top)
		if !core.IsFinite(y) {
			return y
		}

		return core.Clamp(y, top, bottom)
	}

	y := mapY(data[0])
	if !core.IsFinite(y) {
		y = bottom
	}
	dst = append(dst, Point{X: bounds.X, Y: y})

	numBins := min(fftSize/2, len(data))
	for bin := 1; bin < numBins; bin += PathResolution {
		y = mapY(data[bin])
		if !core.IsFinite(y) {
			continue
		}

		binFreq := float64(bin) * binWidth
		normX := core.MapFromLog10(binFreq, minFrequency, maxFrequency)
		x := math.Floor(normX * bounds.Width)
		dst = append(dst, Point{X: bounds.X + x, Y: y})
	}

	return dst
}

// PathGenerator builds spectrum paths and queues them for a consumer.
type PathGenerator struct {
	scratch Path
	ring    buffer.Ring[Point]
}

// NewPathGenerator returns a generator whose queue holds capacity paths.
func NewPathGenerator(capacity int) *PathGenerator {
	g := &PathGenerator{}
	g.ring.Prepare(max(capacity, 1), 0)

	return g
}

// Generate builds a path from data and queues it. A full queue drops it.
func (g *PathGenerator) Generate(data []float64, bounds Rect, fftSize int, binWidth, negInfDB float64) {
	g.scratch = AppendPath(g.scratch, data, bounds, fftSize, binWidth, negInfDB)
	g.ring.Push(g.scratch)
}

// NumPathsAvailable returns the number of queued paths.
func (g *PathGenerator) NumPathsAvailable() int { return g.ring.Available() }

// PullPath copies the oldest queued path into dst.
func (g *PathGenerator) PullPath(dst Path) (Path, bool) {
	return g.ring.Pull(dst)
}
