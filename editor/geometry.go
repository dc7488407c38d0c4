package editor

import (
	"strconv"

	"github.com/cwbudde/algo-eq/analyzer"
	"github.com/cwbudde/algo-eq/dsp/core"
)

// Display ranges of the response view.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
	MinGainDB    = -24.0
	MaxGainDB    = 24.0
)

// Geometry holds the rectangles of the response view.
//
// RenderArea is the framed region; AnalysisArea, inset a further 4 px at
// top and bottom, is where curves and grid lines are drawn.
type Geometry struct {
	Bounds       analyzer.Rect `json:"bounds"`
	RenderArea   analyzer.Rect `json:"renderArea"`
	AnalysisArea analyzer.Rect `json:"analysisArea"`
}

// NewGeometry lays out a response view of the given size.
func NewGeometry(width, height float64) Geometry {
	b := analyzer.Rect{Width: max(width, 0), Height: max(height, 0)}
	render := b.Inset(12, 2, 20, 20)

	return Geometry{
		Bounds:       b,
		RenderArea:   render,
		AnalysisArea: render.Inset(4, 4, 0, 0),
	}
}

// FrequencyX returns the x position of freq in the analysis area.
func (g Geometry) FrequencyX(freq float64) float64 {
	a := g.AnalysisArea
	return a.X + a.Width*core.MapFromLog10(freq, MinFrequency, MaxFrequency)
}

// GainY returns the y position of gainDB in the analysis area.
func (g Geometry) GainY(gainDB float64) float64 {
	a := g.AnalysisArea
	return core.Map(gainDB, MinGainDB, MaxGainDB, a.Bottom(), a.Y)
}

// GridLine is one labelled line of the background grid.
type GridLine struct {
	Value    float64 `json:"value"`
	Pos      float64 `json:"pos"`
	Label    string  `json:"label"`
	Emphasis bool    `json:"emphasis,omitempty"`
}

// Grid holds vertical frequency lines and horizontal gain lines.
type Grid struct {
	Frequencies []GridLine `json:"frequencies"`
	Gains       []GridLine `json:"gains"`
}

var (
	gridFrequencies = []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}
	gridGains       = []float64{-24, -12, 0, 12, 24}
)

// Grid returns the background grid for g. The 0 dB line is emphasised.
func (g Geometry) Grid() Grid {
	grid := Grid{
		Frequencies: make([]GridLine, len(gridFrequencies)),
		Gains:       make([]GridLine, len(gridGains)),
	}

	for i, f := range gridFrequencies {
		grid.Frequencies[i] = GridLine{Value: f, Pos: g.FrequencyX(f), Label: FrequencyLabel(f)}
	}

	for i, db := range gridGains {
		grid.Gains[i] = GridLine{Value: db, Pos: g.GainY(db), Label: GainLabel(db), Emphasis: db == 0}
	}

	return grid
}

// FrequencyLabel formats a grid frequency, e.g. "50Hz" or "2kHz".
func FrequencyLabel(freq float64) string {
	k := ""
	if freq >= 1000 {
		freq /= 1000
		k = "k"
	}

	return strconv.FormatFloat(freq, 'f', -1, 64) + k + "Hz"
}

// GainLabel formats a grid gain, e.g. "-12" or "+24".
func GainLabel(db float64) string {
	s := strconv.FormatFloat(db, 'f', -1, 64)
	if db > 0 {
		s = "+" + s
	}

	return s
}
