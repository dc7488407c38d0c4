package editor

import "github.com/cwbudde/algo-eq/analyzer"

// Frame is everything a consumer needs to paint one repaint.
type Frame struct {
	Response analyzer.Path `json:"response"`
	Left     analyzer.Path `json:"left"`
	Right    analyzer.Path `json:"right"`
	Geometry Geometry      `json:"geometry"`
	Grid     Grid          `json:"grid"`
	Style    Style         `json:"style"`
	Analyzer bool          `json:"analyzer"`
}

// Frame collects the latest published paths with the current geometry.
func (s *Synchronizer) Frame(style Style) Frame {
	g := s.Geometry()
	left := s.SpectrumPath(analyzer.Left)
	right := s.SpectrumPath(analyzer.Right)

	return Frame{
		Response: s.ResponseCurve(),
		Left:     left,
		Right:    right,
		Geometry: g,
		Grid:     g.Grid(),
		Style:    style,
		Analyzer: left != nil || right != nil,
	}
}
