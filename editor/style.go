package editor

import (
	"encoding/hex"
	"fmt"
)

// Color is an 8-bit RGBA colour. It marshals as "#rrggbb" or "#rrggbbaa".
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

// Hex returns the CSS hex form of c.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}

	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	if len(b) == 0 || b[0] != '#' || (len(b) != 7 && len(b) != 9) {
		return fmt.Errorf("editor: colour %q: want #rrggbb or #rrggbbaa", b)
	}

	raw, err := hex.DecodeString(string(b[1:]))
	if err != nil {
		return fmt.Errorf("editor: colour %q: %w", b, err)
	}

	*c = Color{R: raw[0], G: raw[1], B: raw[2], A: 0xff}
	if len(raw) == 4 {
		c.A = raw[3]
	}

	return nil
}

// Style carries every colour and stroke the response view and its
// controls are drawn with. It is passed to consumers explicitly.
type Style struct {
	Background    Color `json:"background"`
	Border        Color `json:"border"`
	ResponseCurve Color `json:"responseCurve"`
	LeftSpectrum  Color `json:"leftSpectrum"`
	RightSpectrum Color `json:"rightSpectrum"`
	GridLine      Color `json:"gridLine"`
	GainLine      Color `json:"gainLine"`
	ZeroLine      Color `json:"zeroLine"`
	GridLabel     Color `json:"gridLabel"`
	RotaryFill    Color `json:"rotaryFill"`
	RotaryOutline Color `json:"rotaryOutline"`
	RotaryText    Color `json:"rotaryText"`
	LabelText     Color `json:"labelText"`
	BypassedFill  Color `json:"bypassedFill"`

	BorderStroke   float64 `json:"borderStroke"`
	BorderRadius   float64 `json:"borderRadius"`
	ResponseStroke float64 `json:"responseStroke"`
	SpectrumStroke float64 `json:"spectrumStroke"`
	GridFontSize   float64 `json:"gridFontSize"`
	TextHeight     float64 `json:"textHeight"`
}

// DefaultStyle returns the stock look: a whitesmoke response curve in an
// orange frame over a dark grid with a green 0 dB line.
func DefaultStyle() Style {
	return Style{
		Background:    RGB(0, 0, 0),
		Border:        RGB(255, 165, 0),
		ResponseCurve: RGB(245, 245, 245),
		LeftSpectrum:  RGB(135, 206, 235),
		RightSpectrum: RGB(255, 255, 224),
		GridLine:      RGB(105, 105, 105),
		GainLine:      RGB(169, 169, 169),
		ZeroLine:      RGB(0, 172, 1),
		GridLabel:     RGB(211, 211, 211),
		RotaryFill:    RGB(97, 18, 167),
		RotaryOutline: RGB(255, 154, 1),
		RotaryText:    RGB(255, 255, 255),
		LabelText:     RGB(0, 172, 1),
		BypassedFill:  RGB(128, 128, 128),

		BorderStroke:   1,
		BorderRadius:   4,
		ResponseStroke: 2,
		SpectrumStroke: 1,
		GridFontSize:   10,
		TextHeight:     14,
	}
}
