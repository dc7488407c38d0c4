package editor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/eq"
	"github.com/cwbudde/algo-eq/params"
)

// ControlKind selects how a control is drawn and how it formats its value.
// It is fixed when the control is built.
type ControlKind int

const (
	// RotaryFloat is a knob over a continuous range with a unit suffix.
	RotaryFloat ControlKind = iota
	// RotaryChoice is a knob stepping through named choices.
	RotaryChoice
	// PowerButton toggles a bypass parameter; on means the stage is bypassed.
	PowerButton
	// AnalyzerButton toggles the spectrum analyzer.
	AnalyzerButton
)

func (k ControlKind) String() string {
	switch k {
	case RotaryFloat:
		return "rotary"
	case RotaryChoice:
		return "rotary-choice"
	case PowerButton:
		return "power"
	case AnalyzerButton:
		return "analyzer"
	default:
		return fmt.Sprintf("ControlKind(%d)", int(k))
	}
}

// Rotary knobs sweep clockwise from 7:30 to 4:30.
const (
	RotaryStartAngle = math.Pi * 5 / 4
	RotaryEndAngle   = math.Pi*3/4 + 2*math.Pi
)

// Label is a caption placed around a rotary control at a proportional
// position in [0, 1].
type Label struct {
	Position float64 `json:"position"`
	Text     string  `json:"text"`
}

// Control describes one user control bound to a parameter.
type Control struct {
	Kind   ControlKind
	Param  params.Definition
	Suffix string
	Labels []Label
}

// NewRotary builds a knob for a float or choice parameter. It panics if
// def is a bool parameter or a label lies outside [0, 1].
func NewRotary(def params.Definition, suffix string, labels ...Label) Control {
	var kind ControlKind

	switch def.Kind {
	case params.KindFloat:
		kind = RotaryFloat
	case params.KindChoice:
		kind = RotaryChoice
	default:
		panic(fmt.Sprintf("editor: rotary control for %v parameter %q", def.Kind, def.ID))
	}

	for _, l := range labels {
		if l.Position < 0 || l.Position > 1 {
			panic(fmt.Sprintf("editor: label %q at %v outside [0, 1]", l.Text, l.Position))
		}
	}

	return Control{Kind: kind, Param: def, Suffix: suffix, Labels: append([]Label(nil), labels...)}
}

// NewPowerButton builds a bypass toggle.
func NewPowerButton(def params.Definition) Control {
	return Control{Kind: PowerButton, Param: def}
}

// NewAnalyzerButton builds the analyzer toggle.
func NewAnalyzerButton(def params.Definition) Control {
	return Control{Kind: AnalyzerButton, Param: def}
}

// DisplayString formats v for this control.
//
// Choice knobs show the choice name. Float knobs show values of 1000 and
// above divided by 1000 with two decimals and a "k" before the suffix.
func (c Control) DisplayString(v float64) string {
	switch c.Kind {
	case RotaryChoice:
		if len(c.Param.Choices) == 0 {
			return ""
		}
		i := int(math.Round(core.Clamp(v, 0, float64(len(c.Param.Choices)-1))))
		return c.Param.Choices[i]
	case PowerButton:
		if v >= 0.5 {
			return "Bypassed"
		}
		return "Active"
	case AnalyzerButton:
		if v >= 0.5 {
			return "On"
		}
		return "Off"
	}

	addK := false
	if v >= 1000 {
		v /= 1000
		addK = true
	}

	var str string
	if addK {
		str = strconv.FormatFloat(v, 'f', 2, 64)
	} else {
		str = strconv.FormatFloat(v, 'f', -1, 32)
	}

	if c.Suffix != "" {
		str += " "
		if addK {
			str += "k"
		}
		str += c.Suffix
	}

	return str
}

// Proportion returns v as a position in [0, 1] along the control's travel.
func (c Control) Proportion(v float64) float64 {
	return c.Param.Range.ToNormalized(v)
}

// Angle returns the knob angle in radians for a proportional position.
func Angle(proportion float64) float64 {
	return core.Map(core.Clamp(proportion, 0, 1), 0, 1, RotaryStartAngle, RotaryEndAngle)
}

// Controls returns the equalizer's controls for store in layout order.
// store must hold the layout of eq.NewParameterStore.
func Controls(store *params.Store) []Control {
	def := func(id string) params.Definition {
		d, ok := store.Definition(id)
		if !ok {
			panic("editor: parameter " + strconv.Quote(id) + " missing from store")
		}
		return d
	}

	freqLabels := []Label{{0, "20Hz"}, {1, "20kHz"}}
	slopeLabels := []Label{{0, "12"}, {1, "48"}}

	return []Control{
		NewRotary(def(eq.IDLowCutFreq), "Hz", freqLabels...),
		NewRotary(def(eq.IDHighCutFreq), "Hz", freqLabels...),
		NewRotary(def(eq.IDPeakFreq), "Hz", freqLabels...),
		NewRotary(def(eq.IDPeakGain), "dB", Label{0, "-24dB"}, Label{1, "+24dB"}),
		NewRotary(def(eq.IDPeakQuality), "", Label{0, "0.1"}, Label{1, "10.0"}),
		NewRotary(def(eq.IDLowCutSlope), "dB/Oct", slopeLabels...),
		NewRotary(def(eq.IDHighCutSlope), "dB/Oct", slopeLabels...),
		NewPowerButton(def(eq.IDLowCutBypassed)),
		NewPowerButton(def(eq.IDPeakBypassed)),
		NewPowerButton(def(eq.IDHighCutBypassed)),
		NewAnalyzerButton(def(eq.IDAnalyzerEnabled)),
	}
}
