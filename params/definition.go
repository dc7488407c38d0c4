package params

import "fmt"

// Kind tags the value domain of a parameter.
type Kind int

const (
	// KindFloat is a continuous value within a Range.
	KindFloat Kind = iota
	// KindChoice is an index into Choices.
	KindChoice
	// KindBool is 0 (off) or 1 (on).
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindChoice:
		return "choice"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Definition describes one parameter. Choice and bool parameters carry an
// integer Range derived from their kind.
type Definition struct {
	ID      string
	Name    string
	Kind    Kind
	Range   Range
	Default float64
	Unit    string
	Choices []string
}

// Float defines a continuous parameter.
func Float(id, name string, r Range, def float64, unit string) Definition {
	return Definition{ID: id, Name: name, Kind: KindFloat, Range: r, Default: def, Unit: unit}
}

// Choice defines a parameter selecting one of choices by index.
func Choice(id, name string, choices []string, def int) Definition {
	return Definition{
		ID:      id,
		Name:    name,
		Kind:    KindChoice,
		Range:   Linear(0, float64(len(choices)-1), 1),
		Default: float64(def),
		Choices: append([]string(nil), choices...),
	}
}

// Bool defines an on/off parameter.
func Bool(id, name string, def bool) Definition {
	d := 0.0
	if def {
		d = 1
	}
	return Definition{ID: id, Name: name, Kind: KindBool, Range: Linear(0, 1, 1), Default: d}
}

func (d Definition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDefinition)
	}
	switch d.Kind {
	case KindChoice:
		if len(d.Choices) < 2 {
			return fmt.Errorf("%w: %s needs at least two choices", ErrInvalidDefinition, d.ID)
		}
	case KindFloat, KindBool:
	default:
		return fmt.Errorf("%w: %s has unknown kind %v", ErrInvalidDefinition, d.ID, d.Kind)
	}
	if !d.Range.valid() {
		return fmt.Errorf("%w: %s range %+v", ErrInvalidDefinition, d.ID, d.Range)
	}
	if d.Default < d.Range.Min || d.Default > d.Range.Max {
		return fmt.Errorf("%w: %s default %v outside [%v, %v]", ErrInvalidDefinition, d.ID, d.Default, d.Range.Min, d.Range.Max)
	}
	return nil
}

// Legalize clamps and snaps v for this parameter's kind.
func (d Definition) Legalize(v float64) float64 {
	if d.Kind == KindBool {
		if v >= 0.5 {
			return 1
		}
		return 0
	}
	return d.Range.Snap(v)
}
