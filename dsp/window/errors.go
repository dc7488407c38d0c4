package window

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by ParseType for names that match no window.
var ErrUnknownType = errors.New("window: unknown type")

func unknownType(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}
