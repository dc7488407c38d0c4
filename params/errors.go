package params

import "errors"

var (
	// ErrUnknownParameter is returned for ids not registered in the store.
	ErrUnknownParameter = errors.New("params: unknown parameter")
	// ErrDuplicateParameter is returned by NewStore when two definitions share an id.
	ErrDuplicateParameter = errors.New("params: duplicate parameter id")
	// ErrInvalidDefinition is returned by NewStore for malformed definitions.
	ErrInvalidDefinition = errors.New("params: invalid definition")
)
