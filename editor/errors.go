package editor

import "errors"

// ErrNilProcessor is returned when a Synchronizer is built without a processor.
var ErrNilProcessor = errors.New("editor: nil processor")
