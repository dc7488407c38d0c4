package eq

import "errors"

var (
	// ErrInvalidSampleRate is returned by Prepare for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("eq: invalid sample rate")
	// ErrInvalidBlockSize is returned by Prepare for block sizes < 1.
	ErrInvalidBlockSize = errors.New("eq: invalid block size")
	// ErrNilStore is returned when a Processor is built without a parameter store.
	ErrNilStore = errors.New("eq: nil parameter store")
)
