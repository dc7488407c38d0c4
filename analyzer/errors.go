package analyzer

import "errors"

var (
	// ErrInvalidOrder is returned for FFT orders other than 2048, 4096 or 8192 points.
	ErrInvalidOrder = errors.New("analyzer: invalid fft order")
	// ErrNilFifo is returned when a PathProducer is built without a source fifo.
	ErrNilFifo = errors.New("analyzer: nil sample fifo")
)
