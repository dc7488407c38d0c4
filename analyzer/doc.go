// Package analyzer turns captured audio into renderable spectrum paths.
//
// The pipeline has four stages, each handing off through a bounded
// single-producer/single-consumer [buffer.Ring]:
//
//	SampleFifo        audio thread -> fixed-size blocks
//	FFTDataGenerator  windowed FFT -> dB magnitude blocks
//	PathGenerator     magnitudes   -> polylines in a display rectangle
//	PathProducer      drives the three and keeps the last complete path
//
// Only SampleFifo.Update runs on the audio thread. Everything else runs on
// a single cooperative goroutine. A full ring drops data rather than block.
package analyzer
