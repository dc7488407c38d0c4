// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement the FFT itself. It operates on complex
// bins produced by an external FFT backend and provides vectorised magnitude
// extraction, normalisation and decibel conversion with a floor, plus a
// Goertzel single-bin analyzer for measuring individual tones.
package spectrum
