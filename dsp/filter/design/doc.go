// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ cookbook lowpass, highpass
// and peaking sections, and even-order Butterworth lowpass/highpass cascades
// built from them. The cascade designers write into caller-owned storage and
// do not allocate, so they may be used on a real-time audio thread.
package design
