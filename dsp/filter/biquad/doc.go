// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections are
// cascaded via [Chain], whose sections can be bypassed one by one.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth cut filters, peaking EQ) lives in dsp/filter/design.
package biquad
