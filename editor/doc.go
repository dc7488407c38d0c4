// Package editor is the display side of the equalizer.
//
// A [Synchronizer] runs on a cooperative ticker. It turns parameter
// changes into at most one chain rebuild per tick, renders the analytic
// response curve, drives the spectrum [analyzer.PathProducer]s and publishes
// the results as immutable paths through atomic pointers. UI consumers read
// them through [FrequencyResponseSource] and [SpectrumPathSource] and wait
// on the repaint channel.
//
// Drawing is left to the consumer. This package only describes what to
// draw: [Geometry] and [Grid] give positions, [Style] gives colours and
// stroke widths, and [Control] gives the display strings of each control.
package editor
