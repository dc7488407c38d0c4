// Package eq implements a three band equalizer: a Butterworth low cut of
// 12 to 48 dB/oct, an RBJ peaking bell and a Butterworth high cut.
//
// [Settings] is an immutable snapshot of the user parameters. The
// coefficient factory ([MakePeakFilter], [MakeLowCutFilter],
// [MakeHighCutFilter], [Designer]) is pure and allocation free.
// [MonoChain] runs the stages on one channel and answers magnitude
// queries for the response curve. [Processor] is the host-facing stereo
// processor that keeps both chains in sync with a [params.Store].
package eq
