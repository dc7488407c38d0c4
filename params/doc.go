// Package params holds the automatable parameters of a processor.
//
// A [Store] is built once from an ordered list of [Definition]s and then
// shared between threads. Values are stored as atomic float64 bits so the
// audio thread can read them without locking. Every accepted change bumps a
// version counter and is delivered by message passing to each
// [Subscription]; subscribers poll their queue, there are no callbacks.
package params
