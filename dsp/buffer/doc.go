// Package buffer provides the fixed-size buffers shared between the audio
// thread and the analysis loop.
//
// [Ring] is a bounded single-producer/single-consumer queue of sample (or
// point) blocks. Every slot is allocated up front so the producer side never
// allocates or blocks; a push into a full ring fails and the block is dropped.
//
// [Buffer] is a fixed-width accumulation buffer: new samples are shifted in at
// the tail while the oldest samples fall off the head, so it always holds the
// most recent Len() samples.
package buffer
