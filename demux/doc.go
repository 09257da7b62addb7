// Package demux implements E1 time-division demultiplexing: splitting an
// interleaved byte stream of 32 timeslots into per-channel buffers. Each
// frame is 32 consecutive source bytes, one per channel, so byte i of the
// source lands at dst[i%32][i/32].
//
// The package provides several strategies that all produce bit-identical
// output but differ in iteration order and specialization, from the fully
// generic [Reference] down to geometry-specialized unrolled forms. The
// closed list of strategies is exposed through [Variants] so a harness can
// treat them polymorphically. [Reference] is the correctness oracle the
// bench package checks every other strategy against.
package demux

//go:generate go run gen.go
