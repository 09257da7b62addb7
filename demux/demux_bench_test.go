package demux

import (
	"math/rand"
	"testing"
)

// BenchmarkDemux times every variant on one E1 window. The interesting
// comparisons: dst-first vs src-first (hoisting the destination slice),
// dst-first-fixed vs dst-first (constant trip counts), unrolled vs
// unrolled-flat (the straight-line anti-pattern), and the unrolled-byN
// series, which gains up to a factor and then regresses.
func BenchmarkDemux(b *testing.B) {
	src := make([]byte, FrameBufferSize)
	rand.New(rand.NewSource(0)).Read(src)
	dst := makeDst(ChannelCount, SamplesPerChannel)

	for _, v := range Variants() {
		b.Run(v.Name, func(b *testing.B) {
			b.SetBytes(FrameBufferSize)
			for b.Loop() {
				v.Demux(src, dst)
			}
		})
	}
}
