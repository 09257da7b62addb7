//go:build ignore

// gen.go emits unrolled.go: the unrolled demultiplex strategies for the
// fixed E1 geometry. The unrolled bodies are pure mechanical expansions of
// dst[i%32][i/32] = src[i], far too repetitive to maintain by hand.
//
// Run via go generate from the demux package directory.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

const (
	channels = 32
	samples  = 64
)

func main() {
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by gen.go. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package demux\n\n")

	genUnrolled(&b)
	genUnrolledFlat(&b)
	genUnrolledSplit(&b)
	for _, factor := range []int{2, 4, 8, 16} {
		genUnrolledBy(&b, factor)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatalf("formatting generated source: %v", err)
	}
	if err := os.WriteFile("unrolled.go", src, 0o644); err != nil {
		log.Fatalf("writing unrolled.go: %v", err)
	}
}

// genUnrolled: one loop over frame position, channel dimension unrolled.
func genUnrolled(b *bytes.Buffer) {
	fmt.Fprintf(b, "// Unrolled demultiplexes one fixed-geometry window with the channel\n")
	fmt.Fprintf(b, "// dimension fully unrolled: a single loop over frame position containing\n")
	fmt.Fprintf(b, "// one explicit store per channel. Geometry other than\n")
	fmt.Fprintf(b, "// ChannelCount x SamplesPerChannel panics out of bounds.\n")
	fmt.Fprintf(b, "func Unrolled(src []byte, dst [][]byte) {\n")
	fmt.Fprintf(b, "\tfor p := 0; p < SamplesPerChannel; p++ {\n")
	fmt.Fprintf(b, "\t\tbase := p * ChannelCount\n")
	for ch := 0; ch < channels; ch++ {
		fmt.Fprintf(b, "\t\tdst[%d][p] = src[%s]\n", ch, offset("base", ch))
	}
	fmt.Fprintf(b, "\t}\n}\n\n")
}

// genUnrolledFlat: the degenerate everything-unrolled form, kept as a
// cautionary benchmark subject.
func genUnrolledFlat(b *bytes.Buffer) {
	fmt.Fprintf(b, "// UnrolledFlat is the degenerate fully-unrolled form: zero loops, one\n")
	fmt.Fprintf(b, "// explicit store for each of the %d positions. It exists to measure what\n", channels*samples)
	fmt.Fprintf(b, "// a straight-line body of this size costs; it is an anti-pattern, not a\n")
	fmt.Fprintf(b, "// candidate. Fixed geometry only.\n")
	fmt.Fprintf(b, "func UnrolledFlat(src []byte, dst [][]byte) {\n")
	for i := 0; i < channels*samples; i++ {
		fmt.Fprintf(b, "\tdst[%d][%d] = src[%d]\n", i%channels, i/channels, i)
	}
	fmt.Fprintf(b, "}\n\n")
}

// genUnrolledSplit: one fully-unrolled routine per channel behind a thin
// dispatcher, trading one huge body for 32 small ones.
func genUnrolledSplit(b *bytes.Buffer) {
	fmt.Fprintf(b, "// UnrolledSplit dispatches to one fully-unrolled routine per channel,\n")
	fmt.Fprintf(b, "// recovering some of the performance UnrolledFlat loses to its single\n")
	fmt.Fprintf(b, "// oversized body. Fixed geometry only.\n")
	fmt.Fprintf(b, "func UnrolledSplit(src []byte, dst [][]byte) {\n")
	for ch := 0; ch < channels; ch++ {
		fmt.Fprintf(b, "\tunrolledCh%d(src, dst[%d])\n", ch, ch)
	}
	fmt.Fprintf(b, "}\n\n")

	for ch := 0; ch < channels; ch++ {
		fmt.Fprintf(b, "func unrolledCh%d(src, d []byte) {\n", ch)
		for p := 0; p < samples; p++ {
			fmt.Fprintf(b, "\td[%d] = src[%d]\n", p, p*channels+ch)
		}
		fmt.Fprintf(b, "}\n\n")
	}
}

// genUnrolledBy: outer loop advancing factor channels per iteration, each
// channel's inner dimension fully unrolled.
func genUnrolledBy(b *bytes.Buffer, factor int) {
	fmt.Fprintf(b, "// UnrolledBy%d processes %d channels per outer-loop iteration, each with\n", factor, factor)
	fmt.Fprintf(b, "// its sample dimension fully unrolled (%d stores per iteration). Fixed\n", factor*samples)
	fmt.Fprintf(b, "// geometry only.\n")
	fmt.Fprintf(b, "func UnrolledBy%d(src []byte, dst [][]byte) {\n", factor)
	fmt.Fprintf(b, "\tfor ch := 0; ch < ChannelCount; ch += %d {\n", factor)
	for j := 0; j < factor; j++ {
		fmt.Fprintf(b, "\t\td%d := dst[%s]\n", j, offset("ch", j))
	}
	for p := 0; p < samples; p++ {
		for j := 0; j < factor; j++ {
			fmt.Fprintf(b, "\t\td%d[%d] = src[%s]\n", j, p, offset("ch", p*channels+j))
		}
	}
	fmt.Fprintf(b, "\t}\n}\n\n")
}

func offset(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s+%d", base, n)
}
