package demux

import "fmt"

// E1 frame geometry. One capture window interleaves ChannelCount timeslots,
// SamplesPerChannel frames deep, so a full window is FrameBufferSize bytes.
const (
	ChannelCount      = 32
	SamplesPerChannel = 64
	FrameBufferSize   = ChannelCount * SamplesPerChannel
)

// Strategy demultiplexes src into dst: for every i in [0, len(src)),
// dst[i%len(dst)][i/len(dst)] = src[i]. Strategies are stateless and carry
// no state between invocations; the caller owns buffer allocation and reuse.
// Undersized destination buffers panic out of bounds rather than truncate.
type Strategy func(src []byte, dst [][]byte)

// Variant pairs a Strategy with its name for polymorphic use by a harness.
type Variant struct {
	Name  string
	Demux Strategy

	// Generic variants accept any geometry with len(src) a multiple of
	// len(dst) and check that precondition explicitly. Non-generic variants
	// assume the fixed ChannelCount x SamplesPerChannel geometry and rely on
	// slice bounds checks alone; violating their geometry panics.
	Generic bool
}

// Variants returns the closed list of demultiplex strategies, reference
// first. The bench package iterates this list rather than discovering
// strategies reflectively.
func Variants() []Variant {
	return []Variant{
		{Name: "reference", Demux: Reference, Generic: true},
		{Name: "src-first", Demux: SourceFirst, Generic: true},
		{Name: "src-first-indexed", Demux: SourceFirstIndexed, Generic: true},
		{Name: "dst-first", Demux: DstFirst, Generic: true},
		{Name: "dst-first-fixed", Demux: DstFirstFixed},
		{Name: "unrolled", Demux: Unrolled},
		{Name: "unrolled-flat", Demux: UnrolledFlat},
		{Name: "unrolled-split", Demux: UnrolledSplit},
		{Name: "unrolled-by2", Demux: UnrolledBy2},
		{Name: "unrolled-by4", Demux: UnrolledBy4},
		{Name: "unrolled-by8", Demux: UnrolledBy8},
		{Name: "unrolled-by16", Demux: UnrolledBy16},
	}
}

// checkGeometry panics unless len(src) is an exact multiple of len(dst).
// A malformed buffer set is a programmer error, not a runtime condition,
// so generic strategies fail fast instead of returning an error from the
// hot path.
func checkGeometry(src []byte, dst [][]byte) {
	if len(dst) == 0 {
		panic("demux: no destination channels")
	}
	if len(src)%len(dst) != 0 {
		panic(fmt.Sprintf("demux: source length %d not a multiple of channel count %d", len(src), len(dst)))
	}
}

// Reference is the correctness oracle: a single pass over the source with a
// round-robin channel index. It is the slowest and most obviously correct
// strategy; every other variant is checked against it byte for byte. Panics
// if len(src) is not a multiple of len(dst).
func Reference(src []byte, dst [][]byte) {
	checkGeometry(src, dst)
	ch, p := 0, 0
	for i := 0; i < len(src); i++ {
		dst[ch][p] = src[i]
		ch++
		if ch == len(dst) {
			ch = 0
			p++
		}
	}
}

// SourceFirst walks the source in frame order: an outer loop over frame
// position with an inner loop over channels, mirroring the order bytes
// arrive on the wire. Panics if len(src) is not a multiple of len(dst).
func SourceFirst(src []byte, dst [][]byte) {
	checkGeometry(src, dst)
	channels := len(dst)
	frames := len(src) / channels
	for p := 0; p < frames; p++ {
		base := p * channels
		for ch := 0; ch < channels; ch++ {
			dst[ch][p] = src[base+ch]
		}
	}
}

// SourceFirstIndexed is a single loop over the source computing the
// destination coordinates with a div and mod per element. It is expected to
// be the slowest variant: the quotient and remainder are not induction
// variables, which defeats bounds-check elimination and address-mode
// strength reduction. Kept as a measured regression, not a candidate.
// Panics if len(src) is not a multiple of len(dst).
func SourceFirstIndexed(src []byte, dst [][]byte) {
	checkGeometry(src, dst)
	channels := len(dst)
	for i := 0; i < len(src); i++ {
		dst[i%channels][i/channels] = src[i]
	}
}

// DstFirst fills one destination channel at a time, hoisting the channel's
// slice out of the inner loop. Hoisting that load is the single
// highest-value manual optimization over SourceFirst. Panics if len(src) is
// not a multiple of len(dst).
func DstFirst(src []byte, dst [][]byte) {
	checkGeometry(src, dst)
	channels := len(dst)
	samples := len(src) / channels
	for ch := 0; ch < channels; ch++ {
		d := dst[ch]
		for p := 0; p < samples; p++ {
			d[p] = src[p*channels+ch]
		}
	}
}

// DstFirstFixed is DstFirst specialized to the E1 geometry: both trip
// counts are compile-time constants, which lets the compiler unroll the
// inner loop. It only handles ChannelCount channels of SamplesPerChannel
// bytes; any other geometry panics out of bounds.
func DstFirstFixed(src []byte, dst [][]byte) {
	for ch := 0; ch < ChannelCount; ch++ {
		d := dst[ch]
		for p := 0; p < SamplesPerChannel; p++ {
			d[p] = src[p*ChannelCount+ch]
		}
	}
}
