package demux

import (
	"bytes"
	"math/rand"
	"testing"
)

// ramp returns n bytes of the sequence 0,1,2,...,255,0,1,...
func ramp(n int) []byte {
	src := make([]byte, n)
	for i := range src {
		src[i] = byte(i)
	}
	return src
}

func makeDst(channels, samples int) [][]byte {
	dst := make([][]byte, channels)
	for i := range dst {
		dst[i] = make([]byte, samples)
	}
	return dst
}

func TestVariantsMatchReference(t *testing.T) {
	t.Parallel()

	src := make([]byte, FrameBufferSize)
	rand.New(rand.NewSource(42)).Read(src)

	want := makeDst(ChannelCount, SamplesPerChannel)
	Reference(src, want)

	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			t.Parallel()
			got := makeDst(ChannelCount, SamplesPerChannel)
			v.Demux(src, got)
			for ch := range want {
				if !bytes.Equal(got[ch], want[ch]) {
					t.Fatalf("channel %d differs from reference", ch)
				}
			}
		})
	}
}

// TestGenericVariantsArbitraryGeometry checks the generic variants against
// the reference over randomly chosen geometries, not just the fixed E1 one.
func TestGenericVariantsArbitraryGeometry(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		channels := 1 + r.Intn(64)
		samples := r.Intn(100)
		src := make([]byte, channels*samples)
		r.Read(src)

		want := makeDst(channels, samples)
		Reference(src, want)

		for _, v := range Variants() {
			if !v.Generic {
				continue
			}
			got := makeDst(channels, samples)
			v.Demux(src, got)
			for ch := range want {
				if !bytes.Equal(got[ch], want[ch]) {
					t.Fatalf("%s: channel %d differs from reference (channels=%d samples=%d)",
						v.Name, ch, channels, samples)
				}
			}
		}
	}
}

// TestGeometryInvariant pins the exact byte placement: with the ramp input,
// destination k at position p must hold (p*32 + k) mod 256.
func TestGeometryInvariant(t *testing.T) {
	t.Parallel()

	src := ramp(FrameBufferSize)
	for _, v := range Variants() {
		dst := makeDst(ChannelCount, SamplesPerChannel)
		v.Demux(src, dst)
		for k := 0; k < ChannelCount; k++ {
			for p := 0; p < SamplesPerChannel; p++ {
				want := byte(p*ChannelCount + k)
				if dst[k][p] != want {
					t.Fatalf("%s: dst[%d][%d] = %#02x, want %#02x", v.Name, k, p, dst[k][p], want)
				}
			}
		}
	}
}

// TestSingleFrame covers the minimum valid input for the generic variants:
// exactly one frame, so byte i of the source lands in destination i.
func TestSingleFrame(t *testing.T) {
	t.Parallel()

	src := ramp(ChannelCount)
	for _, v := range Variants() {
		if !v.Generic {
			continue
		}
		dst := makeDst(ChannelCount, 1)
		v.Demux(src, dst)
		for ch := range dst {
			if dst[ch][0] != byte(ch) {
				t.Errorf("%s: dst[%d][0] = %#02x, want %#02x", v.Name, ch, dst[ch][0], byte(ch))
			}
		}
	}
}

// TestZeroLength documents the empty-input policy for the generic variants:
// zero bytes is a valid multiple of the channel count and leaves every
// destination empty.
func TestZeroLength(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		if !v.Generic {
			continue
		}
		dst := makeDst(ChannelCount, 0)
		v.Demux(nil, dst)
	}
}

// TestGeometryPanics verifies the generic variants fail fast on inputs that
// are not a whole number of frames, and on an empty destination set.
func TestGeometryPanics(t *testing.T) {
	t.Parallel()

	mustPanic := func(t *testing.T, name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	src := ramp(ChannelCount + 1) // one byte past a frame boundary
	for _, v := range Variants() {
		if !v.Generic {
			continue
		}
		mustPanic(t, v.Name+"/ragged", func() {
			v.Demux(src, makeDst(ChannelCount, 2))
		})
		mustPanic(t, v.Name+"/no-channels", func() {
			v.Demux(src, nil)
		})
	}
}

// TestUndersizedDestinationPanics verifies that a short destination buffer
// surfaces as a bounds panic rather than silent truncation.
func TestUndersizedDestinationPanics(t *testing.T) {
	t.Parallel()

	src := ramp(FrameBufferSize)
	for _, v := range Variants() {
		t.Run(v.Name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Error("expected bounds panic")
				}
			}()
			dst := makeDst(ChannelCount, SamplesPerChannel)
			dst[ChannelCount-1] = dst[ChannelCount-1][:SamplesPerChannel-1]
			v.Demux(src, dst)
		})
	}
}
