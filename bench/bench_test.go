package bench

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsiec/tdmx/demux"
)

func TestInputDeterministic(t *testing.T) {
	t.Parallel()

	a := Input(0, demux.FrameBufferSize)
	b := Input(0, demux.FrameBufferSize)
	require.Len(t, a, demux.FrameBufferSize)
	require.True(t, bytes.Equal(a, b), "same seed must produce identical input")

	c := Input(1, demux.FrameBufferSize)
	assert.False(t, bytes.Equal(a, c), "different seeds should produce different input")
}

func TestVerifyAllVariants(t *testing.T) {
	t.Parallel()

	src := Input(0, demux.FrameBufferSize)
	for _, v := range demux.Variants() {
		require.NoError(t, Verify(v, src, demux.ChannelCount), "variant %s", v.Name)
	}
}

func TestVerifyReportsDivergence(t *testing.T) {
	t.Parallel()

	// A strategy that demuxes correctly and then corrupts one byte.
	corrupt := demux.Variant{
		Name: "corrupt",
		Demux: func(src []byte, dst [][]byte) {
			demux.DstFirst(src, dst)
			dst[7][3] ^= 0xFF
		},
		Generic: true,
	}

	src := Input(0, demux.FrameBufferSize)
	err := Verify(corrupt, src, demux.ChannelCount)
	require.Error(t, err)

	var div *DivergenceError
	require.ErrorAs(t, err, &div)
	assert.Equal(t, "corrupt", div.Variant)
	assert.Equal(t, 7, div.Channel)
	assert.Equal(t, 3, div.Offset)
	assert.Equal(t, div.Want^0xFF, div.Got)
}

func TestMeasureSeries(t *testing.T) {
	t.Parallel()

	src := Input(0, demux.FrameBufferSize)
	dst := Buffers(src, demux.ChannelCount)

	v := demux.Variants()[0]
	res := Measure(v, src, dst, 100, 4)

	assert.Equal(t, v.Name, res.Variant)
	assert.Equal(t, 100, res.Iterations)
	assert.Equal(t, demux.FrameBufferSize, res.Bytes)
	require.Len(t, res.Times, 4)
	for _, d := range res.Times {
		assert.Greater(t, d, time.Duration(0))
	}
	assert.Greater(t, res.Throughput(), 0.0)
}

func TestThroughputDerivation(t *testing.T) {
	t.Parallel()

	res := Result{
		Variant:    "x",
		Iterations: 10,
		Bytes:      2048,
		Times: []time.Duration{
			// First repetition is the warm-up outlier and must be ignored.
			time.Millisecond,
			4 * time.Millisecond,
			2 * time.Millisecond,
		},
	}
	// 10 iterations * 2048 bytes over the best stable repetition (2ms).
	assert.InDelta(t, 10*2048/0.002, res.Throughput(), 1)

	assert.Zero(t, Result{}.Throughput())
}

func TestRunnerAbortsOnDivergence(t *testing.T) {
	t.Parallel()

	bad := demux.Variant{
		Name: "bad",
		Demux: func(src []byte, dst [][]byte) {
			demux.Reference(src, dst)
			dst[0][0]++
		},
		Generic: true,
	}

	r := NewRunner(nil)
	results, err := r.Run(context.Background(), []demux.Variant{demux.Variants()[0], bad})
	require.Error(t, err)
	assert.Nil(t, results, "no timings may be reported after a divergence")

	var div *DivergenceError
	require.ErrorAs(t, err, &div)
	assert.Equal(t, "bad", div.Variant)
}

// TestRunnerEndToEnd is the full scenario: deterministic seed-0 input,
// reference and dst-first byte-identical, then the timing protocol with
// enough repetitions that the post-warm-up tail stabilizes.
func TestRunnerEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("timing-sensitive")
	}

	src := Input(0, demux.FrameBufferSize)

	want := Buffers(src, demux.ChannelCount)
	demux.Reference(src, want)
	got := Buffers(src, demux.ChannelCount)
	demux.DstFirst(src, got)
	for ch := range want {
		require.True(t, bytes.Equal(got[ch], want[ch]), "channel %d", ch)
	}

	r := NewRunner(nil)
	r.Iterations = 50_000
	r.Repetitions = 5

	variants := []demux.Variant{
		{Name: "reference", Demux: demux.Reference, Generic: true},
		{Name: "dst-first", Demux: demux.DstFirst, Generic: true},
	}
	results, err := r.Run(context.Background(), variants)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, res := range results {
		require.Len(t, res.Times, 5)
		// The last two repetitions should have converged. The tolerance is
		// generous: this guards against gross warm-up leakage, not noise.
		a := res.Times[3].Seconds()
		b := res.Times[4].Seconds()
		ratio := a / b
		if ratio < 1 {
			ratio = 1 / ratio
		}
		assert.Less(t, ratio, 1.5, "variant %s repetitions did not stabilize: %v", res.Variant, res.Times)
		assert.Greater(t, res.Throughput(), 0.0)
	}
}
