package bench

import (
	"fmt"

	"github.com/zsiec/tdmx/demux"
)

// DivergenceError reports the first byte at which a candidate strategy's
// output differs from the reference strategy's output.
type DivergenceError struct {
	Variant string
	Channel int
	Offset  int
	Got     byte
	Want    byte
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("bench: variant %q diverged from reference at channel %d offset %d: got %#02x, want %#02x",
		e.Variant, e.Channel, e.Offset, e.Got, e.Want)
}

// Verify runs the reference strategy and the candidate on src into two
// independently allocated buffer sets of channels channels and compares
// them byte for byte. It returns a *DivergenceError on the first mismatch
// and nil when the outputs are identical. Verification must pass before a
// variant's timings mean anything.
func Verify(v demux.Variant, src []byte, channels int) error {
	want := Buffers(src, channels)
	demux.Reference(src, want)

	got := Buffers(src, channels)
	v.Demux(src, got)

	for ch := range want {
		for p := range want[ch] {
			if got[ch][p] != want[ch][p] {
				return &DivergenceError{
					Variant: v.Name,
					Channel: ch,
					Offset:  p,
					Got:     got[ch][p],
					Want:    want[ch][p],
				}
			}
		}
	}
	return nil
}
