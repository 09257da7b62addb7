// Package bench measures and verifies the demux strategies. It generates
// deterministic input, checks every strategy byte for byte against
// [demux.Reference] before any timing is trusted, and runs a
// warm-up-tolerant timing protocol that reports the full series of
// repetition times as structured results. Printing is left to the caller.
//
// Timing validity assumes a quiescent process and machine; measurements are
// taken serially and are sensitive to co-scheduled work. To quantify what
// the compiler's optimizer contributes, build with -gcflags='-N -l' and
// compare.
package bench
