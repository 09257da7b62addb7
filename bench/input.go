package bench

import "math/rand"

// Input returns n pseudo-random bytes from a source seeded with seed. The
// same seed always yields bit-identical bytes, so timing runs are
// reproducible and reference outputs can be compared across processes.
func Input(seed int64, n int) []byte {
	buf := make([]byte, n)
	r := rand.New(rand.NewSource(seed))
	r.Read(buf)
	return buf
}

// Buffers allocates a fresh destination buffer set: channels slices of
// len(src)/channels bytes each.
func Buffers(src []byte, channels int) [][]byte {
	dst := make([][]byte, channels)
	for i := range dst {
		dst[i] = make([]byte, len(src)/channels)
	}
	return dst
}
