// zeroize.go - Secret buffer wiping.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zeroize overwrites b with zero bytes in place. It does not prevent the
// Go runtime from having copied b's contents elsewhere (a GC-moved
// backing array, a register spill); it is a best-effort measure, not a
// guarantee.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
