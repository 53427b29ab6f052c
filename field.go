// field.go - Z_q arithmetic and constant-time reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// barrettMultiplier approximates 2^26/q, rounded to the nearest
	// integer: floor((1<<26 + q/2) / q).
	barrettMultiplier = 20159
	barrettShift      = 26

	// nInv is 128^-1 mod q, used to finish the inverse NTT (its 7 layers
	// each double the result).
	nInv = 3303
)

// csubq conditionally subtracts q from a, in constant time: if a is in
// [0, 2q), the result is in [0, q).
func csubq(a uint16) uint16 {
	a -= kyberQ
	mask := uint16(int16(a) >> 15) // all-ones iff a underflowed.
	return a + (mask & kyberQ)
}

// barrettReduce reduces a, a product of two canonical Z_q elements, to a
// value in [0, q). a must be < q*q. barrettMultiplier is rounded up, so
// over that range the quotient estimate a*barrettMultiplier>>barrettShift
// is never below the true quotient but can land one above it, leaving a
// remainder in [-q, 0). A conditional subtraction such as csubq does not
// fix that; instead a negative remainder is corrected by a branchless
// conditional addition of q, after which it is canonical.
func barrettReduce(a uint32) uint16 {
	t := uint32((uint64(a) * barrettMultiplier) >> barrettShift)
	r := int32(a - t*kyberQ)
	mask := uint32(r >> 31) // all-ones iff r is negative.
	return uint16(uint32(r) + (mask & kyberQ))
}

// addMod computes (a+b) mod q for canonical a, b in [0, q).
func addMod(a, b uint16) uint16 {
	return csubq(a + b)
}

// subMod computes (a-b) mod q for canonical a, b in [0, q).
func subMod(a, b uint16) uint16 {
	return csubq(a + kyberQ - b)
}

// mulMod computes (a*b) mod q for canonical a, b in [0, q).
func mulMod(a, b uint16) uint16 {
	return barrettReduce(uint32(a) * uint32(b))
}
