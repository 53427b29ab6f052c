// sample.go - Uniform rejection sampling and hash/XOF/PRF primitives.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"golang.org/x/crypto/sha3"
)

// hashG is G from FIPS 203 section 4.1: SHA3-512, split into two 32-byte
// halves.
func hashG(in ...[]byte) (a, b [SymSize]byte) {
	h := sha3.New512()
	for _, v := range in {
		h.Write(v)
	}
	sum := h.Sum(nil)
	copy(a[:], sum[:SymSize])
	copy(b[:], sum[SymSize:])
	return
}

// hashH is H from FIPS 203 section 4.1: SHA3-256.
func hashH(in ...[]byte) (out [SymSize]byte) {
	h := sha3.New256()
	for _, v := range in {
		h.Write(v)
	}
	copy(out[:], h.Sum(nil))
	return
}

// hashJ is J from FIPS 203 section 4.1: SHAKE-256 truncated to 32 bytes,
// used for the implicit-rejection pseudorandom key.
func hashJ(in ...[]byte) (out [SymSize]byte) {
	h := sha3.NewShake256()
	for _, v := range in {
		h.Write(v)
	}
	h.Read(out[:])
	return
}

// prf is PRF_eta from FIPS 203 Algorithm 8: SHAKE-256(s‖b), squeezed to
// 64*eta bytes.
func prf(eta int, s []byte, b byte) []byte {
	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})

	out := make([]byte, 64*eta)
	h.Read(out)
	return out
}

// genMatrixEntry deterministically samples Â[i][j] (or its transpose, by
// swapping i and j at the call site) from the seed rho, rejection
// sampling pairs of 12-bit candidates out of 3-byte blocks of a SHAKE-128
// stream until 256 are accepted (FIPS 203 Algorithm 7, SampleNTT).
//
// rho is expected to be exactly SymSize bytes; i and j are XOF'd in as
// j then i, per FIPS 203's explicit column-then-row byte order for K-PKE
// matrix generation.
func genMatrixEntry(rho []byte, i, j byte) *poly {
	const shake128Rate = 168 // squeeze a multiple of 3 bytes per round.

	xof := sha3.NewShake128()
	xof.Write(rho)
	xof.Write([]byte{j, i})

	p := new(poly)

	var buf [shake128Rate]byte
	ctr := 0
	for ctr < kyberN {
		xof.Read(buf[:])

		for pos := 0; pos+3 <= len(buf) && ctr < kyberN; pos += 3 {
			d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
			d2 := uint16(buf[pos+1]>>4) | (uint16(buf[pos+2]) << 4)

			if d1 < kyberQ {
				p.coeffs[ctr] = d1
				ctr++
			}
			if ctr < kyberN && d2 < kyberQ {
				p.coeffs[ctr] = d2
				ctr++
			}
		}
	}

	return p
}
