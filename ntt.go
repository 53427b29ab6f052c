// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Computes the negacyclic number-theoretic transform of a polynomial (an
// array of 256 coefficients) in place, mapping it from standard form to
// NTT form (FIPS 203 Algorithm 9). Since q=3329 only has a primitive
// 256th (not 512th) root of unity, the transform stops one level short of
// a full radix split: R_q factors into 128 irreducible quadratics rather
// than 256 linear factors, so NTT-form elements are multiplied pairwise
// via BaseCaseMultiply, not by a plain scalar product.
func nttRef(p *[kyberN]uint16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k++

			for j := start; j < start+length; j++ {
				t := mulMod(zeta, p[j+length])
				p[j+length] = subMod(p[j], t)
				p[j] = addMod(p[j], t)
			}
		}
	}
}

// Computes the inverse of the negacyclic number-theoretic transform of a
// polynomial in place, mapping it from NTT form back to standard form
// (FIPS 203 Algorithm 10).
func invnttRef(p *[kyberN]uint16) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k--

			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = addMod(t, p[j+length])
				p[j+length] = mulMod(zeta, subMod(p[j+length], t))
			}
		}
	}

	for j := range p {
		p[j] = mulMod(p[j], nInv)
	}
}

// baseCaseMultiply computes the product of a0+a1*X and b0+b1*X modulo
// X^2-gamma in Z_q[X], per FIPS 203 Algorithm 12.
func baseCaseMultiply(a0, a1, b0, b1, gamma uint16) (c0, c1 uint16) {
	c0 = addMod(mulMod(a0, b0), mulMod(mulMod(a1, b1), gamma))
	c1 = addMod(mulMod(a0, b1), mulMod(a1, b0))
	return
}

// pointwiseMulAccRef computes the NTT-domain inner product of polynomial
// vectors a and b, accumulating the 128 base-case products into p
// (FIPS 203 Algorithm 11, extended to accumulate over a vector).
func pointwiseMulAccRef(p *poly, a, b *polyVec) {
	for j := 0; j < 128; j++ {
		gamma := gammas[j]

		var acc0, acc1 uint16
		for i := 0; i < len(a.vec); i++ {
			c0, c1 := baseCaseMultiply(
				a.vec[i].coeffs[2*j], a.vec[i].coeffs[2*j+1],
				b.vec[i].coeffs[2*j], b.vec[i].coeffs[2*j+1],
				gamma,
			)
			acc0 = addMod(acc0, c0)
			acc1 = addMod(acc1, c1)
		}

		p.coeffs[2*j] = acc0
		p.coeffs[2*j+1] = acc1
	}
}
