// poly.go - ML-KEM polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// poly is an element of R_q = Z_q[X]/(X^n+1), represented as its 256
// coefficients coeffs[0] + X*coeffs[1] + ... + X^255*coeffs[255].
//
// A poly is either in "standard form" or "NTT form"; which form a given
// value is in is a contract of the function that produced it, not a bit
// stored on the struct. Functions that require one form or the other
// document it; ntt()/invntt() are the only conversions between them.
// Coefficients held at rest are always canonical, i.e. in [0, q).
type poly struct {
	coeffs [kyberN]uint16
}

// add sets p to a+b, for a, b either both in standard form or both in
// NTT form.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = addMod(a.coeffs[i], b.coeffs[i])
	}
}

// sub sets p to a-b, for a, b either both in standard form or both in
// NTT form.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = subMod(a.coeffs[i], b.coeffs[i])
	}
}

// ntt maps p from standard form to NTT form in place (FIPS 203
// Algorithm 9).
func (p *poly) ntt() {
	nttFn(&p.coeffs)
}

// invntt maps p from NTT form back to standard form in place (FIPS 203
// Algorithm 10).
func (p *poly) invntt() {
	invnttFn(&p.coeffs)
}

// toBytes serializes p (in either form, with canonical coefficients)
// via ByteEncode_12. r must have length polySize.
func (p *poly) toBytes(r []byte) {
	b, err := byteEncode(12, &p.coeffs)
	if err != nil {
		// Coefficients are always canonicalized on the way in; a
		// canonical poly can never fail ByteEncode_12.
		panic(err)
	}
	copy(r, b)
}

// fromBytes deserializes p via ByteDecode_12, reducing each coefficient
// mod q as ByteDecode_12 requires.
func (p *poly) fromBytes(a []byte) {
	p.coeffs = byteDecode(12, a)
}

// fromMsg converts a 32-byte message into a polynomial via
// Decompress_1(ByteDecode_1(msg)): each bit becomes either 0 or
// round(q/2).
func (p *poly) fromMsg(msg []byte) {
	half := decompress(1, 1)
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			bit := (v >> uint(j)) & 1
			mask := -uint16(bit) // all-ones iff bit is set.
			p.coeffs[8*i+j] = mask & half
		}
	}
}

// toMsg converts p back to a 32-byte message via
// ByteEncode_1(Compress_1(p)).
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			bit := compress(1, p.coeffs[8*i+j])
			msg[i] |= byte(bit) << uint(j)
		}
	}
}

// compressTo writes Compress_d(p) to r via ByteEncode_d. d must be the
// parameter set's d_u or d_v.
func (p *poly) compressTo(r []byte, d int) {
	var compressed [kyberN]uint16
	for i, c := range p.coeffs {
		compressed[i] = compress(d, c)
	}

	b, err := byteEncode(d, &compressed)
	if err != nil {
		panic(err) // compress(d, ·) always yields a d-bit value.
	}
	copy(r, b)
}

// decompressFrom is the approximate inverse of compressTo: it sets p to
// Decompress_d(ByteDecode_d(a)).
func (p *poly) decompressFrom(a []byte, d int) {
	packed := byteDecode(d, a)
	for i, c := range packed {
		p.coeffs[i] = decompress(d, c)
	}
}
