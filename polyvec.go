// polyvec.go - Vector of ML-KEM polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// polyVec is a length-k vector of polynomials, i.e. an element of
// R_q^k, the module that underlies the "M" in "ML-KEM".
type polyVec struct {
	vec []*poly
}

// newPolyVec allocates a zeroed vector of k polynomials.
func newPolyVec(k int) polyVec {
	vec := make([]*poly, k)
	for i := range vec {
		vec[i] = new(poly)
	}
	return polyVec{vec}
}

// toBytes serializes v via ByteEncode_12 applied to each component in
// turn.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polySize:])
	}
}

// fromBytes is the inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polySize:])
	}
}

// compressTo serializes Compress_d(v) via compressTo applied to each
// component. d must be the parameter set's d_u.
func (v *polyVec) compressTo(r []byte, d int) {
	step := 32 * d
	for i, p := range v.vec {
		p.compressTo(r[i*step:], d)
	}
}

// decompressFrom is the approximate inverse of compressTo.
func (v *polyVec) decompressFrom(a []byte, d int) {
	step := 32 * d
	for i, p := range v.vec {
		p.decompressFrom(a[i*step:], d)
	}
}

// compressedSize returns the length in bytes of Compress_d(v)'s
// serialization.
func (v *polyVec) compressedSize(d int) int {
	return len(v.vec) * 32 * d
}

// ntt applies the forward NTT to every component of v in place.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every component of v in place.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// add sets v to a+b, component-wise.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// pointwiseAcc sets p to the NTT-domain inner product of a and b, the
// building block of K-PKE's matrix-vector and vector-vector products
// (FIPS 203 Algorithm 11, MultiplyNTTs, accumulated over a vector since
// R_q does not fully split at q=3329).
func (p *poly) pointwiseAcc(a, b *polyVec) {
	pointwiseMulAccFn(p, a, b)
}
