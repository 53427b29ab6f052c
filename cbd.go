// cbd.go - Centered binomial distribution sampling.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// loadLittleEndian loads the given number of bytes of x into a 32-bit
// integer in little-endian order.
func loadLittleEndian(x []byte, n int) uint32 {
	var r uint32
	for i, v := range x[:n] {
		r |= uint32(v) << uint(8*i)
	}
	return r
}

// samplePolyCBD samples a polynomial in standard form with coefficients
// distributed according to the centered binomial distribution with
// parameter eta, given 64*eta bytes of uniformly random input (FIPS 203
// Algorithm 8). Coefficients are stored as canonical representatives in
// [0, q), per the at-rest invariant on Poly.
func samplePolyCBD(eta int, buf []byte) *poly {
	p := new(poly)
	cbdFn(p, buf, eta)
	return p
}

func cbdRef(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		var a, b [4]uint32
		for i := 0; i < kyberN/4; i++ {
			t := loadLittleEndian(buf[2*i:], 2)

			d := t & 0x5555
			d += (t >> 1) & 0x5555

			a[0] = d & 0x3
			b[0] = (d >> 2) & 0x3
			a[1] = (d >> 4) & 0x3
			b[1] = (d >> 6) & 0x3
			a[2] = (d >> 8) & 0x3
			b[2] = (d >> 10) & 0x3
			a[3] = (d >> 12) & 0x3
			b[3] = (d >> 14) & 0x3

			for j := 0; j < 4; j++ {
				p.coeffs[4*i+j] = subMod(uint16(a[j]), uint16(b[j]))
			}
		}
	case 3:
		var a, b [4]uint32
		for i := 0; i < kyberN/4; i++ {
			t := loadLittleEndian(buf[3*i:], 3)

			var d uint32
			for j := 0; j < 3; j++ {
				d += (t >> uint(j)) & 0x249249
			}

			a[0] = d & 0x7
			b[0] = (d >> 3) & 0x7
			a[1] = (d >> 6) & 0x7
			b[1] = (d >> 9) & 0x7
			a[2] = (d >> 12) & 0x7
			b[2] = (d >> 15) & 0x7
			a[3] = (d >> 18) & 0x7
			b[3] = (d >> 21) & 0x7

			for j := 0; j < 4; j++ {
				p.coeffs[4*i+j] = subMod(uint16(a[j]), uint16(b[j]))
			}
		}
	default:
		panic("mlkem: eta must be in {2,3}")
	}
}
