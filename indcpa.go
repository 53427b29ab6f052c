// indcpa.go - K-PKE, the IND-CPA secure public-key encryption scheme
// underlying ML-KEM.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "io"

// genMatrix deterministically samples the k*k matrix Â (or its transpose)
// from the public seed rho, via genMatrixEntry/SampleNTT (FIPS 203
// Algorithms 13-14). Entries land directly in NTT form; the matrix is
// never converted to standard form.
func genMatrix(a []polyVec, rho []byte, transposed bool) {
	for i := range a {
		for j := range a[i].vec {
			if transposed {
				a[i].vec[j] = genMatrixEntry(rho, byte(j), byte(i))
			} else {
				a[i].vec[j] = genMatrixEntry(rho, byte(i), byte(j))
			}
		}
	}
}

// packCiphertext serializes the ciphertext as
// ByteEncode_du(Compress_du(u)) ‖ ByteEncode_dv(Compress_dv(v)).
func packCiphertext(r []byte, u *polyVec, v *poly, du, dv int) {
	u.compressTo(r, du)
	v.compressTo(r[u.compressedSize(du):], dv)
}

// unpackCiphertext is the approximate inverse of packCiphertext.
func unpackCiphertext(u *polyVec, v *poly, c []byte, du, dv int) {
	u.decompressFrom(c, du)
	v.decompressFrom(c[u.compressedSize(du):], dv)
}

type indcpaPublicKey struct {
	packed []byte
	h      [SymSize]byte
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = hashH(b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// indcpaKeyPair generates a K-PKE key pair from 32 bytes of randomness
// (FIPS 203 Algorithm 13).
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	var d [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}

	rho, sigma := hashG(d[:], []byte{byte(p.k)})

	a := make([]polyVec, p.k)
	for i := range a {
		a[i] = newPolyVec(p.k)
	}
	genMatrix(a, rho[:], false)

	var nonce byte
	s := newPolyVec(p.k)
	for _, pv := range s.vec {
		*pv = *samplePolyCBD(p.eta1, prf(p.eta1, sigma[:], nonce))
		nonce++
	}

	e := newPolyVec(p.k)
	for _, pv := range e.vec {
		*pv = *samplePolyCBD(p.eta1, prf(p.eta1, sigma[:], nonce))
		nonce++
	}

	s.ntt()
	e.ntt()

	tHat := newPolyVec(p.k)
	for i, pv := range tHat.vec {
		pv.pointwiseAcc(&a[i], &s)
	}
	tHat.add(&tHat, &e)

	sk := &indcpaSecretKey{packed: make([]byte, p.indcpaSecretKeySize)}
	s.toBytes(sk.packed)

	pk := &indcpaPublicKey{packed: make([]byte, p.indcpaPublicKeySize)}
	tHat.toBytes(pk.packed[:p.k*polySize])
	copy(pk.packed[p.k*polySize:], rho[:])
	pk.h = hashH(pk.packed)

	return pk, sk, nil
}

// indcpaEncrypt encrypts a 32-byte message under the given K-PKE public
// key and 32 bytes of randomness (FIPS 203 Algorithm 14).
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var rho [SymSize]byte
	tHat := newPolyVec(p.k)
	off := p.k * polySize
	tHat.fromBytes(pk.packed[:off])
	copy(rho[:], pk.packed[off:off+SymSize])

	at := make([]polyVec, p.k)
	for i := range at {
		at[i] = newPolyVec(p.k)
	}
	genMatrix(at, rho[:], true)

	var nonce byte
	r := newPolyVec(p.k)
	for _, pv := range r.vec {
		*pv = *samplePolyCBD(p.eta1, prf(p.eta1, coins, nonce))
		nonce++
	}

	e1 := newPolyVec(p.k)
	for _, pv := range e1.vec {
		*pv = *samplePolyCBD(p.eta2, prf(p.eta2, coins, nonce))
		nonce++
	}

	e2 := samplePolyCBD(p.eta2, prf(p.eta2, coins, nonce))

	r.ntt()

	u := newPolyVec(p.k)
	for i, pv := range u.vec {
		pv.pointwiseAcc(&at[i], &r)
	}
	u.invntt()
	u.add(&u, &e1)

	v := new(poly)
	v.pointwiseAcc(&tHat, &r)
	v.invntt()

	mu := new(poly)
	mu.fromMsg(m)
	v.add(v, e2)
	v.add(v, mu)

	packCiphertext(c, &u, v, p.du, p.dv)
}

// indcpaDecrypt recovers the 32-byte message encrypted in c under the
// given K-PKE secret key (FIPS 203 Algorithm 15).
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	u := newPolyVec(p.k)
	v := new(poly)
	unpackCiphertext(&u, v, c, p.du, p.dv)

	sHat := newPolyVec(p.k)
	sHat.fromBytes(sk.packed)

	u.ntt()

	mp := new(poly)
	mp.pointwiseAcc(&sHat, &u)
	mp.invntt()

	w := new(poly)
	w.sub(v, mp)

	w.toMsg(m)
}
