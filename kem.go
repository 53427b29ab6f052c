// kem.go - ML-KEM key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/subtle"
	"io"
)

// PrivateKey is an ML-KEM decapsulation key dk, the concatenation of the
// underlying K-PKE secret key, the encapsulation key it was generated
// alongside, a hash of that encapsulation key, and the implicit
// rejection seed z (FIPS 203 Algorithm 16, ML-KEM.KeyGen).
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Zeroize overwrites the secret material held by sk (the K-PKE secret
// key and the implicit rejection seed z) with zero bytes. sk must not be
// used afterwards.
func (sk *PrivateKey) Zeroize() {
	zeroize(sk.sk.packed)
	zeroize(sk.z)
}

// Bytes returns the byte serialization of a PrivateKey.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.decapsulationKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey,
// checking that the embedded encapsulation key hash matches (FIPS 203's
// decapsulation key input check).
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.decapsulationKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.indcpaPublicKeySize]); err != nil {
		return nil, err
	}
	off += p.indcpaPublicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidKey
	}
	off += SymSize
	copy(sk.z, b[off:])

	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// PublicKey is an ML-KEM encapsulation key ek.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.packed
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey, applying
// the modulus check required by FIPS 203's encapsulation key input
// check: re-encoding the decoded t̂ must reproduce the input bytes
// exactly.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.indcpaPublicKeySize {
		return nil, ErrInvalidKeySize
	}

	tHat := newPolyVec(p.k)
	tHat.fromBytes(b[:p.k*polySize])

	check := make([]byte, p.k*polySize)
	tHat.toBytes(check)
	if !bytes.Equal(check, b[:p.k*polySize]) {
		return nil, ErrInvalidKey
	}

	pk := &PublicKey{pk: new(indcpaPublicKey), p: p}
	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// GenerateKeyPair generates an ML-KEM key pair parameterized with the
// given ParameterSet (FIPS 203 Algorithm 16, ML-KEM.KeyGen).
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng); err != nil {
		return nil, nil, err
	}

	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a ciphertext and shared secret under pk via the
// CCA-secure ML-KEM key encapsulation mechanism (FIPS 203 Algorithm 17,
// ML-KEM.Encaps).
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText []byte, sharedSecret []byte, err error) {
	var m [SymSize]byte
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}

	hEk := hashH(pk.pk.packed)
	k, coins := hashG(m[:], hEk[:])

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, m[:], pk.pk, coins[:])

	sharedSecret = make([]byte, SymSize)
	copy(sharedSecret, k[:])

	return
}

// Decapsulate recovers the shared secret associated with cipherText
// under sk via the CCA-secure ML-KEM key encapsulation mechanism
// (FIPS 203 Algorithm 19, ML-KEM.Decaps), using implicit rejection: on
// re-encryption mismatch, sharedSecret is a pseudorandom value derived
// from the decapsulation key's seed rather than an error, so that
// Decapsulate never leaks which branch was taken through its control
// flow or return value.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte, err error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}

	var mPrime [SymSize]byte
	p.indcpaDecrypt(mPrime[:], cipherText, sk.sk)

	k, coins := hashG(mPrime[:], sk.PublicKey.pk.h[:])
	kBar := hashJ(sk.z, cipherText)

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, mPrime[:], sk.PublicKey.pk, coins[:])

	fail := subtle.ConstantTimeSelect(subtle.ConstantTimeCompare(cipherText, cmp), 0, 1)
	subtle.ConstantTimeCopy(fail, k[:], kBar[:])

	sharedSecret = make([]byte, SymSize)
	copy(sharedSecret, k[:])

	return sharedSecret, nil
}
