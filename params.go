// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymSize is the size of the shared secret (and the seeds, hashes,
	// and messages that feed into it) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// polySize is the size in bytes of a ByteEncode_12-serialized
	// polynomial.
	polySize = 384
)

var (
	// MLKEM512 is the ML-KEM-512 parameter set, which targets security
	// category 1 (roughly equivalent to AES-128).
	//
	// This parameter set has a 1632 byte decapsulation key, an 800 byte
	// encapsulation key, and a 768 byte ciphertext.
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// MLKEM768 is the ML-KEM-768 parameter set, which targets security
	// category 3 (roughly equivalent to AES-192).
	//
	// This parameter set has a 2400 byte decapsulation key, a 1184 byte
	// encapsulation key, and a 1088 byte ciphertext.
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// MLKEM1024 is the ML-KEM-1024 parameter set, which targets security
	// category 5 (roughly equivalent to AES-256).
	//
	// This parameter set has a 3168 byte decapsulation key, a 1568 byte
	// encapsulation key, and a 1568 byte ciphertext.
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is an ML-KEM parameter set: the tuple (k, η₁, η₂, d_u, d_v)
// that fixes the module rank and noise/compression widths for one of the
// three standard security levels.
type ParameterSet struct {
	name string

	k      int
	eta1   int
	eta2   int
	du, dv int

	indcpaPublicKeySize int
	indcpaSecretKeySize int
	cipherTextSize      int

	encapsulationKeySize int
	decapsulationKeySize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of a given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// EncapsulationKeySize returns the size in bytes of an ek, as produced by
// KeyGen and consumed by Encapsulate.
func (p *ParameterSet) EncapsulationKeySize() int {
	return p.encapsulationKeySize
}

// DecapsulationKeySize returns the size in bytes of a dk, as produced by
// KeyGen and consumed by Decapsulate.
func (p *ParameterSet) DecapsulationKeySize() int {
	return p.decapsulationKeySize
}

// CipherTextSize returns the size in bytes of a ciphertext, as produced by
// Encapsulate and consumed by Decapsulate.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.indcpaPublicKeySize = k*polySize + SymSize
	p.indcpaSecretKeySize = k * polySize
	p.cipherTextSize = 32 * (du*k + dv)

	p.encapsulationKeySize = p.indcpaPublicKeySize
	p.decapsulationKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize

	return &p
}
