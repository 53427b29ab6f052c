// doc.go - ML-KEM godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements ML-KEM, the Module-Lattice Key Encapsulation
// Mechanism standardized as NIST FIPS 203.
//
// ML-KEM is a post-quantum IND-CCA2-secure key encapsulation mechanism
// whose security rests on the hardness of Module-LWE over the ring
// R_q = Z_q[X]/(X^256+1), q = 3329. It composes a CPA-secure public-key
// encryption scheme (K-PKE) with a Fujisaki-Okamoto-style transform that
// adds implicit rejection: a malformed or tampered ciphertext of the
// correct length never causes decapsulation to fail visibly (only a
// wrong-length ciphertext is an error), it instead yields a deterministic
// pseudorandom shared secret indistinguishable from a valid one.
//
// Three parameter sets are exposed: MLKEM512, MLKEM768, and MLKEM1024,
// corresponding to increasing module rank (and therefore security
// margin). All three share the same algorithms; they differ only in the
// constants k, η₁, η₂, d_u, d_v fixed by the parameter profile.
//
// This package covers the cryptographic core only: keygen, encapsulation,
// and decapsulation, plus the arithmetic, sampling, and codec layers they
// are built from. It does not provide a command-line tool, a network
// protocol, or a persistent key storage format; callers are expected to
// serialize keys and ciphertexts themselves using the fixed-size byte
// encodings documented on each parameter set.
package mlkem
