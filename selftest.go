// selftest.go - Power-on self-test.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"fmt"
	"io"
)

// SelfTest exercises GenerateKeyPair, Encapsulate, and Decapsulate for
// every standard ParameterSet, using rng as the sole source of
// randomness, and returns an error if any round trip fails to agree on
// a shared secret. It is intended for use at process startup, in the
// style of a FIPS 140 power-on self-test, not as a substitute for the
// package's regular test suite.
func SelfTest(rng io.Reader) error {
	for _, p := range []*ParameterSet{MLKEM512, MLKEM768, MLKEM1024} {
		pk, sk, err := p.GenerateKeyPair(rng)
		if err != nil {
			return fmt.Errorf("mlkem: %s: GenerateKeyPair: %w", p.Name(), err)
		}

		ct, ss, err := pk.Encapsulate(rng)
		if err != nil {
			return fmt.Errorf("mlkem: %s: Encapsulate: %w", p.Name(), err)
		}

		ss2, err := sk.Decapsulate(ct)
		if err != nil {
			return fmt.Errorf("mlkem: %s: Decapsulate: %w", p.Name(), err)
		}

		if !bytes.Equal(ss, ss2) {
			return fmt.Errorf("mlkem: %s: shared secret mismatch", p.Name())
		}
	}

	return nil
}
