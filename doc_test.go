// doc_test.go - ML-KEM godoc examples.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/rand"
)

func Example_keyEncapsulationMechanism() {
	// Alice, step 1: Generate a key pair.
	alicePublicKey, alicePrivateKey, err := MLKEM768.GenerateKeyPair(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Alice, step 2: Send the encapsulation key to Bob (Not shown).

	// Bob, step 1: Deserialize Alice's encapsulation key from its binary
	// encoding, applying FIPS 203's type and modulus checks.
	peerPublicKey, err := MLKEM768.PublicKeyFromBytes(alicePublicKey.Bytes())
	if err != nil {
		panic(err)
	}

	// Bob, step 2: Generate the ciphertext and shared secret.
	cipherText, bobSharedSecret, err := peerPublicKey.Encapsulate(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Bob, step 3: Send the ciphertext to Alice (Not shown).

	// Alice, step 3: Decapsulate the ciphertext. A malformed or corrupted
	// cipherText never surfaces as an error here; Decapsulate only
	// fails this way if the ciphertext is the wrong length.
	aliceSharedSecret, err := alicePrivateKey.Decapsulate(cipherText)
	if err != nil {
		panic(err)
	}

	// Alice and Bob now hold identical shared secrets.
	if !bytes.Equal(aliceSharedSecret, bobSharedSecret) {
		panic("shared secrets mismatch")
	}
}
