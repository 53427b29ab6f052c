// errors.go - Sentinel errors.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "errors"

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key
	// is the wrong length for the ParameterSet it is being deserialized
	// with.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte
	// serialized ciphertext is the wrong length for the ParameterSet it
	// is being decapsulated with.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrInvalidKey is the error returned when a byte serialized
	// encapsulation key fails its modulus check, or a byte serialized
	// decapsulation key fails its encapsulation key hash check (FIPS
	// 203's encapsulation key modulus check and decapsulation key hash
	// check).
	ErrInvalidKey = errors.New("mlkem: invalid key")

	// ErrInvalidCoefficient is returned by byteEncode when asked to pack
	// a coefficient that does not fit in the requested bit width. This
	// signals a caller bug, not a condition reachable from untrusted
	// input.
	ErrInvalidCoefficient = errors.New("mlkem: coefficient out of range")
)
