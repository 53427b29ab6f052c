// codec_test.go - Byte codec and compression round-trip/bound tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestByteEncodeDecodeRoundTrip checks that for all d in {1, ..., 12} and
// all Polys with coefficients in [0, 2^d) (or < q for d=12),
// ByteDecode_d(ByteEncode_d(f)) = f.
func TestByteEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(4))

	for d := 1; d <= 12; d++ {
		limit := 1 << uint(d)
		if d == 12 {
			limit = kyberQ
		}

		var coeffs [kyberN]uint16
		for i := range coeffs {
			coeffs[i] = uint16(rng.Intn(limit))
		}

		encoded, err := byteEncode(d, &coeffs)
		require.NoError(err, "byteEncode(%d)", d)
		require.Len(encoded, 32*d, "byteEncode(%d): length", d)

		decoded := byteDecode(d, encoded)
		require.Equal(coeffs, decoded, "d=%d: round trip mismatch", d)
	}
}

// TestByteDecodeEncodeRoundTrip checks the other direction: for byte
// strings of length 32d, ByteEncode_d(ByteDecode_d(B)) = B, with mod-q
// reduction folded in for d=12 (so this is checked on bytes that already
// decode to canonical values).
func TestByteDecodeEncodeRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(5))

	for d := 1; d <= 12; d++ {
		buf := make([]byte, 32*d)
		rng.Read(buf)

		decoded := byteDecode(d, buf)
		reencoded, err := byteEncode(d, &decoded)
		require.NoError(err, "byteEncode(%d)", d)

		// Re-decoding must reproduce the same coefficients; for d<12 the
		// bytes themselves round-trip bit-for-bit since every d-bit
		// pattern is a valid coefficient. For d=12, re-decoding the
		// re-encoded form must agree (the canonicalizing mod-q step is
		// already idempotent on an already-canonical value).
		require.Equal(decoded, byteDecode(d, reencoded), "d=%d: decode(encode(decode(B))) mismatch", d)
		if d < 12 {
			require.Equal(buf, reencoded, "d=%d: encode(decode(B)) != B", d)
		}
	}
}

// TestByteEncodeRejectsOutOfRange checks that ErrInvalidCoefficient is
// returned for a coefficient that doesn't fit in d bits (d<12) or isn't
// canonical mod q (d=12).
func TestByteEncodeRejectsOutOfRange(t *testing.T) {
	require := require.New(t)

	var coeffs [kyberN]uint16
	coeffs[0] = 1 << 4 // out of range for d=4.
	_, err := byteEncode(4, &coeffs)
	require.Equal(ErrInvalidCoefficient, err)

	coeffs[0] = kyberQ // out of range for d=12.
	_, err = byteEncode(12, &coeffs)
	require.Equal(ErrInvalidCoefficient, err)
}

// TestCompressionBound checks that
// |Decompress_d(Compress_d(x)) - x| <= ceil(q/2^(d+1)) for all x in
// [0, q).
func TestCompressionBound(t *testing.T) {
	require := require.New(t)

	for _, d := range []int{1, 4, 5, 10, 11} {
		bound := (kyberQ + (1 << uint(d+1)) - 1) / (1 << uint(d+1))

		for x := 0; x < kyberQ; x++ {
			y := compress(d, uint16(x))
			back := int(decompress(d, y))

			diff := back - x
			if diff < 0 {
				diff = -diff
			}
			// Decompress_d(Compress_d(x)) wraps mod q at the boundary
			// (x near 0 can decompress to a value near q); the true
			// distance is the shorter way around the ring.
			if wrapped := kyberQ - diff; wrapped < diff {
				diff = wrapped
			}

			require.LessOrEqualf(diff, bound, "d=%d x=%d: |decompress(compress(x))-x|=%d exceeds bound %d", d, x, diff, bound)
		}
	}
}

// TestCompressionBoundEdgeValues checks the compression bound at the
// edges of the coefficient range: for x in {0, 1, q/2, q-1} and d=4, the
// round-trip distance lands in {-104, ..., 104}.
func TestCompressionBoundEdgeValues(t *testing.T) {
	require := require.New(t)

	for _, x := range []uint16{0, 1, kyberQ / 2, kyberQ - 1} {
		y := compress(4, x)
		back := decompress(4, y)

		diff := int(back) - int(x)
		if wrapped := diff - kyberQ; wrapped >= -104 && wrapped <= 104 {
			diff = wrapped
		} else if wrapped := diff + kyberQ; wrapped >= -104 && wrapped <= 104 {
			diff = wrapped
		}

		require.GreaterOrEqual(diff, -104, "x=%d", x)
		require.LessOrEqual(diff, 104, "x=%d", x)
	}
}
