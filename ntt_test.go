// ntt_test.go - NTT/base-case-multiply round-trip and consistency tests.
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

func randomPoly(rng *rand.Rand) *poly {
	p := new(poly)
	for i := range p.coeffs {
		p.coeffs[i] = uint16(rng.Intn(kyberQ))
	}
	return p
}

// TestNTTRoundTrip checks that for all Poly f, INTT(NTT(f)) = f.
func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < nTests; i++ {
		f := randomPoly(rng)
		got := *f

		got.ntt()
		got.invntt()

		require.Equal(f.coeffs, got.coeffs, "INTT(NTT(f)) != f")
	}
}

// TestBaseCaseMultiplyMatchesSchoolbook checks that pointwiseAcc, applied
// to two length-1 polyVecs in NTT form, agrees with ordinary negacyclic
// polynomial multiplication carried out in standard form.
func TestBaseCaseMultiplyMatchesSchoolbook(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(2))

	schoolbookMul := func(a, b *poly) *poly {
		var wide [2*kyberN - 1]uint32
		for i, ac := range a.coeffs {
			for j, bc := range b.coeffs {
				wide[i+j] += uint32(ac) * uint32(bc)
			}
		}

		out := new(poly)
		for i := 0; i < kyberN; i++ {
			out.coeffs[i] = uint16(wide[i] % kyberQ)
		}
		for i := kyberN; i < len(wide); i++ {
			// X^256 == -1, so fold the upper half back in negated.
			out.coeffs[i-kyberN] = subMod(out.coeffs[i-kyberN], uint16(wide[i]%kyberQ))
		}
		return out
	}

	for i := 0; i < nTests; i++ {
		a := randomPoly(rng)
		b := randomPoly(rng)

		want := schoolbookMul(a, b)

		aHat, bHat := *a, *b
		aHat.ntt()
		bHat.ntt()

		av := polyVec{vec: []*poly{&aHat}}
		bv := polyVec{vec: []*poly{&bHat}}

		got := new(poly)
		got.pointwiseAcc(&av, &bv)
		got.invntt()

		require.Equal(want.coeffs, got.coeffs, "BaseCaseMultiply result disagrees with schoolbook multiplication")
	}
}
