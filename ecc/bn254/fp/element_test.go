package fp

import (
	"math/big"
	"testing"

	gcfp "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestElementVectors(t *testing.T) {
	var a, b, c, expected Element
	a.SetString("4039346969039275674716523023361802590813143187393312939505358238152932817309")
	b.SetString("17093590389130402819435543406366317951577633237141877878623641074713865314473")

	c.Add(&a, &b)
	expected.SetString("21132937358169678494152066429728120542390776424535190818128999312866798131782")
	if !c.Equal(&expected) {
		t.Error("addition mismatch")
	}

	c.Mul(&a, &b)
	expected.SetString("21673026688492417409289663137882985982674163823716050704701986752000989991475")
	if !c.Equal(&expected) {
		t.Error("multiplication mismatch")
	}

	c.Inverse(&a)
	expected.SetString("15784668978731979678450205955305509598885586348106846871026184613628939023347")
	if !c.Equal(&expected) {
		t.Error("inverse mismatch")
	}

	var e big.Int
	b.BigInt(&e)
	c.Exp(a, &e)
	expected.SetString("15778255400401338919150446979495309212354280320161222089499753960164145064083")
	if !c.Equal(&expected) {
		t.Error("exponentiation mismatch")
	}
}

func TestSqrt(t *testing.T) {
	assert := require.New(t)

	var a, sq Element
	a.SetString("4039346969039275674716523023361802590813143187393312939505358238152932817309")

	// a is a non-residue, a^2 of course is not
	assert.Equal(-1, a.Legendre())
	sq.Square(&a)
	assert.Equal(1, sq.Legendre())

	var root Element
	assert.NotNil(root.Sqrt(&sq))
	var rootSq Element
	rootSq.Square(&root)
	assert.True(rootSq.Equal(&sq), "sqrt root does not square back")

	assert.Nil(root.Sqrt(&a), "sqrt of a non-residue should fail")
}

func TestElementProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a Element) bool {
			var na, zero Element
			na.Neg(&a)
			na.AddAssign(&a)
			return na.Equal(&zero)
		},
		genElement(),
	))

	properties.Property("a * a^-1 == 1 for a != 0", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			var inv, one Element
			one.SetOne()
			inv.Inverse(&a)
			inv.MulAssign(&a)
			return inv.Equal(&one)
		},
		genElement(),
	))

	properties.Property("(a + b) * c == a*c + b*c", prop.ForAll(
		func(a, b, c Element) bool {
			var lhs, rhs, t Element
			lhs.Add(&a, &b).MulAssign(&c)
			rhs.Mul(&a, &c)
			t.Mul(&b, &c)
			rhs.AddAssign(&t)
			return lhs.Equal(&rhs)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("halve(double(a)) == a", prop.ForAll(
		func(a Element) bool {
			var d Element
			d.Double(&a)
			d.Halve()
			return d.Equal(&a)
		},
		genElement(),
	))

	properties.Property("bytes roundtrip", prop.ForAll(
		func(a Element) bool {
			buf := a.Bytes()
			var b Element
			if err := b.SetBytesCanonical(buf[:]); err != nil {
				return false
			}
			return b.Equal(&a)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// addition and multiplication must agree with gnark-crypto on random operands
func TestElementDifferential(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("a * b matches gnark-crypto", prop.ForAll(
		func(a, b Element) bool {
			var c Element
			c.Mul(&a, &b)

			var ga, gb big.Int
			a.BigInt(&ga)
			b.BigInt(&gb)
			var ra, rb gcfp.Element
			ra.SetBigInt(&ga)
			rb.SetBigInt(&gb)
			ra.Mul(&ra, &rb)

			var got, want big.Int
			c.BigInt(&got)
			ra.BigInt(&want)
			return got.Cmp(&want) == 0
		},
		genElement(), genElement(),
	))

	properties.Property("a^-1 matches gnark-crypto", prop.ForAll(
		func(a Element) bool {
			var c Element
			c.Inverse(&a)

			var ga big.Int
			a.BigInt(&ga)
			var ra gcfp.Element
			ra.SetBigInt(&ga)
			ra.Inverse(&ra)

			var got, want big.Int
			c.BigInt(&got)
			ra.BigInt(&want)
			return got.Cmp(&want) == 0
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSetBytesCanonical(t *testing.T) {
	assert := require.New(t)

	var a Element
	assert.Error(a.SetBytesCanonical(make([]byte, 31)))

	// the modulus itself is not a canonical encoding
	buf := Modulus().Bytes()
	padded := make([]byte, Bytes)
	copy(padded[Bytes-len(buf):], buf)
	assert.ErrorIs(a.SetBytesCanonical(padded), ErrInvalidEncoding)
}

func TestBatchInvert(t *testing.T) {
	assert := require.New(t)

	a := make([]Element, 10)
	for i := range a {
		if i == 3 {
			continue // leave a zero in the middle
		}
		_, err := a[i].SetRandom()
		assert.NoError(err)
	}

	inverted := BatchInvert(a)
	var check, one Element
	one.SetOne()
	for i := range a {
		if i == 3 {
			assert.True(inverted[i].IsZero())
			continue
		}
		check.Mul(&a[i], &inverted[i])
		assert.True(check.Equal(&one))
	}
}

func genElement() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var a Element
		if _, err := a.SetRandom(); err != nil {
			panic(err)
		}
		return gopter.NewGenResult(a, gopter.NoShrinker)
	}
}

//--------------------//
//     benches		  //
//--------------------//

var benchResElement Element

func BenchmarkElementMul(b *testing.B) {
	var x, y Element
	x.SetRandom()
	y.SetRandom()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResElement.Mul(&x, &y)
	}
}

func BenchmarkElementInverse(b *testing.B) {
	var x Element
	x.SetRandom()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResElement.Inverse(&x)
	}
}
