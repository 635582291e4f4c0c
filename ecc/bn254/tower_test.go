package bn254

import (
	"math/big"
	"testing"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

var _ = BN254()

func genE2() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var a e2
		if _, err := a.A0.SetRandom(); err != nil {
			panic(err)
		}
		if _, err := a.A1.SetRandom(); err != nil {
			panic(err)
		}
		return gopter.NewGenResult(a, gopter.NoShrinker)
	}
}

func genE6() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var a e6
		for _, c := range []*e2{&a.B0, &a.B1, &a.B2} {
			c.A0.SetRandom()
			c.A1.SetRandom()
		}
		return gopter.NewGenResult(a, gopter.NoShrinker)
	}
}

func genE12() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var a E12
		for _, c := range []*e2{&a.C0.B0, &a.C0.B1, &a.C0.B2, &a.C1.B0, &a.C1.B1, &a.C1.B2} {
			c.A0.SetRandom()
			c.A1.SetRandom()
		}
		return gopter.NewGenResult(a, gopter.NoShrinker)
	}
}

func TestE2Ops(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("x * x^-1 == 1", prop.ForAll(
		func(x e2) bool {
			if x.IsZero() {
				return true
			}
			var inv, one e2
			one.SetOne()
			inv.Inverse(&x)
			inv.MulAssign(&x)
			return inv.Equal(&one)
		},
		genE2(),
	))

	properties.Property("square == mul self", prop.ForAll(
		func(x e2) bool {
			var s, m e2
			s.Square(&x)
			m.Mul(&x, &x)
			return s.Equal(&m)
		},
		genE2(),
	))

	properties.Property("mul by non residue == mul by 9+i", prop.ForAll(
		func(x e2) bool {
			var xi, a, b e2
			xi.A0.SetUint64(9)
			xi.A1.SetOne()
			a.MulByNonResidue(&x)
			b.Mul(&x, &xi)
			return a.Equal(&b)
		},
		genE2(),
	))

	properties.Property("x * conj(x) has no imaginary part", prop.ForAll(
		func(x e2) bool {
			var c, n e2
			c.Conjugate(&x)
			n.Mul(&x, &c)
			return n.A1.IsZero()
		},
		genE2(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestE6Ops(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("x * x^-1 == 1", prop.ForAll(
		func(x e6) bool {
			if x.IsZero() {
				return true
			}
			var inv, one e6
			one.SetOne()
			inv.Inverse(&x)
			inv.MulAssign(&x)
			return inv.Equal(&one)
		},
		genE6(),
	))

	properties.Property("mul by non residue == mul by v", prop.ForAll(
		func(x e6) bool {
			var v, a, b e6
			v.B1.SetOne()
			a.MulByNonResidue(&x)
			b.Mul(&x, &v)
			return a.Equal(&b)
		},
		genE6(),
	))

	properties.Property("sparse 01 mul == full mul", prop.ForAll(
		func(x e6, c0, c1 e2) bool {
			var full, sparse, y e6
			y.B0.Set(&c0)
			y.B1.Set(&c1)
			full.Mul(&x, &y)
			sparse.MulBy01(&x, &c0, &c1)
			return full.Equal(&sparse)
		},
		genE6(), genE2(), genE2(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestE12Ops(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("x * x^-1 == 1", prop.ForAll(
		func(x E12) bool {
			if x.IsZero() {
				return true
			}
			var inv, one E12
			one.SetOne()
			inv.Inverse(&x)
			inv.MulAssign(&x)
			return inv.Equal(&one)
		},
		genE12(),
	))

	properties.Property("sparse 034 mul == full mul", prop.ForAll(
		func(x E12, c0, c3, c4 e2) bool {
			var full, sparse, y E12
			y.C0.B0.Set(&c0)
			y.C1.B0.Set(&c3)
			y.C1.B1.Set(&c4)
			full.Mul(&x, &y)
			sparse.Set(&x)
			sparse.MulBy034(&c0, &c3, &c4)
			return full.Equal(&sparse)
		},
		genE12(), genE2(), genE2(), genE2(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestE12Frobenius(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10

	properties := gopter.NewProperties(parameters)

	q := fp.Modulus()
	q2 := new(big.Int).Mul(q, q)
	q3 := new(big.Int).Mul(q2, q)

	properties.Property("frobenius == x^q", prop.ForAll(
		func(x E12) bool {
			var f, e E12
			f.Frobenius(&x)
			e.Exp(&x, q)
			return f.Equal(&e)
		},
		genE12(),
	))

	properties.Property("frobenius square == x^(q^2)", prop.ForAll(
		func(x E12) bool {
			var f, e E12
			f.FrobeniusSquare(&x)
			e.Exp(&x, q2)
			return f.Equal(&e)
		},
		genE12(),
	))

	properties.Property("frobenius cube == x^(q^3)", prop.ForAll(
		func(x E12) bool {
			var f, e E12
			f.FrobeniusCube(&x)
			e.Exp(&x, q3)
			return f.Equal(&e)
		},
		genE12(),
	))

	properties.Property("expt == x^t in the cyclotomic subgroup", prop.ForAll(
		func(x E12) bool {
			c := toCyclotomic(&x)
			var f, e E12
			f.Expt(&c)
			e.Exp(&c, new(big.Int).SetUint64(tAbsVal))
			return f.Equal(&e)
		},
		genE12(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// toCyclotomic maps x into the cyclotomic subgroup through the easy part of
// the final exponentiation, x^((q^6-1)(q^2+1))
func toCyclotomic(x *E12) E12 {
	var c, inv, f E12
	c.Conjugate(x)
	inv.Inverse(x)
	c.MulAssign(&inv)
	f.FrobeniusSquare(&c)
	c.MulAssign(&f)
	return c
}

func TestE12CyclotomicSquare(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("cyclotomic square == plain square in the subgroup", prop.ForAll(
		func(x E12) bool {
			c := toCyclotomic(&x)
			var cs, s E12
			cs.CyclotomicSquare(&c)
			s.Square(&c)
			return cs.Equal(&s)
		},
		genE12(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

var benchResE12 E12

func BenchmarkE12Mul(b *testing.B) {
	var x E12
	for _, c := range []*e2{&x.C0.B0, &x.C0.B1, &x.C0.B2, &x.C1.B0, &x.C1.B1, &x.C1.B2} {
		c.A0.SetRandom()
		c.A1.SetRandom()
	}
	y := x
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResE12.Mul(&x, &y)
	}
}
