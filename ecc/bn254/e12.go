package bn254

import (
	"math/big"
	"math/bits"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fp"
)

// E12 is a degree-2 extension of e6, with w^2 = v.
// It hosts the pairing target group GT.
type E12 struct {
	C0, C1 e6
}

// tAbsVal is the absolute value of the BN parameter t (also called x or u)
const tAbsVal uint64 = 4965661367192848881

// Frobenius coefficients gamma_k[j] = (9+i)^(j*(p^k-1)/6), set by initBN254.
// gamma2 coefficients lie in fp.
var (
	frobGamma1 [6]e2
	frobGamma2 [6]fp.Element
	frobGamma3 [6]e2
)

// Set sets z to x and returns z
func (z *E12) Set(x *E12) *E12 {
	*z = *x
	return z
}

// SetZero sets z to 0 and returns z
func (z *E12) SetZero() *E12 {
	z.C0.SetZero()
	z.C1.SetZero()
	return z
}

// SetOne sets z to 1 and returns z
func (z *E12) SetOne() *E12 {
	z.C0.SetOne()
	z.C1.SetZero()
	return z
}

// Equal returns true if z equals x
func (z *E12) Equal(x *E12) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// IsZero returns true if z is zero
func (z *E12) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero()
}

// IsOne returns true if z is the multiplicative identity
func (z *E12) IsOne() bool {
	var one E12
	one.SetOne()
	return z.Equal(&one)
}

// Mul sets z=x*y in E12 and returns z
func (z *E12) Mul(x, y *E12) *E12 {
	// Algorithm 20 from https://eprint.iacr.org/2010/354.pdf
	var t0, t1, xSum, ySum e6

	t0.Mul(&x.C0, &y.C0)
	t1.Mul(&x.C1, &y.C1)

	xSum.Add(&x.C0, &x.C1)
	ySum.Add(&y.C0, &y.C1)

	z.C1.Mul(&xSum, &ySum).
		Sub(&z.C1, &t0).
		Sub(&z.C1, &t1)
	z.C0.MulByNonResidue(&t1).
		Add(&z.C0, &t0)

	return z
}

// MulAssign sets z=z*x in E12 and returns z
func (z *E12) MulAssign(x *E12) *E12 {
	return z.Mul(z, x)
}

// Square sets z=x*x in E12 and returns z
func (z *E12) Square(x *E12) *E12 {
	return z.Mul(x, x)
}

// CyclotomicSquare squares x in the cyclotomic subgroup (Granger-Scott).
// x must satisfy x^(p^4-p^2+1) = 1, which holds after the easy part of the
// final exponentiation.
func (z *E12) CyclotomicSquare(x *E12) *E12 {
	// x = (x0,x1,x2,x3,x4,x5) over e2, with
	// x0=C0.B0, x1=C0.B1, x2=C0.B2, x3=C1.B0, x4=C1.B1, x5=C1.B2
	var t [9]e2

	t[0].Square(&x.C1.B1)
	t[1].Square(&x.C0.B0)
	t[6].Add(&x.C1.B1, &x.C0.B0).Square(&t[6]).SubAssign(&t[0]).SubAssign(&t[1]) // 2*x4*x0
	t[2].Square(&x.C0.B2)
	t[3].Square(&x.C1.B0)
	t[7].Add(&x.C0.B2, &x.C1.B0).Square(&t[7]).SubAssign(&t[2]).SubAssign(&t[3]) // 2*x2*x3
	t[4].Square(&x.C1.B2)
	t[5].Square(&x.C0.B1)
	t[8].Add(&x.C1.B2, &x.C0.B1).Square(&t[8]).SubAssign(&t[4]).SubAssign(&t[5]).MulByNonResidue(&t[8]) // 2*x5*x1*xi

	t[0].MulByNonResidue(&t[0]).AddAssign(&t[1]) // x4^2*xi + x0^2
	t[2].MulByNonResidue(&t[2]).AddAssign(&t[3]) // x2^2*xi + x3^2
	t[4].MulByNonResidue(&t[4]).AddAssign(&t[5]) // x5^2*xi + x1^2

	z.C0.B0.Sub(&t[0], &x.C0.B0).Double(&z.C0.B0).AddAssign(&t[0])
	z.C0.B1.Sub(&t[2], &x.C0.B1).Double(&z.C0.B1).AddAssign(&t[2])
	z.C0.B2.Sub(&t[4], &x.C0.B2).Double(&z.C0.B2).AddAssign(&t[4])

	z.C1.B0.Add(&t[8], &x.C1.B0).Double(&z.C1.B0).AddAssign(&t[8])
	z.C1.B1.Add(&t[6], &x.C1.B1).Double(&z.C1.B1).AddAssign(&t[6])
	z.C1.B2.Add(&t[7], &x.C1.B2).Double(&z.C1.B2).AddAssign(&t[7])

	return z
}

// Conjugate sets z to (x.C0, -x.C1) and returns z
func (z *E12) Conjugate(x *E12) *E12 {
	z.Set(x)
	z.C1.Neg(&z.C1)
	return z
}

// Inverse sets z to the inverse of x in E12 and returns z.
// If x is zero, z is set to zero.
func (z *E12) Inverse(x *E12) *E12 {
	// Algorithm 23 from https://eprint.iacr.org/2010/354.pdf
	var t0, t1, buf e6

	t0.Square(&x.C0)
	t1.Square(&x.C1)
	buf.MulByNonResidue(&t1)
	t0.Sub(&t0, &buf)
	t1.Inverse(&t0)
	z.C0.Mul(&x.C0, &t1)
	z.C1.Mul(&x.C1, &t1).Neg(&z.C1)

	return z
}

// MulBy034 sets z=z*(c0 + c3*w + c4*w^3), the sparse shape produced by
// Miller loop line evaluations, and returns z
func (z *E12) MulBy034(c0, c3, c4 *e2) *E12 {
	var t0, t1, t2 e6
	var s0 e2

	t0.MulByE2(&z.C0, c0)
	t1.MulBy01(&z.C1, c3, c4)

	s0.Add(c0, c3)
	t2.Add(&z.C0, &z.C1)
	t2.MulBy01(&t2, &s0, c4)

	z.C1.Sub(&t2, &t0).
		Sub(&z.C1, &t1)
	z.C0.MulByNonResidue(&t1).
		Add(&z.C0, &t0)

	return z
}

// Frobenius sets z to x^p and returns z
func (z *E12) Frobenius(x *E12) *E12 {
	var t E12

	t.C0.B0.Conjugate(&x.C0.B0)
	t.C0.B1.Conjugate(&x.C0.B1).MulAssign(&frobGamma1[2])
	t.C0.B2.Conjugate(&x.C0.B2).MulAssign(&frobGamma1[4])
	t.C1.B0.Conjugate(&x.C1.B0).MulAssign(&frobGamma1[1])
	t.C1.B1.Conjugate(&x.C1.B1).MulAssign(&frobGamma1[3])
	t.C1.B2.Conjugate(&x.C1.B2).MulAssign(&frobGamma1[5])

	return z.Set(&t)
}

// FrobeniusSquare sets z to x^(p^2) and returns z
func (z *E12) FrobeniusSquare(x *E12) *E12 {
	var t E12

	t.C0.B0.Set(&x.C0.B0)
	t.C0.B1.MulByElement(&x.C0.B1, &frobGamma2[2])
	t.C0.B2.MulByElement(&x.C0.B2, &frobGamma2[4])
	t.C1.B0.MulByElement(&x.C1.B0, &frobGamma2[1])
	t.C1.B1.MulByElement(&x.C1.B1, &frobGamma2[3])
	t.C1.B2.MulByElement(&x.C1.B2, &frobGamma2[5])

	return z.Set(&t)
}

// FrobeniusCube sets z to x^(p^3) and returns z
func (z *E12) FrobeniusCube(x *E12) *E12 {
	var t E12

	t.C0.B0.Conjugate(&x.C0.B0)
	t.C0.B1.Conjugate(&x.C0.B1).MulAssign(&frobGamma3[2])
	t.C0.B2.Conjugate(&x.C0.B2).MulAssign(&frobGamma3[4])
	t.C1.B0.Conjugate(&x.C1.B0).MulAssign(&frobGamma3[1])
	t.C1.B1.Conjugate(&x.C1.B1).MulAssign(&frobGamma3[3])
	t.C1.B2.Conjugate(&x.C1.B2).MulAssign(&frobGamma3[5])

	return z.Set(&t)
}

// Expt sets z to x^t where t is the BN parameter, and returns z.
// x must be in the cyclotomic subgroup.
func (z *E12) Expt(x *E12) *E12 {
	var res E12
	res.SetOne()
	for i := bits.Len64(tAbsVal) - 1; i >= 0; i-- {
		res.CyclotomicSquare(&res)
		if (tAbsVal>>uint(i))&1 == 1 {
			res.Mul(&res, x)
		}
	}
	return z.Set(&res)
}

// Exp sets z to x^e and returns z. The exponent is interpreted as an
// unsigned integer.
func (z *E12) Exp(x *E12, e *big.Int) *E12 {
	var res E12
	res.SetOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		res.Square(&res)
		if e.Bit(i) == 1 {
			res.Mul(&res, x)
		}
	}
	return z.Set(&res)
}

// String implements Stringer interface for debugging
func (z *E12) String() string {
	return "(" + z.C0.String() + ") + (" + z.C1.String() + ")*w"
}
