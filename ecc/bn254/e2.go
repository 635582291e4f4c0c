package bn254

import (
	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fp"
)

// e2 is a degree-2 extension of fp, with i^2 = -1
type e2 struct {
	A0, A1 fp.Element
}

// SetString sets an e2 element from decimal strings
func (z *e2) SetString(s0, s1 string) *e2 {
	z.A0.SetString(s0)
	z.A1.SetString(s1)
	return z
}

// Set sets z to x and returns z
func (z *e2) Set(x *e2) *e2 {
	*z = *x
	return z
}

// SetZero sets z to 0 and returns z
func (z *e2) SetZero() *e2 {
	z.A0.SetZero()
	z.A1.SetZero()
	return z
}

// SetOne sets z to 1 and returns z
func (z *e2) SetOne() *e2 {
	z.A0.SetOne()
	z.A1.SetZero()
	return z
}

// Equal returns true if z equals x
func (z *e2) Equal(x *e2) bool {
	return z.A0.Equal(&x.A0) && z.A1.Equal(&x.A1)
}

// IsZero returns true if z is zero
func (z *e2) IsZero() bool {
	return z.A0.IsZero() && z.A1.IsZero()
}

// IsOne returns true if z is one
func (z *e2) IsOne() bool {
	return z.A0.IsOne() && z.A1.IsZero()
}

// Add sets z=x+y in e2 and returns z
func (z *e2) Add(x, y *e2) *e2 {
	z.A0.Add(&x.A0, &y.A0)
	z.A1.Add(&x.A1, &y.A1)
	return z
}

// AddAssign sets z=z+x in e2 and returns z
func (z *e2) AddAssign(x *e2) *e2 {
	return z.Add(z, x)
}

// Sub sets z=x-y in e2 and returns z
func (z *e2) Sub(x, y *e2) *e2 {
	z.A0.Sub(&x.A0, &y.A0)
	z.A1.Sub(&x.A1, &y.A1)
	return z
}

// SubAssign sets z=z-x in e2 and returns z
func (z *e2) SubAssign(x *e2) *e2 {
	return z.Sub(z, x)
}

// Double sets z=2*x in e2 and returns z
func (z *e2) Double(x *e2) *e2 {
	z.A0.Double(&x.A0)
	z.A1.Double(&x.A1)
	return z
}

// Halve sets z to z/2 and returns z
func (z *e2) Halve() *e2 {
	z.A0.Halve()
	z.A1.Halve()
	return z
}

// Neg sets z=-x in e2 and returns z
func (z *e2) Neg(x *e2) *e2 {
	z.A0.Neg(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Conjugate sets z to the conjugate of x and returns z
func (z *e2) Conjugate(x *e2) *e2 {
	z.A0.Set(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Mul sets z=x*y in e2 and returns z
func (z *e2) Mul(x, y *e2) *e2 {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i, Karatsuba
	var t0, t1, t2 fp.Element
	t0.Mul(&x.A0, &y.A0)
	t1.Mul(&x.A1, &y.A1)
	t2.Add(&x.A0, &x.A1)
	z.A1.Add(&y.A0, &y.A1).
		MulAssign(&t2).
		SubAssign(&t0).
		SubAssign(&t1)
	z.A0.Sub(&t0, &t1)
	return z
}

// MulAssign sets z=z*x in e2 and returns z
func (z *e2) MulAssign(x *e2) *e2 {
	return z.Mul(z, x)
}

// Square sets z=x*x in e2 and returns z
func (z *e2) Square(x *e2) *e2 {
	// (a+bi)^2 = (a+b)(a-b) + 2abi
	var ab, apb, amb fp.Element
	ab.Mul(&x.A0, &x.A1)
	apb.Add(&x.A0, &x.A1)
	amb.Sub(&x.A0, &x.A1)
	z.A0.Mul(&apb, &amb)
	z.A1.Double(&ab)
	return z
}

// MulByElement sets z=x*y where y is an fp element, and returns z
func (z *e2) MulByElement(x *e2, y *fp.Element) *e2 {
	z.A0.Mul(&x.A0, y)
	z.A1.Mul(&x.A1, y)
	return z
}

// MulByNonResidue sets z=x*(9+i) and returns z
func (z *e2) MulByNonResidue(x *e2) *e2 {
	var a, b fp.Element
	a.Double(&x.A0).Double(&a).Double(&a).AddAssign(&x.A0) // 9*A0
	b.Double(&x.A1).Double(&b).Double(&b).AddAssign(&x.A1) // 9*A1
	a.SubAssign(&x.A1)
	b.AddAssign(&x.A0)
	z.A0 = a
	z.A1 = b
	return z
}

// Inverse sets z to the inverse of x in e2 and returns z.
// If x is zero, z is set to zero.
func (z *e2) Inverse(x *e2) *e2 {
	// 1/(a+bi) = (a-bi)/(a^2+b^2)
	var t0, t1 fp.Element
	t0.Square(&x.A0)
	t1.Square(&x.A1)
	t0.AddAssign(&t1)
	t1.Inverse(&t0)
	z.A0.Mul(&x.A0, &t1)
	z.A1.Mul(&x.A1, &t1).Neg(&z.A1)
	return z
}

// String implements Stringer interface for debugging
func (z *e2) String() string {
	return z.A0.String() + "+" + z.A1.String() + "*u"
}
