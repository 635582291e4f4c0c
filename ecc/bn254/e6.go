package bn254

// e6 is a degree-3 extension of e2, with v^3 = 9+i
type e6 struct {
	B0, B1, B2 e2
}

// Set sets z to x and returns z
func (z *e6) Set(x *e6) *e6 {
	*z = *x
	return z
}

// SetZero sets z to 0 and returns z
func (z *e6) SetZero() *e6 {
	z.B0.SetZero()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// SetOne sets z to 1 and returns z
func (z *e6) SetOne() *e6 {
	z.B0.SetOne()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// Equal returns true if z equals x
func (z *e6) Equal(x *e6) bool {
	return z.B0.Equal(&x.B0) && z.B1.Equal(&x.B1) && z.B2.Equal(&x.B2)
}

// IsZero returns true if z is zero
func (z *e6) IsZero() bool {
	return z.B0.IsZero() && z.B1.IsZero() && z.B2.IsZero()
}

// Add sets z=x+y in e6 and returns z
func (z *e6) Add(x, y *e6) *e6 {
	z.B0.Add(&x.B0, &y.B0)
	z.B1.Add(&x.B1, &y.B1)
	z.B2.Add(&x.B2, &y.B2)
	return z
}

// Sub sets z=x-y in e6 and returns z
func (z *e6) Sub(x, y *e6) *e6 {
	z.B0.Sub(&x.B0, &y.B0)
	z.B1.Sub(&x.B1, &y.B1)
	z.B2.Sub(&x.B2, &y.B2)
	return z
}

// Double sets z=2*x in e6 and returns z
func (z *e6) Double(x *e6) *e6 {
	z.B0.Double(&x.B0)
	z.B1.Double(&x.B1)
	z.B2.Double(&x.B2)
	return z
}

// Neg sets z=-x in e6 and returns z
func (z *e6) Neg(x *e6) *e6 {
	z.B0.Neg(&x.B0)
	z.B1.Neg(&x.B1)
	z.B2.Neg(&x.B2)
	return z
}

// Mul sets z=x*y in e6 and returns z
func (z *e6) Mul(x, y *e6) *e6 {
	// Algorithm 13 from https://eprint.iacr.org/2010/354.pdf
	var t0, t1, t2, c0, c1, c2, tmp e2

	t0.Mul(&x.B0, &y.B0) // step 1
	t1.Mul(&x.B1, &y.B1) // step 2
	t2.Mul(&x.B2, &y.B2) // step 3

	// step 4-6
	c0.Add(&x.B1, &x.B2)
	tmp.Add(&y.B1, &y.B2)
	c0.MulAssign(&tmp).
		SubAssign(&t1).
		SubAssign(&t2).
		MulByNonResidue(&c0).
		AddAssign(&t0)

	// step 7-9
	c1.Add(&x.B0, &x.B1)
	tmp.Add(&y.B0, &y.B1)
	c1.MulAssign(&tmp).
		SubAssign(&t0).
		SubAssign(&t1)
	tmp.MulByNonResidue(&t2)
	c1.AddAssign(&tmp)

	// step 10-12
	c2.Add(&x.B0, &x.B2)
	tmp.Add(&y.B0, &y.B2)
	c2.MulAssign(&tmp).
		SubAssign(&t0).
		SubAssign(&t2).
		AddAssign(&t1)

	z.B0 = c0
	z.B1 = c1
	z.B2 = c2
	return z
}

// MulAssign sets z=z*x in e6 and returns z
func (z *e6) MulAssign(x *e6) *e6 {
	return z.Mul(z, x)
}

// Square sets z=x*x in e6 and returns z
func (z *e6) Square(x *e6) *e6 {
	return z.Mul(x, x)
}

// MulByNonResidue sets z=x*v in e6 and returns z,
// v^3 = 9+i so this is a coefficient rotation
func (z *e6) MulByNonResidue(x *e6) *e6 {
	t := x.B2
	z.B2 = x.B1
	z.B1 = x.B0
	z.B0.MulByNonResidue(&t)
	return z
}

// MulByE2 sets z=x*y where y is an e2 element, and returns z
func (z *e6) MulByE2(x *e6, y *e2) *e6 {
	z.B0.Mul(&x.B0, y)
	z.B1.Mul(&x.B1, y)
	z.B2.Mul(&x.B2, y)
	return z
}

// MulBy01 sets z=x*(c0+c1*v), sparse multiplication, and returns z
func (z *e6) MulBy01(x *e6, c0, c1 *e2) *e6 {
	var a, b, t0, t1, t2, tmp e2

	a.Mul(&x.B0, c0)
	b.Mul(&x.B1, c1)

	t0.Add(&x.B1, &x.B2).
		MulAssign(c1).
		SubAssign(&b).
		MulByNonResidue(&t0).
		AddAssign(&a)

	t1.Add(&x.B0, &x.B1)
	tmp.Add(c0, c1)
	t1.MulAssign(&tmp).
		SubAssign(&a).
		SubAssign(&b)

	t2.Add(&x.B0, &x.B2).
		MulAssign(c0).
		SubAssign(&a).
		AddAssign(&b)

	z.B0 = t0
	z.B1 = t1
	z.B2 = t2
	return z
}

// Inverse sets z to the inverse of x in e6 and returns z.
// If x is zero, z is set to zero.
func (z *e6) Inverse(x *e6) *e6 {
	// Algorithm 17 from https://eprint.iacr.org/2010/354.pdf
	var t0, t1, t2, t3, t4, t5, t6, c0, c1, c2, buf e2

	t0.Square(&x.B0) // step 1
	t1.Square(&x.B1) // step 2
	t2.Square(&x.B2) // step 3
	t3.Mul(&x.B0, &x.B1) // step 4
	t4.Mul(&x.B0, &x.B2) // step 5
	t5.Mul(&x.B1, &x.B2) // step 6

	// step 7-9
	c0.MulByNonResidue(&t5)
	c0.Sub(&t0, &c0)
	c1.MulByNonResidue(&t2)
	c1.SubAssign(&t3)
	c2.Sub(&t1, &t4)

	// step 10-13
	t6.Mul(&x.B0, &c0)
	buf.Mul(&x.B2, &c1).
		MulByNonResidue(&buf)
	t6.AddAssign(&buf)
	buf.Mul(&x.B1, &c2).
		MulByNonResidue(&buf)
	t6.AddAssign(&buf)
	t6.Inverse(&t6)

	z.B0.Mul(&c0, &t6)
	z.B1.Mul(&c1, &t6)
	z.B2.Mul(&c2, &t6)
	return z
}

// String implements Stringer interface for debugging
func (z *e6) String() string {
	return "(" + z.B0.String() + ") + (" + z.B1.String() + ")*v + (" + z.B2.String() + ")*v**2"
}
