package bn254

import (
	"math/big"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fr"
)

// G2Affine is a point on the twist y^2 = x^3 + 3/(9+i) over e2, in affine
// coordinates. The point at infinity is encoded as (0, 0).
type G2Affine struct {
	X, Y e2
}

// G2Jac is a point on the twist in Jacobian coordinates.
type G2Jac struct {
	X, Y, Z e2
}

// ---------------------------------------------------------------------------
// affine

// Set sets p to a and returns p
func (p *G2Affine) Set(a *G2Affine) *G2Affine {
	p.X.Set(&a.X)
	p.Y.Set(&a.Y)
	return p
}

// SetInfinity sets p to the point at infinity
func (p *G2Affine) SetInfinity() *G2Affine {
	p.X.SetZero()
	p.Y.SetZero()
	return p
}

// IsInfinity returns true if p is the point at infinity
func (p *G2Affine) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Equal returns true if p equals a
func (p *G2Affine) Equal(a *G2Affine) bool {
	return p.X.Equal(&a.X) && p.Y.Equal(&a.Y)
}

// Neg sets p to -a and returns p
func (p *G2Affine) Neg(a *G2Affine) *G2Affine {
	p.X.Set(&a.X)
	p.Y.Neg(&a.Y)
	return p
}

// IsOnCurve returns true if p satisfies the twist equation.
// The point at infinity is considered valid.
func (p *G2Affine) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	var lhs, rhs e2
	lhs.Square(&p.Y)
	rhs.Square(&p.X).
		MulAssign(&p.X).
		AddAssign(&bTwistCurveCoeff)
	return lhs.Equal(&rhs)
}

// IsInSubgroup returns true if p is on the twist and in its r-torsion
// subgroup. The twist has a nontrivial cofactor, so curve membership alone
// is not enough.
func (p *G2Affine) IsInSubgroup() bool {
	if !p.IsOnCurve() {
		return false
	}
	if p.IsInfinity() {
		return true
	}
	var q, res G2Jac
	q.FromAffine(p)
	res.ScalarMulBig(&q, fr.Modulus())
	return res.Z.IsZero()
}

// FromJacobian converts a point from Jacobian to affine coordinates and
// returns p. The point at infinity maps to (0, 0).
func (p *G2Affine) FromJacobian(q *G2Jac) *G2Affine {
	if q.Z.IsZero() {
		return p.SetInfinity()
	}
	var zInv, zInv2, zInv3 e2
	zInv.Inverse(&q.Z)
	zInv2.Square(&zInv)
	zInv3.Mul(&zInv2, &zInv)
	p.X.Mul(&q.X, &zInv2)
	p.Y.Mul(&q.Y, &zInv3)
	return p
}

// String implements Stringer interface for debugging
func (p *G2Affine) String() string {
	if p.IsInfinity() {
		return "O"
	}
	return "E'([" + p.X.String() + "," + p.Y.String() + "])"
}

// ---------------------------------------------------------------------------
// jacobian

// Set sets p to a and returns p
func (p *G2Jac) Set(a *G2Jac) *G2Jac {
	p.X.Set(&a.X)
	p.Y.Set(&a.Y)
	p.Z.Set(&a.Z)
	return p
}

// SetInfinity sets p to the point at infinity
func (p *G2Jac) SetInfinity() *G2Jac {
	p.X.SetOne()
	p.Y.SetOne()
	p.Z.SetZero()
	return p
}

// IsInfinity returns true if p is the point at infinity
func (p *G2Jac) IsInfinity() bool {
	return p.Z.IsZero()
}

// Neg sets p to -a and returns p
func (p *G2Jac) Neg(a *G2Jac) *G2Jac {
	p.Set(a)
	p.Y.Neg(&a.Y)
	return p
}

// Sub subtracts a from p, p = p - a
func (p *G2Jac) Sub(a *G2Jac) *G2Jac {
	var n G2Jac
	n.Neg(a)
	return p.Add(&n)
}

// Equal returns true if p and a represent the same curve point
func (p *G2Jac) Equal(a *G2Jac) bool {
	if p.Z.IsZero() || a.Z.IsZero() {
		return p.Z.IsZero() && a.Z.IsZero()
	}
	var pZZ, aZZ, l, r e2
	pZZ.Square(&p.Z)
	aZZ.Square(&a.Z)
	l.Mul(&p.X, &aZZ)
	r.Mul(&a.X, &pZZ)
	if !l.Equal(&r) {
		return false
	}
	pZZ.MulAssign(&p.Z)
	aZZ.MulAssign(&a.Z)
	l.Mul(&p.Y, &aZZ)
	r.Mul(&a.Y, &pZZ)
	return l.Equal(&r)
}

// FromAffine converts a point from affine to Jacobian coordinates and
// returns p
func (p *G2Jac) FromAffine(a *G2Affine) *G2Jac {
	if a.IsInfinity() {
		return p.SetInfinity()
	}
	p.X.Set(&a.X)
	p.Y.Set(&a.Y)
	p.Z.SetOne()
	return p
}

// Add point addition in Jacobian coordinates
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-3.html#addition-add-2007-bl
func (p *G2Jac) Add(a *G2Jac) *G2Jac {
	if p.Z.IsZero() {
		p.Set(a)
		return p
	}
	if a.Z.IsZero() {
		return p
	}

	var Z1Z1, Z2Z2, U1, U2, S1, S2, H, I, J, r, V e2

	Z1Z1.Square(&a.Z)
	Z2Z2.Square(&p.Z)
	U1.Mul(&a.X, &Z2Z2)
	U2.Mul(&p.X, &Z1Z1)
	S1.Mul(&a.Y, &p.Z).
		MulAssign(&Z2Z2)
	S2.Mul(&p.Y, &a.Z).
		MulAssign(&Z1Z1)

	// if p == a, we double instead
	if U1.Equal(&U2) && S1.Equal(&S2) {
		return p.Double()
	}

	H.Sub(&U2, &U1)
	I.Double(&H).
		Square(&I)
	J.Mul(&H, &I)
	r.Sub(&S2, &S1).Double(&r)
	V.Mul(&U1, &I)

	p.X.Square(&r).
		SubAssign(&J).
		SubAssign(&V).
		SubAssign(&V)

	p.Y.Sub(&V, &p.X).
		MulAssign(&r)
	S1.MulAssign(&J).Double(&S1)
	p.Y.SubAssign(&S1)

	p.Z.AddAssign(&a.Z)
	p.Z.Square(&p.Z).
		SubAssign(&Z1Z1).
		SubAssign(&Z2Z2).
		MulAssign(&H)

	return p
}

// AddMixed point addition, assumes a is in affine coordinates
// http://www.hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-madd-2007-bl
func (p *G2Jac) AddMixed(a *G2Affine) *G2Jac {
	if a.IsInfinity() {
		return p
	}
	if p.Z.IsZero() {
		p.X = a.X
		p.Y = a.Y
		p.Z.SetOne()
		return p
	}

	var Z1Z1, U2, S2, H, HH, I, J, r, V e2

	Z1Z1.Square(&p.Z)
	U2.Mul(&a.X, &Z1Z1)
	S2.Mul(&a.Y, &p.Z).
		MulAssign(&Z1Z1)

	// if p == a, we double instead
	if U2.Equal(&p.X) && S2.Equal(&p.Y) {
		return p.Double()
	}

	H.Sub(&U2, &p.X)
	HH.Square(&H)
	I.Double(&HH).Double(&I)
	J.Mul(&H, &I)
	r.Sub(&S2, &p.Y).Double(&r)
	V.Mul(&p.X, &I)

	p.X.Square(&r).
		SubAssign(&J).
		SubAssign(&V).
		SubAssign(&V)

	J.MulAssign(&p.Y).Double(&J)
	p.Y.Sub(&V, &p.X).
		MulAssign(&r)
	p.Y.SubAssign(&J)

	p.Z.AddAssign(&H)
	p.Z.Square(&p.Z).
		SubAssign(&Z1Z1).
		SubAssign(&HH)

	return p
}

// Double doubles a point in Jacobian coordinates
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-3.html#doubling-dbl-2007-bl
func (p *G2Jac) Double() *G2Jac {
	var XX, YY, YYYY, ZZ, S, M, T e2

	XX.Square(&p.X)
	YY.Square(&p.Y)
	YYYY.Square(&YY)
	ZZ.Square(&p.Z)

	S.Add(&p.X, &YY)
	S.Square(&S).
		SubAssign(&XX).
		SubAssign(&YYYY).
		Double(&S)

	// M = 3*XX, a = 0 on the twist as well
	M.Double(&XX).AddAssign(&XX)

	p.Z.AddAssign(&p.Y).
		Square(&p.Z).
		SubAssign(&YY).
		SubAssign(&ZZ)

	T.Square(&M)
	p.X = T
	T.Double(&S)
	p.X.SubAssign(&T)

	p.Y.Sub(&S, &p.X).
		MulAssign(&M)
	YYYY.Double(&YYYY).Double(&YYYY).Double(&YYYY)
	p.Y.SubAssign(&YYYY)

	return p
}

// ScalarMul sets p = [scalar]a using the double-and-add method and returns p
func (p *G2Jac) ScalarMul(a *G2Jac, scalar *fr.Element) *G2Jac {
	limbs := scalar.Bits()
	var res G2Jac
	res.SetInfinity()
	base := *a
	for i := 3; i >= 0; i-- {
		for b := 63; b >= 0; b-- {
			res.Double()
			if (limbs[i]>>uint(b))&1 == 1 {
				res.Add(&base)
			}
		}
	}
	return p.Set(&res)
}

// ScalarMulBig sets p = [scalar]a where the scalar is an arbitrary
// non-negative integer, and returns p
func (p *G2Jac) ScalarMulBig(a *G2Jac, scalar *big.Int) *G2Jac {
	var res G2Jac
	res.SetInfinity()
	base := *a
	for i := scalar.BitLen() - 1; i >= 0; i-- {
		res.Double()
		if scalar.Bit(i) == 1 {
			res.Add(&base)
		}
	}
	return p.Set(&res)
}

// String implements Stringer interface for debugging
func (p *G2Jac) String() string {
	var a G2Affine
	a.FromJacobian(p)
	return a.String()
}

// g2Proj is a point on the twist in homogenous projective coordinates,
// used by the Miller loop line accumulation.
type g2Proj struct {
	x, y, z e2
}

// FromAffine sets p to the affine point a. The Miller loop never feeds it
// the point at infinity.
func (p *g2Proj) FromAffine(a *G2Affine) *g2Proj {
	p.x.Set(&a.X)
	p.y.Set(&a.Y)
	p.z.SetOne()
	return p
}
