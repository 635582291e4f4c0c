package bn254

import (
	"errors"
)

// PairingResult is an element of GT, the order-r multiplicative subgroup
// of E12. It is the target group of the optimal ate pairing.
type PairingResult = E12

var (
	// ErrInvalidPoint is returned when a pairing input is not on the curve
	// or not in the r-torsion subgroup.
	ErrInvalidPoint = errors.New("bn254: point is not in the r-torsion subgroup")

	// ErrMismatchedSizes is returned when the G1 and G2 slices of a
	// multi-pairing differ in length.
	ErrMismatchedSizes = errors.New("bn254: mismatched numbers of G1 and G2 points")
)

// lineEvaluation holds the three nonzero coefficients of a Miller loop
// line: l = r0 + r1*w + r2*w^3, before evaluation at the G1 point.
type lineEvaluation struct {
	r0, r1, r2 e2
}

// MillerLoop computes the Miller loop of the optimal ate pairing,
// f_{6t+2,Q}(P) times the two closing lines at pi(Q) and -pi^2(Q).
// If either point is at infinity the result is 1.
//
// Lines are accumulated on the twist in homogenous projective coordinates
// (https://eprint.iacr.org/2013/722.pdf, section 4.3), so no inversion is
// needed per step. Each line picks up a factor in the e2 subfield, which
// the final exponentiation kills.
func (curve *Curve) MillerLoop(P G1Affine, Q G2Affine, result *PairingResult) *PairingResult {
	result.SetOne()
	if P.IsInfinity() || Q.IsInfinity() {
		return result
	}

	var qProj g2Proj
	qProj.FromAffine(&Q)
	var nQ G2Affine
	nQ.Neg(&Q)

	var l lineEvaluation
	for i := len(curve.loopCounter) - 2; i >= 0; i-- {
		result.Square(result)
		qProj.doubleStep(&l)
		l.r0.MulByElement(&l.r0, &P.Y)
		l.r1.MulByElement(&l.r1, &P.X)
		result.MulBy034(&l.r0, &l.r1, &l.r2)
		switch curve.loopCounter[i] {
		case 1:
			qProj.addMixedStep(&l, &Q)
			l.r0.MulByElement(&l.r0, &P.Y)
			l.r1.MulByElement(&l.r1, &P.X)
			result.MulBy034(&l.r0, &l.r1, &l.r2)
		case -1:
			qProj.addMixedStep(&l, &nQ)
			l.r0.MulByElement(&l.r0, &P.Y)
			l.r1.MulByElement(&l.r1, &P.X)
			result.MulBy034(&l.r0, &l.r1, &l.r2)
		}
	}

	// closing lines at q1 = pi(Q) and q2 = -pi^2(Q)
	var q1, q2 G2Affine
	q1.X.Conjugate(&Q.X).MulAssign(&endo1X)
	q1.Y.Conjugate(&Q.Y).MulAssign(&endo1Y)
	q2.X.MulByElement(&Q.X, &endo2X)
	q2.Y.MulByElement(&Q.Y, &endo2Y)
	q2.Y.Neg(&q2.Y)

	qProj.addMixedStep(&l, &q1)
	l.r0.MulByElement(&l.r0, &P.Y)
	l.r1.MulByElement(&l.r1, &P.X)
	result.MulBy034(&l.r0, &l.r1, &l.r2)

	// the accumulator is not needed after the last line
	qProj.lineCompute(&l, &q2)
	l.r0.MulByElement(&l.r0, &P.Y)
	l.r1.MulByElement(&l.r1, &P.X)
	result.MulBy034(&l.r0, &l.r1, &l.r2)

	return result
}

// doubleStep doubles p and stores in l the tangent line at p, up to its
// evaluation at the G1 point.
func (p *g2Proj) doubleStep(l *lineEvaluation) {
	var t1, A, B, C, D, E, EE, F, G, H, I, J, K e2
	A.Mul(&p.x, &p.y)
	A.Halve()
	B.Square(&p.y)
	C.Square(&p.z)
	D.Double(&C).
		AddAssign(&C)
	E.Mul(&D, &bTwistCurveCoeff)
	F.Double(&E).
		AddAssign(&E)
	G.Add(&B, &F)
	G.Halve()
	H.Add(&p.y, &p.z).
		Square(&H)
	t1.Add(&B, &C)
	H.SubAssign(&t1)
	I.Sub(&E, &B)
	J.Square(&p.x)
	EE.Square(&E)
	K.Double(&EE).
		AddAssign(&EE)

	p.x.Sub(&B, &F).
		MulAssign(&A)
	p.y.Square(&G).
		SubAssign(&K)
	p.z.Mul(&B, &H)

	l.r0.Neg(&H)
	l.r1.Double(&J).
		AddAssign(&J)
	l.r2.Set(&I)
}

// addMixedStep sets p to p+a and stores in l the line through them, up to
// its evaluation at the G1 point.
func (p *g2Proj) addMixedStep(l *lineEvaluation, a *G2Affine) {
	var Y2Z1, X2Z1, O, L, C, D, E, F, G, H, t0, t1, t2, J e2
	Y2Z1.Mul(&a.Y, &p.z)
	O.Sub(&p.y, &Y2Z1)
	X2Z1.Mul(&a.X, &p.z)
	L.Sub(&p.x, &X2Z1)
	C.Square(&O)
	D.Square(&L)
	E.Mul(&L, &D)
	F.Mul(&p.z, &C)
	G.Mul(&p.x, &D)
	t0.Double(&G)
	H.Add(&E, &F).
		SubAssign(&t0)
	t1.Mul(&p.y, &E)

	p.x.Mul(&L, &H)
	p.y.Sub(&G, &H).
		MulAssign(&O).
		SubAssign(&t1)
	p.z.MulAssign(&E)

	t2.Mul(&L, &a.Y)
	J.Mul(&a.X, &O).
		SubAssign(&t2)

	l.r0.Set(&L)
	l.r1.Neg(&O)
	l.r2.Set(&J)
}

// lineCompute stores in l the line through p and a without updating p.
func (p *g2Proj) lineCompute(l *lineEvaluation, a *G2Affine) {
	var Y2Z1, X2Z1, O, L, t2, J e2
	Y2Z1.Mul(&a.Y, &p.z)
	O.Sub(&p.y, &Y2Z1)
	X2Z1.Mul(&a.X, &p.z)
	L.Sub(&p.x, &X2Z1)
	t2.Mul(&L, &a.Y)
	J.Mul(&a.X, &O).
		SubAssign(&t2)

	l.r0.Set(&L)
	l.r1.Neg(&O)
	l.r2.Set(&J)
}

// FinalExponentiation computes the final exponentiation of the product of
// the given Miller loop results.
func (curve *Curve) FinalExponentiation(z *PairingResult, _z ...*PairingResult) PairingResult {
	var result PairingResult
	result.Set(z)
	for _, r := range _z {
		result.MulAssign(r)
	}
	result.FinalExponentiation(&result)
	return result
}

// FinalExponentiation sets z to x^(s*(p^12-1)/r) where s is the cofactor
// 2t(6t^2+3t+1), and returns z. The easy part brings x into the cyclotomic
// subgroup; the hard part follows Fuentes et al. (alg. 6), see also
// https://eprint.iacr.org/2015/192.pdf. The extra cofactor is coprime to r,
// so the map stays injective on GT and matches the normalization used by
// gnark-crypto.
func (z *E12) FinalExponentiation(x *E12) *E12 {
	var result E12
	result.Set(x)
	var t [5]E12

	// easy part: x^((p^6-1)(p^2+1))
	t[0].Conjugate(&result)
	result.Inverse(&result)
	t[0].MulAssign(&result)
	result.FrobeniusSquare(&t[0]).
		MulAssign(&t[0])

	if result.IsOne() {
		return z.SetOne()
	}

	// hard part
	t[0].Expt(&result).
		Conjugate(&t[0])
	t[0].CyclotomicSquare(&t[0])
	t[1].CyclotomicSquare(&t[0])
	t[1].Mul(&t[0], &t[1])
	t[2].Expt(&t[1])
	t[2].Conjugate(&t[2])
	t[3].Conjugate(&t[1])
	t[1].Mul(&t[2], &t[3])
	t[3].CyclotomicSquare(&t[2])
	t[4].Expt(&t[3])
	t[4].Mul(&t[1], &t[4])
	t[3].Mul(&t[0], &t[4])
	t[0].Mul(&t[2], &t[4])
	t[0].MulAssign(&result)
	t[2].Frobenius(&t[3])
	t[0].Mul(&t[2], &t[0])
	t[2].FrobeniusSquare(&t[4])
	t[0].Mul(&t[2], &t[0])
	t[2].Conjugate(&result)
	t[2].MulAssign(&t[3])
	t[2].FrobeniusCube(&t[2])
	t[0].Mul(&t[2], &t[0])

	return z.Set(&t[0])
}

// Pair computes the optimal ate pairing e(P, Q). Both points are validated
// against their r-torsion subgroups; ErrInvalidPoint is returned otherwise.
// If either point is at infinity the result is 1.
func (curve *Curve) Pair(P G1Affine, Q G2Affine) (PairingResult, error) {
	var result PairingResult
	result.SetOne()
	if !P.IsInSubgroup() || !Q.IsInSubgroup() {
		return result, ErrInvalidPoint
	}
	curve.MillerLoop(P, Q, &result)
	return curve.FinalExponentiation(&result), nil
}

// PairMulti computes the product of pairings e(P[0], Q[0]) * ... sharing a
// single final exponentiation. All points are validated.
func (curve *Curve) PairMulti(P []G1Affine, Q []G2Affine) (PairingResult, error) {
	var acc PairingResult
	acc.SetOne()
	if len(P) != len(Q) {
		return acc, ErrMismatchedSizes
	}
	var ml PairingResult
	for i := range P {
		if !P[i].IsInSubgroup() || !Q[i].IsInSubgroup() {
			return acc, ErrInvalidPoint
		}
		curve.MillerLoop(P[i], Q[i], &ml)
		acc.MulAssign(&ml)
	}
	return curve.FinalExponentiation(&acc), nil
}

// PairingCheck returns true if the product of pairings e(P[i], Q[i]) is 1.
func (curve *Curve) PairingCheck(P []G1Affine, Q []G2Affine) (bool, error) {
	res, err := curve.PairMulti(P, Q)
	if err != nil {
		return false, err
	}
	return res.IsOne(), nil
}
