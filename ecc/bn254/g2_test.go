package bn254

import (
	"testing"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func TestG2GenIsOnCurve(t *testing.T) {
	curve := BN254()
	var g G2Affine
	gj := curve.G2Gen()
	g.FromJacobian(&gj)
	if !g.IsOnCurve() {
		t.Fatal("g2 generator not on curve")
	}
	if !g.IsInSubgroup() {
		t.Fatal("g2 generator not in subgroup")
	}
}

func TestScalarMulG2Jac(t *testing.T) {
	curve := BN254()
	var scalar fr.Element
	scalar.SetString("11019358103200512606383071234864109998742382266")

	var res, gen G2Jac
	gen = curve.G2Gen()
	res.ScalarMul(&gen, &scalar)

	var expected G2Jac
	expected.X.SetString("962444794309176159136932091843766758052914788368915433491787574269804290005",
		"7377744050819485379900961190059571903249691249107913929180520629169563173121")
	expected.Y.SetString("6117501271019890399191927964497077310988790536765511671095290772614448475511",
		"16433103246359455400526143567895990424247748680219982333785720434259330961332")
	expected.Z.SetString("1", "0")

	if !res.Equal(&expected) {
		t.Error("Error ScalarMulG2Jac")
	}
}

func TestG2MulByOrderIsInfinity(t *testing.T) {
	curve := BN254()
	var res, gen G2Jac
	gen = curve.G2Gen()
	res.ScalarMulBig(&gen, fr.Modulus())
	if !res.IsInfinity() {
		t.Error("[r]G2 should be the point at infinity")
	}
}

func TestG2SubgroupRejectsTwistPoint(t *testing.T) {
	// a point on the twist but outside the r-torsion must fail the subgroup check
	var p G2Affine
	p.X.SetString("6215087815076330926179520016461010917137519558660815034878824735059242618923",
		"15951728188012883138265176510482648277956245750475693862477712774865526280408")
	p.Y.SetString("3883977897564888010651085404774470414463111034944669274151467203191618805695",
		"19498073560140031588371260485875504435560004141507859856993853994986969832168")

	if !p.IsOnCurve() {
		t.Fatal("test point should be on the twist curve")
	}
	if p.IsInSubgroup() {
		t.Error("point outside the r-torsion passed the subgroup check")
	}
}

func TestG2Ops(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10

	properties := gopter.NewProperties(parameters)
	curve := BN254()

	properties.Property("[a]G + [b]G == [a+b]G", prop.ForAll(
		func(a, b fr.Element) bool {
			gen := curve.G2Gen()
			var pa, pb, psum G2Jac
			pa.ScalarMul(&gen, &a)
			pb.ScalarMul(&gen, &b)
			pa.Add(&pb)

			var ab fr.Element
			ab.Add(&a, &b)
			psum.ScalarMul(&gen, &ab)
			return pa.Equal(&psum)
		},
		genFr(), genFr(),
	))

	properties.Property("mixed add == jacobian add", prop.ForAll(
		func(a, b fr.Element) bool {
			gen := curve.G2Gen()
			var p, q, mixed G2Jac
			var qAff G2Affine
			p.ScalarMul(&gen, &a)
			q.ScalarMul(&gen, &b)
			qAff.FromJacobian(&q)

			mixed.Set(&p)
			mixed.AddMixed(&qAff)
			p.Add(&q)
			return p.Equal(&mixed)
		},
		genFr(), genFr(),
	))

	properties.Property("p - p == O", prop.ForAll(
		func(a fr.Element) bool {
			gen := curve.G2Gen()
			var p, q G2Jac
			p.ScalarMul(&gen, &a)
			q.Set(&p)
			p.Sub(&q)
			return p.IsInfinity()
		},
		genFr(),
	))

	properties.Property("scalar mul lands in the subgroup", prop.ForAll(
		func(a fr.Element) bool {
			gen := curve.G2Gen()
			var p G2Jac
			p.ScalarMul(&gen, &a)
			var pAff G2Affine
			pAff.FromJacobian(&p)
			return pAff.IsInSubgroup()
		},
		genFr(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func BenchmarkScalarMulG2Jac(b *testing.B) {
	curve := BN254()
	var scalar fr.Element
	scalar.SetString("11019358103200512606383071234864109998742382266")
	gen := curve.G2Gen()
	var res G2Jac

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res.ScalarMul(&gen, &scalar)
	}
}
