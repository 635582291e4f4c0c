// Package bn254 implements the BN254 (alt_bn128) pairing-friendly curve:
// the groups G1, G2 (on the sextic twist) and GT, and the optimal ate
// pairing. All public entry points go through the BN254() singleton, whose
// one-time initialization sets up generators, Frobenius coefficients and
// the Miller loop counter.
package bn254

import (
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/kamiyo-ai/tetsuo-zk/ecc"
	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fp"
)

// E: y**2 = x**3 + 3
// Etwist: y**2 = x**3 + 3/(9+u)

var bn254 Curve
var initOnce sync.Once
var initDone atomic.Bool

// ID bn254 ID
const ID = ecc.BN254

// curve coefficients, set by initBN254
var (
	bCurveCoeff      fp.Element
	bTwistCurveCoeff e2
)

// twist endomorphism coefficients for pi(Q) and pi^2(Q)
var (
	endo1X, endo1Y e2
	endo2X, endo2Y fp.Element
)

// BN254 returns the BN254 curve singleton, initializing it on first use.
// Initialization is idempotent and safe for concurrent use.
func BN254() *Curve {
	initOnce.Do(initBN254)
	return &bn254
}

// Initialized reports whether the curve singleton has been set up.
func Initialized() bool {
	return initDone.Load()
}

// Curve represents the BN254 curve and pre-computed constants
type Curve struct {
	g1Gen G1Jac // generator of the r-torsion group G1
	g2Gen G2Jac // generator of the r-torsion group G2

	g1Infinity G1Jac // infinity (in Jacobian coords)
	g2Infinity G2Jac

	// NAF decomposition of 6t+2, t the BN parameter
	loopCounter [66]int8
}

// G1Gen returns a copy of the G1 generator in Jacobian coordinates
func (c *Curve) G1Gen() G1Jac {
	return c.g1Gen
}

// G2Gen returns a copy of the G2 generator in Jacobian coordinates
func (c *Curve) G2Gen() G2Jac {
	return c.g2Gen
}

func initBN254() {

	// curve coeffs in Mont form; the twist is D-type, b' = b/(9+u)
	bCurveCoeff.SetUint64(3)
	bTwistCurveCoeff.SetString(
		"19485874751759354771024239261021720505790618469301721065564631296452457478373",
		"266929791119991161246907387137283842545076965332900288569378510910307636690")

	// Setting G1Jac
	bn254.g1Gen.X.SetString("1")
	bn254.g1Gen.Y.SetString("2")
	bn254.g1Gen.Z.SetString("1")

	// Setting G2Jac
	bn254.g2Gen.X.SetString(
		"10857046999023057135944570762232829481370756359578518086990519993285655852781",
		"11559732032986387107991004021392285783925812861821192530917403151452391805634")
	bn254.g2Gen.Y.SetString(
		"8495653923123431417604973247489272438418190587263600148770280649306958101930",
		"4082367875863433681332203403145435568316851327593401208105741076214120093531")
	bn254.g2Gen.Z.SetString("1", "0")

	// Setting the loop counter for the Miller loop in NAF form
	T, _ := new(big.Int).SetString("29793968203157093288", 10)
	ecc.NafDecomposition(T, bn254.loopCounter[:])

	// infinity point G1
	bn254.g1Infinity.X.SetOne()
	bn254.g1Infinity.Y.SetOne()

	// infinity point G2
	bn254.g2Infinity.X.SetOne()
	bn254.g2Infinity.Y.SetOne()

	// Frobenius coefficients gamma_k[j] = (9+u)^(j*(p^k-1)/6)
	frobGamma1[1].SetString(
		"8376118865763821496583973867626364092589906065868298776909617916018768340080",
		"16469823323077808223889137241176536799009286646108169935659301613961712198316")
	frobGamma1[2].SetString(
		"21575463638280843010398324269430826099269044274347216827212613867836435027261",
		"10307601595873709700152284273816112264069230130616436755625194854815875713954")
	frobGamma1[3].SetString(
		"2821565182194536844548159561693502659359617185244120367078079554186484126554",
		"3505843767911556378687030309984248845540243509899259641013678093033130930403")
	frobGamma1[4].SetString(
		"2581911344467009335267311115468803099551665605076196740867805258568234346338",
		"19937756971775647987995932169929341994314640652964949448313374472400716661030")
	frobGamma1[5].SetString(
		"685108087231508774477564247770172212460312782337200605669322048753928464687",
		"8447204650696766136447902020341177575205426561248465145919723016860428151883")

	frobGamma2[1].SetString("21888242871839275220042445260109153167277707414472061641714758635765020556617")
	frobGamma2[2].SetString("21888242871839275220042445260109153167277707414472061641714758635765020556616")
	frobGamma2[3].SetString("21888242871839275222246405745257275088696311157297823662689037894645226208582")
	frobGamma2[4].SetString("2203960485148121921418603742825762020974279258880205651966")
	frobGamma2[5].SetString("2203960485148121921418603742825762020974279258880205651967")

	frobGamma3[1].SetString(
		"11697423496358154304825782922584725312912383441159505038794027105778954184319",
		"303847389135065887422783454877609941456349188919719272345083954437860409601")
	frobGamma3[2].SetString(
		"3772000881919853776433695186713858239009073593817195771773381919316419345261",
		"2236595495967245188281701248203181795121068902605861227855261137820944008926")
	frobGamma3[3].SetString(
		"19066677689644738377698246183563772429336693972053703295610958340458742082029",
		"18382399103927718843559375435273026243156067647398564021675359801612095278180")
	frobGamma3[4].SetString(
		"5324479202449903542726783395506214481928257762400643279780343368557297135718",
		"16208900380737693084919495127334387981393726419856888799917914180988844123039")
	frobGamma3[5].SetString(
		"8941241848238582420466759817324047081148088512956452953208002715982955420483",
		"10338197737521362862238855242243140895517409139741313354160881284257516364953")

	// twist endomorphism: pi(x,y) = (conj(x)*endo1X, conj(y)*endo1Y),
	// pi^2(x,y) = (x*endo2X, y*endo2Y)
	endo1X.SetString(
		"21575463638280843010398324269430826099269044274347216827212613867836435027261",
		"10307601595873709700152284273816112264069230130616436755625194854815875713954")
	endo1Y.SetString(
		"2821565182194536844548159561693502659359617185244120367078079554186484126554",
		"3505843767911556378687030309984248845540243509899259641013678093033130930403")
	endo2X.SetString("21888242871839275220042445260109153167277707414472061641714758635765020556616")
	endo2Y.SetString("21888242871839275222246405745257275088696311157297823662689037894645226208582")

	initDone.Store(true)
}
