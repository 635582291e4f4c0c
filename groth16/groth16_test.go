package groth16

import (
	"testing"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254"
	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

// testSetup builds a verifying key and a satisfying proof from fixed scalars.
// The scalars are chosen so that a*b == x*y + (k0 + input*k1)*c + e*d mod r,
// which is exactly the relation the pairing check enforces for
// alpha=[x]g1, beta=[y]g2, gamma=[c]g2, delta=[d]g2, K=[k0]g1,[k1]g1,
// A=[a]g1, B=[b]g2, C=[e]g1.
func testSetup(t testing.TB) (*Proof, *VerifyingKey, []fr.Element) {
	t.Helper()
	curve := bn254.BN254()
	g1 := curve.G1Gen()
	g2 := curve.G2Gen()

	mulG1 := func(s string) bn254.G1Affine {
		var scalar fr.Element
		scalar.SetString(s)
		var j bn254.G1Jac
		j.ScalarMul(&g1, &scalar)
		var aff bn254.G1Affine
		aff.FromJacobian(&j)
		return aff
	}
	mulG2 := func(s string) bn254.G2Affine {
		var scalar fr.Element
		scalar.SetString(s)
		var j bn254.G2Jac
		j.ScalarMul(&g2, &scalar)
		var aff bn254.G2Affine
		aff.FromJacobian(&j)
		return aff
	}

	vk := &VerifyingKey{}
	vk.G1.Alpha = mulG1("4039346969039275674716523023361802590813143187393312939505358238152932817310")
	vk.G2.Beta = mulG2("17093590389130402819435543406366317951577633237141877878623641074713865314474")
	vk.G2.Gamma = mulG2("17427251634033784640215625024870782431069199545901384707574759596053235962266")
	vk.G2.Delta = mulG2("12144269130510828566893369270785841909632214969321764074154983788910870204340")
	vk.G1.K = []bn254.G1Affine{
		mulG1("6232907548496142835207643291705112999611234413127016100237312544261045627838"),
		mulG1("10391743015558229778174814569695375214325212059637920697549059402014311311972"),
	}
	require.NoError(t, vk.Precompute())

	proof := &Proof{
		Ar:  mulG1("8486931266780619689880095355624863747916209248541320762615296202184281439878"),
		Bs:  mulG2("5566374345062694977689616487640334753341088350473462910662025405152009379123"),
		Krs: mulG1("6017841723271618654989723639538100128879841386938234496687533484978477960915"),
	}

	var input fr.Element
	input.SetString("13299441597181342462842513064012758133157675538162826088921004493546471121940")

	return proof, vk, []fr.Element{input}
}

func TestVerify(t *testing.T) {
	proof, vk, inputs := testSetup(t)
	require.True(t, Verify(proof, vk, inputs))
}

func TestVerifyWrongInput(t *testing.T) {
	proof, vk, inputs := testSetup(t)
	inputs[0].SetUint64(42)
	require.False(t, Verify(proof, vk, inputs))
}

func TestVerifyWrongInputCount(t *testing.T) {
	proof, vk, inputs := testSetup(t)
	require.False(t, Verify(proof, vk, nil))
	require.False(t, Verify(proof, vk, append(inputs, fr.Element{})))
}

func TestVerifyNotPrecomputed(t *testing.T) {
	proof, vk, inputs := testSetup(t)
	stale := &VerifyingKey{}
	stale.G1 = vk.G1
	stale.G2.Beta = vk.G2.Beta
	stale.G2.Gamma = vk.G2.Gamma
	stale.G2.Delta = vk.G2.Delta
	require.False(t, Verify(proof, stale, inputs))
}

func TestVerifyRejectsInfinity(t *testing.T) {
	proof, vk, inputs := testSetup(t)
	proof.Ar.SetInfinity()
	require.False(t, Verify(proof, vk, inputs))

	proof, _, _ = testSetup(t)
	proof.Bs.SetInfinity()
	require.False(t, Verify(proof, vk, inputs))

	proof, _, _ = testSetup(t)
	proof.Krs.SetInfinity()
	require.False(t, Verify(proof, vk, inputs))
}

// the all-infinity proof satisfies the raw pairing equation for a trivial
// statement (1 == 1 after both sides collapse), the infinity guard must
// reject it anyway
func TestVerifyRejectsAllInfinityProof(t *testing.T) {
	_, vk, inputs := testSetup(t)

	var degenerate Proof
	degenerate.Ar.SetInfinity()
	degenerate.Bs.SetInfinity()
	degenerate.Krs.SetInfinity()
	require.False(t, Verify(&degenerate, vk, inputs))
}

// same degenerate proof against the minimal all-infinity key: every point is
// formally valid (infinity is in the subgroup), the answer is still false
func TestVerifyRejectsDegenerateKeyAndProof(t *testing.T) {
	assert := require.New(t)

	vk := &VerifyingKey{}
	vk.G1.Alpha.SetInfinity()
	vk.G2.Beta.SetInfinity()
	vk.G2.Gamma.SetInfinity()
	vk.G2.Delta.SetInfinity()
	vk.G1.K = make([]bn254.G1Affine, 2)
	vk.G1.K[0].SetInfinity()
	vk.G1.K[1].SetInfinity()
	assert.NoError(vk.Precompute())

	var proof Proof
	proof.Ar.SetInfinity()
	proof.Bs.SetInfinity()
	proof.Krs.SetInfinity()
	assert.False(Verify(&proof, vk, []fr.Element{{}}))
}

// an empty IC basis can never match num_inputs+1, even for zero inputs
func TestVerifyRejectsEmptyIC(t *testing.T) {
	proof, vk, _ := testSetup(t)

	empty := &VerifyingKey{}
	empty.G1.Alpha = vk.G1.Alpha
	empty.G2 = vk.G2
	require.NoError(t, empty.Precompute())
	require.False(t, Verify(proof, empty, nil))
}

func TestProofRoundTrip(t *testing.T) {
	assert := require.New(t)
	proof, vk, inputs := testSetup(t)

	buf, err := proof.MarshalBinary()
	assert.NoError(err)
	assert.Len(buf, SizeOfProof)

	var back Proof
	assert.NoError(back.UnmarshalBinary(buf))
	assert.True(Verify(&back, vk, inputs))
}

func TestProofUnmarshalRejectsCorruption(t *testing.T) {
	assert := require.New(t)
	proof, _, _ := testSetup(t)

	buf, err := proof.MarshalBinary()
	assert.NoError(err)

	// flip a bit in Ar.x so the point leaves the curve
	buf[3] ^= 0x10
	var back Proof
	assert.Error(back.UnmarshalBinary(buf))

	assert.Error(new(Proof).UnmarshalBinary(buf[:100]))
}

func TestVerifyingKeyRoundTrip(t *testing.T) {
	assert := require.New(t)
	proof, vk, inputs := testSetup(t)

	buf, err := vk.MarshalBinary()
	assert.NoError(err)

	var back VerifyingKey
	assert.NoError(back.UnmarshalBinary(buf))
	assert.Equal(vk.NbPublicInputs(), back.NbPublicInputs())
	assert.True(back.E.Equal(&vk.E))
	assert.True(Verify(proof, &back, inputs))
}

func TestVerifyingKeyUnmarshalRejectsTruncation(t *testing.T) {
	assert := require.New(t)
	_, vk, _ := testSetup(t)

	buf, err := vk.MarshalBinary()
	assert.NoError(err)

	assert.Error(new(VerifyingKey).UnmarshalBinary(buf[:len(buf)-1]))
	assert.Error(new(VerifyingKey).UnmarshalBinary(buf[:10]))

	// a zero-length IC section is never valid, K must hold at least K[0]
	zeroIC := make([]byte, len(buf))
	copy(zeroIC, buf)
	icOffset := len(buf) - 4 - 2*bn254.SizeOfG1AffineUncompressed
	zeroIC[icOffset] = 0
	assert.Error(new(VerifyingKey).UnmarshalBinary(zeroIC[:icOffset+4]))
}

func TestVerifyBatch(t *testing.T) {
	assert := require.New(t)
	proof, vk, inputs := testSetup(t)

	proofs := make([]*Proof, 5)
	allInputs := make([][]fr.Element, 5)
	for i := range proofs {
		proofs[i] = proof
		allInputs[i] = inputs
	}
	assert.True(VerifyBatch(proofs, vk, allInputs))

	// below the threshold, the sequential path
	assert.True(VerifyBatch(proofs[:2], vk, allInputs[:2]))

	// empty batch verifies trivially
	assert.True(VerifyBatch(nil, vk, nil))
}

func TestVerifyBatchRejectsOneBadProof(t *testing.T) {
	assert := require.New(t)
	proof, vk, inputs := testSetup(t)

	var badInput fr.Element
	badInput.SetUint64(42)

	proofs := make([]*Proof, 5)
	allInputs := make([][]fr.Element, 5)
	for i := range proofs {
		proofs[i] = proof
		allInputs[i] = inputs
	}
	allInputs[3] = []fr.Element{badInput}
	assert.False(VerifyBatch(proofs, vk, allInputs))

	// mismatched slice lengths
	assert.False(VerifyBatch(proofs, vk, allInputs[:4]))
}

func TestPrecomputeRejectsBadKey(t *testing.T) {
	_, vk, _ := testSetup(t)

	bad := &VerifyingKey{}
	bad.G1 = vk.G1
	bad.G2.Beta = vk.G2.Beta
	bad.G2.Gamma = vk.G2.Gamma
	bad.G2.Delta = vk.G2.Delta

	// push alpha off the curve
	bad.G1.Alpha.X.SetUint64(5)
	require.ErrorIs(t, bad.Precompute(), ErrInvalidVerifyingKey)
}

//--------------------//
//     benches		  //
//--------------------//

func BenchmarkVerify(b *testing.B) {
	proof, vk, inputs := testSetup(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Verify(proof, vk, inputs) {
			b.Fatal("verification failed")
		}
	}
}

func BenchmarkVerifyBatch(b *testing.B) {
	proof, vk, inputs := testSetup(b)
	proofs := make([]*Proof, 8)
	allInputs := make([][]fr.Element, 8)
	for i := range proofs {
		proofs[i] = proof
		allInputs[i] = inputs
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !VerifyBatch(proofs, vk, allInputs) {
			b.Fatal("batch verification failed")
		}
	}
}
