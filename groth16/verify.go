package groth16

import (
	"crypto/rand"
	"time"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254"
	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fr"
	"github.com/kamiyo-ai/tetsuo-zk/logger"
)

// below batchThreshold proofs, VerifyBatch verifies one by one; the
// random-combination setup costs more than it saves
const batchThreshold = 4

// Verify checks a Groth16 proof against a precomputed verifying key and the
// public inputs. It returns true iff
//
//	e(Ar, Bs) * e(Krs, -Delta) * e(kSum, -Gamma) == e(Alpha, Beta)
//
// where kSum = K[0] + Σ publicInputs[i] * K[i+1].
//
// Proof points at infinity are rejected: a well-formed prover never emits
// them, and accepting them would let a degenerate proof satisfy the pairing
// equation for a trivial statement.
func Verify(proof *Proof, vk *VerifyingKey, publicInputs []fr.Element) bool {
	log := logger.Logger().With().Str("curve", "bn254").Str("backend", "groth16").Logger()
	start := time.Now()

	if !vk.precomputed {
		log.Error().Msg("verifying key was not precomputed")
		return false
	}
	if len(vk.G1.K) != len(publicInputs)+1 {
		log.Debug().Int("expected", len(vk.G1.K)-1).Int("got", len(publicInputs)).Msg("wrong number of public inputs")
		return false
	}

	if proof.Ar.IsInfinity() || proof.Bs.IsInfinity() || proof.Krs.IsInfinity() {
		log.Debug().Msg("proof point at infinity")
		return false
	}
	if !proof.Ar.IsInSubgroup() || !proof.Krs.IsInSubgroup() || !proof.Bs.IsInSubgroup() {
		log.Debug().Msg("proof point not in subgroup")
		return false
	}

	chan1 := make(chan struct{}, 1)
	chan2 := make(chan struct{}, 1)

	curve := bn254.BN254()

	var eArBs bn254.PairingResult
	go func() {
		curve.MillerLoop(proof.Ar, proof.Bs, &eArBs)
		chan1 <- struct{}{}
	}()

	var eKrsDelta bn254.PairingResult
	go func() {
		curve.MillerLoop(proof.Krs, vk.G2.DeltaNeg, &eKrsDelta)
		chan2 <- struct{}{}
	}()

	var kSum bn254.G1Jac
	kSum.FromAffine(&vk.G1.K[0])
	var kJac, t bn254.G1Jac
	for i := range publicInputs {
		kJac.FromAffine(&vk.G1.K[i+1])
		t.ScalarMul(&kJac, &publicInputs[i])
		kSum.Add(&t)
	}
	var kSumAff bn254.G1Affine
	kSumAff.FromJacobian(&kSum)

	var eKvkGamma bn254.PairingResult
	curve.MillerLoop(kSumAff, vk.G2.GammaNeg, &eKvkGamma)

	<-chan1
	<-chan2

	right := curve.FinalExponentiation(&eKrsDelta, &eArBs, &eKvkGamma)

	ok := vk.E.Equal(&right)
	log.Debug().Dur("took", time.Since(start)).Bool("verified", ok).Msg("verifier done")
	return ok
}

// VerifyBatch checks several proofs against the same verifying key using a
// random linear combination, trading n pairing checks for a single one.
//
// Each proof i gets a fresh random 128-bit scalar r_i and the check becomes
//
//	Π e([r_i]A_i, B_i) * e(-Σ r_i*kSum_i, Gamma) * e(-Σ r_i*C_i, Delta) == e([Σ r_i]Alpha, Beta)
//
// A cheating prover cannot target scalars it has never seen, so the combined
// check accepts only if every individual proof verifies (up to negligible
// probability). An empty batch verifies trivially; randomness failures reject.
func VerifyBatch(proofs []*Proof, vk *VerifyingKey, publicInputs [][]fr.Element) bool {
	log := logger.Logger().With().Str("curve", "bn254").Str("backend", "groth16").Int("batch", len(proofs)).Logger()
	start := time.Now()

	if len(proofs) != len(publicInputs) {
		return false
	}
	if len(proofs) == 0 {
		return true
	}
	if !vk.precomputed {
		log.Error().Msg("verifying key was not precomputed")
		return false
	}

	if len(proofs) < batchThreshold {
		for i := range proofs {
			if !Verify(proofs[i], vk, publicInputs[i]) {
				return false
			}
		}
		return true
	}

	curve := bn254.BN254()

	// validate everything up front so the accumulators below only see
	// r-torsion points
	for i := range proofs {
		if len(vk.G1.K) != len(publicInputs[i])+1 {
			return false
		}
		p := proofs[i]
		if p.Ar.IsInfinity() || p.Bs.IsInfinity() || p.Krs.IsInfinity() {
			return false
		}
		if !p.Ar.IsInSubgroup() || !p.Krs.IsInSubgroup() || !p.Bs.IsInSubgroup() {
			return false
		}
	}

	scalars := make([]fr.Element, len(proofs))
	var buf [16]byte
	for i := range scalars {
		if _, err := rand.Read(buf[:]); err != nil {
			log.Error().Err(err).Msg("sampling batch scalars")
			return false
		}
		scalars[i].SetBytes(buf[:])
		if scalars[i].IsZero() {
			scalars[i].SetOne()
		}
	}

	var acc bn254.PairingResult
	acc.SetOne()

	var icAcc, cAcc bn254.G1Jac
	icAcc.SetInfinity()
	cAcc.SetInfinity()
	var rSum fr.Element

	var ml bn254.PairingResult
	var t, scaledA bn254.G1Jac
	var scaledAff bn254.G1Affine
	for i := range proofs {
		p := proofs[i]

		scaledA.FromAffine(&p.Ar)
		t.ScalarMul(&scaledA, &scalars[i])
		scaledAff.FromJacobian(&t)
		curve.MillerLoop(scaledAff, p.Bs, &ml)
		acc.MulAssign(&ml)

		var kSum bn254.G1Jac
		kSum.FromAffine(&vk.G1.K[0])
		for j := range publicInputs[i] {
			var kJac bn254.G1Jac
			kJac.FromAffine(&vk.G1.K[j+1])
			t.ScalarMul(&kJac, &publicInputs[i][j])
			kSum.Add(&t)
		}
		t.ScalarMul(&kSum, &scalars[i])
		icAcc.Add(&t)

		var krs bn254.G1Jac
		krs.FromAffine(&p.Krs)
		t.ScalarMul(&krs, &scalars[i])
		cAcc.Add(&t)

		rSum.AddAssign(&scalars[i])
	}

	var icAff, cAff bn254.G1Affine
	icAff.FromJacobian(&icAcc)
	cAff.FromJacobian(&cAcc)

	curve.MillerLoop(icAff, vk.G2.GammaNeg, &ml)
	acc.MulAssign(&ml)
	curve.MillerLoop(cAff, vk.G2.DeltaNeg, &ml)
	acc.MulAssign(&ml)

	left := curve.FinalExponentiation(&acc)

	// right side: e([Σ r_i]Alpha, Beta), cheaper than exponentiating vk.E in GT
	var alphaJac bn254.G1Jac
	alphaJac.FromAffine(&vk.G1.Alpha)
	t.ScalarMul(&alphaJac, &rSum)
	var alphaAff bn254.G1Affine
	alphaAff.FromJacobian(&t)
	curve.MillerLoop(alphaAff, vk.G2.Beta, &ml)
	right := curve.FinalExponentiation(&ml)

	ok := left.Equal(&right)
	log.Debug().Dur("took", time.Since(start)).Bool("verified", ok).Msg("batch verifier done")
	return ok
}
