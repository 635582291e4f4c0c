// Package groth16 implements Groth16 proof verification over the BN254 curve.
//
// See https://eprint.iacr.org/2016/260.pdf for the scheme. Only the verifier
// side lives here; proofs and verifying keys are produced elsewhere and enter
// through the binary encodings below.
package groth16

import (
	"encoding/binary"
	"errors"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254"
)

var (
	// ErrInvalidVerifyingKey is returned when a verifying key contains a point
	// outside the curve or the expected subgroup
	ErrInvalidVerifyingKey = errors.New("groth16: invalid verifying key")

	// ErrInvalidWitnessSize is returned when a serialized object has an
	// unexpected length
	ErrInvalidWitnessSize = errors.New("groth16: invalid serialized size")
)

// Proof represents a Groth16 proof (A, B, C) as in the original paper
type Proof struct {
	Ar, Krs bn254.G1Affine
	Bs      bn254.G2Affine
}

// SizeOfProof is the size in bytes of a serialized Proof
const SizeOfProof = bn254.SizeOfG1AffineUncompressed + bn254.SizeOfG2AffineUncompressed + bn254.SizeOfG1AffineUncompressed

// VerifyingKey represents a Groth16 verifying key.
//
// Precompute must be called before Verify; it derives E = e(Alpha, Beta) and
// the negated gamma and delta points used in the pairing check.
type VerifyingKey struct {
	// E = e(Alpha, G2.Beta)
	E bn254.PairingResult

	G1 struct {
		Alpha bn254.G1Affine
		K     []bn254.G1Affine // K[0] is the constant term, K[1:] pair with public inputs
	}

	G2 struct {
		Beta, Gamma, Delta bn254.G2Affine
		GammaNeg, DeltaNeg bn254.G2Affine
	}

	precomputed bool
}

// NbPublicInputs returns the number of public inputs the key expects
func (vk *VerifyingKey) NbPublicInputs() int {
	return len(vk.G1.K) - 1
}

// Precompute validates the key points and derives the pairing-side constants.
//
// It must be called once after the key points are set (UnmarshalBinary does it
// for the caller). Verify returns false on a key that was never precomputed.
func (vk *VerifyingKey) Precompute() error {
	if !vk.G1.Alpha.IsInSubgroup() {
		return ErrInvalidVerifyingKey
	}
	for i := range vk.G1.K {
		if !vk.G1.K[i].IsInSubgroup() {
			return ErrInvalidVerifyingKey
		}
	}
	if !vk.G2.Beta.IsInSubgroup() || !vk.G2.Gamma.IsInSubgroup() || !vk.G2.Delta.IsInSubgroup() {
		return ErrInvalidVerifyingKey
	}

	vk.G2.GammaNeg.Neg(&vk.G2.Gamma)
	vk.G2.DeltaNeg.Neg(&vk.G2.Delta)

	curve := bn254.BN254()
	var ml bn254.PairingResult
	curve.MillerLoop(vk.G1.Alpha, vk.G2.Beta, &ml)
	vk.E = curve.FinalExponentiation(&ml)

	vk.precomputed = true
	return nil
}

// MarshalBinary encodes the proof as Ar || Bs || Krs, uncompressed
func (proof *Proof) MarshalBinary() ([]byte, error) {
	res := make([]byte, 0, SizeOfProof)
	bufG1 := proof.Ar.Bytes()
	res = append(res, bufG1[:]...)
	bufG2 := proof.Bs.Bytes()
	res = append(res, bufG2[:]...)
	bufG1 = proof.Krs.Bytes()
	res = append(res, bufG1[:]...)
	return res, nil
}

// UnmarshalBinary decodes the proof, checking each point is on the curve
func (proof *Proof) UnmarshalBinary(buf []byte) error {
	if len(buf) != SizeOfProof {
		return ErrInvalidWitnessSize
	}
	offset := 0
	if err := proof.Ar.SetBytes(buf[offset : offset+bn254.SizeOfG1AffineUncompressed]); err != nil {
		return err
	}
	offset += bn254.SizeOfG1AffineUncompressed
	if err := proof.Bs.SetBytes(buf[offset : offset+bn254.SizeOfG2AffineUncompressed]); err != nil {
		return err
	}
	offset += bn254.SizeOfG2AffineUncompressed
	return proof.Krs.SetBytes(buf[offset : offset+bn254.SizeOfG1AffineUncompressed])
}

// MarshalBinary encodes the verifying key as
// Alpha || Beta || Gamma || Delta || len(K) (uint32, little endian) || K[0] || ... || K[n]
func (vk *VerifyingKey) MarshalBinary() ([]byte, error) {
	res := make([]byte, 0, 4+4*bn254.SizeOfG1AffineUncompressed+3*bn254.SizeOfG2AffineUncompressed)
	bufG1 := vk.G1.Alpha.Bytes()
	res = append(res, bufG1[:]...)
	bufG2 := vk.G2.Beta.Bytes()
	res = append(res, bufG2[:]...)
	bufG2 = vk.G2.Gamma.Bytes()
	res = append(res, bufG2[:]...)
	bufG2 = vk.G2.Delta.Bytes()
	res = append(res, bufG2[:]...)

	var lenK [4]byte
	binary.LittleEndian.PutUint32(lenK[:], uint32(len(vk.G1.K)))
	res = append(res, lenK[:]...)
	for i := range vk.G1.K {
		bufG1 = vk.G1.K[i].Bytes()
		res = append(res, bufG1[:]...)
	}
	return res, nil
}

// UnmarshalBinary decodes the verifying key and calls Precompute
func (vk *VerifyingKey) UnmarshalBinary(buf []byte) error {
	minSize := bn254.SizeOfG1AffineUncompressed + 3*bn254.SizeOfG2AffineUncompressed + 4
	if len(buf) < minSize {
		return ErrInvalidWitnessSize
	}

	offset := 0
	if err := vk.G1.Alpha.SetBytes(buf[offset : offset+bn254.SizeOfG1AffineUncompressed]); err != nil {
		return err
	}
	offset += bn254.SizeOfG1AffineUncompressed
	if err := vk.G2.Beta.SetBytes(buf[offset : offset+bn254.SizeOfG2AffineUncompressed]); err != nil {
		return err
	}
	offset += bn254.SizeOfG2AffineUncompressed
	if err := vk.G2.Gamma.SetBytes(buf[offset : offset+bn254.SizeOfG2AffineUncompressed]); err != nil {
		return err
	}
	offset += bn254.SizeOfG2AffineUncompressed
	if err := vk.G2.Delta.SetBytes(buf[offset : offset+bn254.SizeOfG2AffineUncompressed]); err != nil {
		return err
	}
	offset += bn254.SizeOfG2AffineUncompressed

	lenK := int(binary.LittleEndian.Uint32(buf[offset : offset+4]))
	offset += 4
	if lenK == 0 || len(buf) != offset+lenK*bn254.SizeOfG1AffineUncompressed {
		return ErrInvalidWitnessSize
	}

	vk.G1.K = make([]bn254.G1Affine, lenK)
	for i := 0; i < lenK; i++ {
		if err := vk.G1.K[i].SetBytes(buf[offset : offset+bn254.SizeOfG1AffineUncompressed]); err != nil {
			return err
		}
		offset += bn254.SizeOfG1AffineUncompressed
	}

	return vk.Precompute()
}
