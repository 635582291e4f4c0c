package bn254

import (
	"errors"

	"github.com/kamiyo-ai/tetsuo-zk/ecc/bn254/fp"
)

// SizeOfG1AffineUncompressed is the size in bytes of a serialized G1 point
const SizeOfG1AffineUncompressed = 2 * fp.Bytes

// SizeOfG2AffineUncompressed is the size in bytes of a serialized G2 point
const SizeOfG2AffineUncompressed = 4 * fp.Bytes

var (
	// ErrInvalidEncoding is returned when a byte string has the wrong size
	// or holds a non-canonical coordinate.
	ErrInvalidEncoding = errors.New("bn254: invalid point encoding")

	// ErrPointNotOnCurve is returned when decoded coordinates do not
	// satisfy the curve equation.
	ErrPointNotOnCurve = errors.New("bn254: point is not on the curve")
)

// Bytes returns the uncompressed serialization x || y, big-endian
// coordinates. The point at infinity is all zeroes.
func (p *G1Affine) Bytes() [SizeOfG1AffineUncompressed]byte {
	var res [SizeOfG1AffineUncompressed]byte
	if p.IsInfinity() {
		return res
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(res[:fp.Bytes], x[:])
	copy(res[fp.Bytes:], y[:])
	return res
}

// SetBytes deserializes an uncompressed point. Coordinates must be
// canonical (smaller than the field modulus) and on the curve; all zeroes
// decodes to the point at infinity.
func (p *G1Affine) SetBytes(buf []byte) error {
	if len(buf) != SizeOfG1AffineUncompressed {
		return ErrInvalidEncoding
	}
	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		p.SetInfinity()
		return nil
	}
	if err := p.X.SetBytesCanonical(buf[:fp.Bytes]); err != nil {
		return ErrInvalidEncoding
	}
	if err := p.Y.SetBytesCanonical(buf[fp.Bytes:]); err != nil {
		return ErrInvalidEncoding
	}
	if !p.IsOnCurve() {
		return ErrPointNotOnCurve
	}
	return nil
}

// Bytes returns the uncompressed serialization x1 || x0 || y1 || y0
// (imaginary part first, matching the usual BN254 G2 wire order).
// The point at infinity is all zeroes.
func (p *G2Affine) Bytes() [SizeOfG2AffineUncompressed]byte {
	var res [SizeOfG2AffineUncompressed]byte
	if p.IsInfinity() {
		return res
	}
	x1 := p.X.A1.Bytes()
	x0 := p.X.A0.Bytes()
	y1 := p.Y.A1.Bytes()
	y0 := p.Y.A0.Bytes()
	copy(res[:fp.Bytes], x1[:])
	copy(res[fp.Bytes:2*fp.Bytes], x0[:])
	copy(res[2*fp.Bytes:3*fp.Bytes], y1[:])
	copy(res[3*fp.Bytes:], y0[:])
	return res
}

// SetBytes deserializes an uncompressed G2 point. Coordinates must be
// canonical and on the twist; all zeroes decodes to the point at infinity.
// Subgroup membership is not checked here.
func (p *G2Affine) SetBytes(buf []byte) error {
	if len(buf) != SizeOfG2AffineUncompressed {
		return ErrInvalidEncoding
	}
	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		p.SetInfinity()
		return nil
	}
	if err := p.X.A1.SetBytesCanonical(buf[:fp.Bytes]); err != nil {
		return ErrInvalidEncoding
	}
	if err := p.X.A0.SetBytesCanonical(buf[fp.Bytes : 2*fp.Bytes]); err != nil {
		return ErrInvalidEncoding
	}
	if err := p.Y.A1.SetBytesCanonical(buf[2*fp.Bytes : 3*fp.Bytes]); err != nil {
		return ErrInvalidEncoding
	}
	if err := p.Y.A0.SetBytesCanonical(buf[3*fp.Bytes:]); err != nil {
		return ErrInvalidEncoding
	}
	if !p.IsOnCurve() {
		return ErrPointNotOnCurve
	}
	return nil
}
