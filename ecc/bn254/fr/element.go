// Package fr implements arithmetic in the BN254 scalar field GF(r) with
//
//	r = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// Elements are stored as 4 little-endian 64-bit limbs in Montgomery form
// (with R = 2^256) and are kept fully reduced at all times.
package fr

import (
	"crypto/rand"
	"errors"
	"math/big"
	"math/bits"
)

// Element represents a scalar field element in Montgomery form.
type Element [4]uint64

// Limbs is the number of 64-bit words per element.
const Limbs = 4

// Bits is the number of bits needed to represent the modulus.
const Bits = 254

// Bytes is the number of bytes needed to represent the modulus.
const Bytes = 32

// r, little-endian limbs
var qElement = Element{
	0x43e1f593f0000001,
	0x2833e84879b97091,
	0xb85045b68181585d,
	0x30644e72e131a029,
}

// -r^{-1} mod 2^64
const qInvNeg uint64 = 0xc2e1f593efffffff

// R^2 mod r
var rSquare = Element{
	0x1bb8e645ae216da7,
	0x53fe3ab1e35c59e3,
	0x8c49833d53bb8085,
	0x0216d0b17f4e44a5,
}

// R mod r, the Montgomery representation of 1
var one = Element{
	0xac96341c4ffffffb,
	0x36fc76959f60cd29,
	0x666ea36f7879462e,
	0x0e0a77c19a07df2f,
}

// r - 2, exponent used for Fermat inversion
var qMinusTwo = [4]uint64{
	0x43e1f593efffffff,
	0x2833e84879b97091,
	0xb85045b68181585d,
	0x30644e72e131a029,
}

var bigModulus *big.Int

func init() {
	bigModulus = new(big.Int)
	bigModulus.SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
}

// Modulus returns r as a big.Int.
func Modulus() *big.Int {
	return new(big.Int).Set(bigModulus)
}

// mac computes a*b + c + d over 128 bits. The result cannot overflow.
func mac(a, b, c, d uint64) (hi, lo uint64) {
	var carry uint64
	hi, lo = bits.Mul64(a, b)
	lo, carry = bits.Add64(lo, c, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, d, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	z[0], z[1], z[2], z[3] = 0, 0, 0, 0
	return z
}

// SetOne sets z to 1 (in Montgomery form) and returns z.
func (z *Element) SetOne() *Element {
	*z = one
	return z
}

// Set sets z to x and returns z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// SetUint64 sets z to v and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	z[0], z[1], z[2], z[3] = v, 0, 0, 0
	return z.toMont()
}

// SetBigInt sets z to v mod r and returns z.
func (z *Element) SetBigInt(v *big.Int) *Element {
	var t big.Int
	t.Mod(v, bigModulus)
	words := t.Bits()
	z.SetZero()
	for i := 0; i < len(words) && i < 4; i++ {
		z[i] = uint64(words[i])
	}
	return z.toMont()
}

// SetString sets z to the value of s, interpreted in base 10, reduced mod r.
// It panics if s is not a valid number, as it is meant for constants.
func (z *Element) SetString(s string) *Element {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("fr.Element.SetString: invalid number " + s)
	}
	return z.SetBigInt(v)
}

// SetRandom sets z to a uniformly random element and returns it, or an error
// if the underlying randomness source fails.
func (z *Element) SetRandom() (*Element, error) {
	var buf [Bytes]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, err
		}
		buf[0] &= 0x3f
		z[3] = uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
			uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7])
		z[2] = uint64(buf[8])<<56 | uint64(buf[9])<<48 | uint64(buf[10])<<40 | uint64(buf[11])<<32 |
			uint64(buf[12])<<24 | uint64(buf[13])<<16 | uint64(buf[14])<<8 | uint64(buf[15])
		z[1] = uint64(buf[16])<<56 | uint64(buf[17])<<48 | uint64(buf[18])<<40 | uint64(buf[19])<<32 |
			uint64(buf[20])<<24 | uint64(buf[21])<<16 | uint64(buf[22])<<8 | uint64(buf[23])
		z[0] = uint64(buf[24])<<56 | uint64(buf[25])<<48 | uint64(buf[26])<<40 | uint64(buf[27])<<32 |
			uint64(buf[28])<<24 | uint64(buf[29])<<16 | uint64(buf[30])<<8 | uint64(buf[31])
		if z.smallerThanModulus() {
			return z.toMont(), nil
		}
	}
}

// ErrInvalidEncoding is returned when a byte string does not encode a
// canonical scalar.
var ErrInvalidEncoding = errors.New("byte string is not a canonical scalar")

// SetBytes interprets b as a big-endian unsigned integer, reduces it mod r
// and sets z to the result.
func (z *Element) SetBytes(b []byte) *Element {
	return z.SetBigInt(new(big.Int).SetBytes(b))
}

// SetBytesCanonical is like SetBytes but requires exactly Bytes bytes
// encoding a value strictly smaller than r.
func (z *Element) SetBytesCanonical(b []byte) error {
	if len(b) != Bytes {
		return ErrInvalidEncoding
	}
	for i := 0; i < 4; i++ {
		z[i] = uint64(b[31-8*i]) | uint64(b[30-8*i])<<8 | uint64(b[29-8*i])<<16 | uint64(b[28-8*i])<<24 |
			uint64(b[27-8*i])<<32 | uint64(b[26-8*i])<<40 | uint64(b[25-8*i])<<48 | uint64(b[24-8*i])<<56
	}
	if !z.smallerThanModulus() {
		z.SetZero()
		return ErrInvalidEncoding
	}
	z.toMont()
	return nil
}

// Bytes returns the canonical big-endian byte representation of z.
func (z *Element) Bytes() [Bytes]byte {
	var res [Bytes]byte
	t := *z
	t.fromMont()
	for i := 0; i < 4; i++ {
		res[31-8*i] = byte(t[i])
		res[30-8*i] = byte(t[i] >> 8)
		res[29-8*i] = byte(t[i] >> 16)
		res[28-8*i] = byte(t[i] >> 24)
		res[27-8*i] = byte(t[i] >> 32)
		res[26-8*i] = byte(t[i] >> 40)
		res[25-8*i] = byte(t[i] >> 48)
		res[24-8*i] = byte(t[i] >> 56)
	}
	return res
}

// BigInt sets res to the canonical (non-Montgomery) value of z and returns it.
func (z *Element) BigInt(res *big.Int) *big.Int {
	b := z.Bytes()
	return res.SetBytes(b[:])
}

// Bits returns the canonical little-endian limbs of z (non-Montgomery).
func (z *Element) Bits() [4]uint64 {
	t := *z
	t.fromMont()
	return [4]uint64(t)
}

// String returns the decimal representation of z.
func (z *Element) String() string {
	var t big.Int
	return z.BigInt(&t).String()
}

// IsZero returns true if z == 0.
func (z *Element) IsZero() bool {
	return z[0]|z[1]|z[2]|z[3] == 0
}

// IsOne returns true if z == 1.
func (z *Element) IsOne() bool {
	return *z == one
}

// Equal returns true if z == x.
func (z *Element) Equal(x *Element) bool {
	return *z == *x
}

// Cmp compares z and x as integers in regular form and returns -1, 0 or 1
func (z *Element) Cmp(x *Element) int {
	a := z.Bits()
	b := x.Bits()
	for i := 3; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

func (z *Element) smallerThanModulus() bool {
	var b uint64
	_, b = bits.Sub64(z[0], qElement[0], 0)
	_, b = bits.Sub64(z[1], qElement[1], b)
	_, b = bits.Sub64(z[2], qElement[2], b)
	_, b = bits.Sub64(z[3], qElement[3], b)
	return b == 1
}

// reduceOnce conditionally subtracts r, in constant time. The input is
// assumed to be smaller than 2r.
func (z *Element) reduceOnce() *Element {
	var t Element
	var b uint64
	t[0], b = bits.Sub64(z[0], qElement[0], 0)
	t[1], b = bits.Sub64(z[1], qElement[1], b)
	t[2], b = bits.Sub64(z[2], qElement[2], b)
	t[3], b = bits.Sub64(z[3], qElement[3], b)
	mask := -(b ^ 1)
	z[0] = (z[0] &^ mask) | (t[0] & mask)
	z[1] = (z[1] &^ mask) | (t[1] & mask)
	z[2] = (z[2] &^ mask) | (t[2] & mask)
	z[3] = (z[3] &^ mask) | (t[3] & mask)
	return z
}

// Add sets z = x + y mod r and returns z.
func (z *Element) Add(x, y *Element) *Element {
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], _ = bits.Add64(x[3], y[3], c)
	return z.reduceOnce()
}

// AddAssign sets z = z + x mod r and returns z.
func (z *Element) AddAssign(x *Element) *Element {
	return z.Add(z, x)
}

// Double sets z = 2*x mod r and returns z.
func (z *Element) Double(x *Element) *Element {
	return z.Add(x, x)
}

// Halve sets z to z / 2 mod q
func (z *Element) Halve() *Element {
	var carry uint64
	if z[0]&1 == 1 {
		z[0], carry = bits.Add64(z[0], qElement[0], 0)
		z[1], carry = bits.Add64(z[1], qElement[1], carry)
		z[2], carry = bits.Add64(z[2], qElement[2], carry)
		z[3], carry = bits.Add64(z[3], qElement[3], carry)
	}
	z[0] = z[0]>>1 | z[1]<<63
	z[1] = z[1]>>1 | z[2]<<63
	z[2] = z[2]>>1 | z[3]<<63
	z[3] = z[3]>>1 | carry<<63
	return z
}

// Sub sets z = x - y mod r and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)
	mask := -b
	var c uint64
	z[0], c = bits.Add64(z[0], qElement[0]&mask, 0)
	z[1], c = bits.Add64(z[1], qElement[1]&mask, c)
	z[2], c = bits.Add64(z[2], qElement[2]&mask, c)
	z[3], _ = bits.Add64(z[3], qElement[3]&mask, c)
	return z
}

// SubAssign sets z = z - x mod r and returns z.
func (z *Element) SubAssign(x *Element) *Element {
	return z.Sub(z, x)
}

// Neg sets z = -x mod r and returns z.
func (z *Element) Neg(x *Element) *Element {
	if x.IsZero() {
		return z.SetZero()
	}
	var b uint64
	z[0], b = bits.Sub64(qElement[0], x[0], 0)
	z[1], b = bits.Sub64(qElement[1], x[1], b)
	z[2], b = bits.Sub64(qElement[2], x[2], b)
	z[3], _ = bits.Sub64(qElement[3], x[3], b)
	return z
}

// Mul sets z = x * y mod r (Montgomery multiplication, CIOS) and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	var t [5]uint64
	for i := 0; i < 4; i++ {
		var carry, hi uint64
		hi, t[0] = mac(x[i], y[0], t[0], 0)
		carry = hi
		hi, t[1] = mac(x[i], y[1], t[1], carry)
		carry = hi
		hi, t[2] = mac(x[i], y[2], t[2], carry)
		carry = hi
		hi, t[3] = mac(x[i], y[3], t[3], carry)
		carry = hi
		var spill uint64
		t[4], spill = bits.Add64(t[4], carry, 0)

		m := t[0] * qInvNeg
		hi, _ = mac(m, qElement[0], t[0], 0)
		carry = hi
		hi, t[0] = mac(m, qElement[1], t[1], carry)
		carry = hi
		hi, t[1] = mac(m, qElement[2], t[2], carry)
		carry = hi
		hi, t[2] = mac(m, qElement[3], t[3], carry)
		carry = hi
		t[3], carry = bits.Add64(t[4], carry, 0)
		t[4] = spill + carry
	}
	z[0], z[1], z[2], z[3] = t[0], t[1], t[2], t[3]
	return z.reduceOnce()
}

// MulAssign sets z = z * x mod r and returns z.
func (z *Element) MulAssign(x *Element) *Element {
	return z.Mul(z, x)
}

// Square sets z = x * x mod r and returns z.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// toMont maps z to the Montgomery domain.
func (z *Element) toMont() *Element {
	return z.Mul(z, &rSquare)
}

// fromMont maps z out of the Montgomery domain.
func (z *Element) fromMont() *Element {
	for i := 0; i < 4; i++ {
		m := z[0] * qInvNeg
		var carry, hi uint64
		hi, _ = mac(m, qElement[0], z[0], 0)
		carry = hi
		hi, z[0] = mac(m, qElement[1], z[1], carry)
		carry = hi
		hi, z[1] = mac(m, qElement[2], z[2], carry)
		carry = hi
		hi, z[2] = mac(m, qElement[3], z[3], carry)
		z[3] = hi
	}
	return z
}

// Exp sets z = x^e mod r and returns z.
func (z *Element) Exp(x Element, e *big.Int) *Element {
	res := one
	for i := e.BitLen() - 1; i >= 0; i-- {
		res.Square(&res)
		if e.Bit(i) == 1 {
			res.Mul(&res, &x)
		}
	}
	return z.Set(&res)
}

// Inverse sets z = x^-1 mod r and returns z, computed as x^(r-2).
// If x is zero, z is set to zero.
func (z *Element) Inverse(x *Element) *Element {
	e := qMinusTwo
	res := one
	for i := 3; i >= 0; i-- {
		for b := 63; b >= 0; b-- {
			res.Square(&res)
			if (e[i]>>uint(b))&1 == 1 {
				res.Mul(&res, x)
			}
		}
	}
	return z.Set(&res)
}

// BatchInvert inverts the slice in a single field inversion using the
// Montgomery batch trick. Zero entries stay zero.
func BatchInvert(a []Element) []Element {
	res := make([]Element, len(a))
	if len(a) == 0 {
		return res
	}
	zeroes := make([]bool, len(a))
	var accumulator Element
	accumulator.SetOne()
	for i := 0; i < len(a); i++ {
		if a[i].IsZero() {
			zeroes[i] = true
			continue
		}
		res[i] = accumulator
		accumulator.Mul(&accumulator, &a[i])
	}
	accumulator.Inverse(&accumulator)
	for i := len(a) - 1; i >= 0; i-- {
		if zeroes[i] {
			continue
		}
		res[i].Mul(&res[i], &accumulator)
		accumulator.Mul(&accumulator, &a[i])
	}
	return res
}
