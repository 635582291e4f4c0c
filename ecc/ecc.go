// Package ecc provides curve identifiers and shared helpers for the
// elliptic curve packages.
package ecc

// ID represents a supported curve
type ID uint16

const (
	UNKNOWN ID = iota
	BN254
)

func (id ID) String() string {
	switch id {
	case BN254:
		return "bn254"
	default:
		return "unknown"
	}
}
