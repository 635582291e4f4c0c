// Package tetsuozk provides Zero Knowledge Proof (ZKP) verification built on
// the BN254 pairing-friendly curve.
//
// tetsuozk supports the following ZKP schemes:
//   - Groth16 (verification only)
//
// tetsuozk supports the following curves:
//   - BN254
package tetsuozk

import (
	"github.com/blang/semver/v4"
	"github.com/kamiyo-ai/tetsuo-zk/ecc"
)

var Version = semver.MustParse("0.1.0")

// Curves return the curves supported by tetsuozk
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BN254,
	}
}
