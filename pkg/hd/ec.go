package hd

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve arithmetic is delegated to decred's secp256k1; this file only adapts
// it to the scalar and point shapes used by the derivation engine.

const (
	PrivKeyLen            = 32 // bytes.
	PubKeyCompressedLen   = 33 // bytes: [2/3][32-X] 2=even 3=odd
	PubKeyUncompressedLen = 65 // bytes: [4][32-X][32-Y]
)

// CurveOrder is the order N of the secp256k1 base point.
var CurveOrder, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// parseScalar reads a 32-byte big-endian value, reporting false unless it
// lies in [1, N-1].
func parseScalar(b []byte) (secp256k1.ModNScalar, bool) {
	var s secp256k1.ModNScalar
	if len(b) != PrivKeyLen {
		return s, false
	}
	overflow := s.SetByteSlice(b)
	return s, !overflow && !s.IsZero()
}

// ValidScalar reports whether b is a 32-byte scalar in [1, N-1].
func ValidScalar(b []byte) bool {
	_, ok := parseScalar(b)
	return ok
}

// scalarBaseMult computes k·G.
func scalarBaseMult(k *secp256k1.ModNScalar) *secp256k1.PublicKey {
	var p secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &p)
	p.ToAffine()
	return secp256k1.NewPublicKey(&p.X, &p.Y)
}

// scalarBaseMultAdd computes k·G + p, the public-parent child point.
func scalarBaseMultAdd(k *secp256k1.ModNScalar, p *secp256k1.PublicKey) (*secp256k1.PublicKey, bool) {
	var kG, pp, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &kG)
	p.AsJacobian(&pp)
	secp256k1.AddNonConst(&kG, &pp, &sum)
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return nil, false
	}
	sum.ToAffine()
	return secp256k1.NewPublicKey(&sum.X, &sum.Y), true
}

// parsePoint parses a 33-byte compressed or 65-byte uncompressed encoding,
// rejecting points that are not on the curve.
func parsePoint(b []byte) (*secp256k1.PublicKey, error) {
	if len(b) != PubKeyCompressedLen && len(b) != PubKeyUncompressedLen {
		return nil, NewErr(KeyFormatNotFound, "public key must be %d or %d bytes, got %d", PubKeyCompressedLen, PubKeyUncompressedLen, len(b))
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, NewErr(InvalidKey, "invalid public key: %v", err)
	}
	return pub, nil
}
