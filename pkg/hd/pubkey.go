package hd

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKey is an immutable curve point plus the encoding it serializes to.
// Compression changes Bytes, Hex and Address, never Identifier or Fingerprint.
type PublicKey struct {
	key        *secp256k1.PublicKey
	compressed bool
}

const (
	compressedHexKeyLen   = PubKeyCompressedLen * 2
	uncompressedHexKeyLen = PubKeyUncompressedLen * 2
)

// NewPublicKeyFromBytes parses a 33-byte compressed or 65-byte uncompressed point.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	key, err := parsePoint(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key, compressed: len(b) == PubKeyCompressedLen}, nil
}

// ParsePublicKey accepts 130 hex characters (uncompressed) or 66 (compressed).
func ParsePublicKey(raw string) (*PublicKey, error) {
	if (len(raw) != uncompressedHexKeyLen && len(raw) != compressedHexKeyLen) || !IsValidHex(raw) {
		return nil, NewErr(KeyFormatNotFound, "public key is not %d or %d hex characters", compressedHexKeyLen, uncompressedHexKeyLen)
	}
	b, err := HexDecode(raw)
	if err != nil {
		return nil, NewErr(KeyFormatNotFound, "public key is not valid hex: %v", err)
	}
	return NewPublicKeyFromBytes(b)
}

func (k *PublicKey) IsCompressed() bool {
	return k.compressed
}

// Compressed returns the same point with the 33-byte encoding.
func (k *PublicKey) Compressed() *PublicKey {
	return &PublicKey{key: k.key, compressed: true}
}

// Uncompressed returns the same point with the 65-byte encoding.
func (k *PublicKey) Uncompressed() *PublicKey {
	return &PublicKey{key: k.key, compressed: false}
}

// Bytes serializes the point in the key's current encoding.
func (k *PublicKey) Bytes() []byte {
	if k.compressed {
		return k.key.SerializeCompressed()
	}
	return k.key.SerializeUncompressed()
}

func (k *PublicKey) CompressedBytes() []byte {
	return k.key.SerializeCompressed()
}

func (k *PublicKey) Hex() string {
	return HexEncode(k.Bytes())
}

// Identifier is Hash160 of the compressed point.
func (k *PublicKey) Identifier() []byte {
	return Hash160(k.CompressedBytes())
}

// Fingerprint is the first 4 bytes of the Identifier.
func (k *PublicKey) Fingerprint() [4]byte {
	var fp [4]byte
	copy(fp[:], k.Identifier())
	return fp
}

// Address is the P2PKH address of the key in its current encoding.
func (k *PublicKey) Address(chain *NetworkParams) Address {
	return Hash160ToAddress(Hash160(k.Bytes()), chain.p2pkh_address_prefix)
}

// Equal compares points; the compression flag is ignored.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && k.key.IsEqual(other.key)
}
