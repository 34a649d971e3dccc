package hd

import (
	"crypto/rand"
)

const (
	SeedKey        = "Bitcoin seed" // HMAC key for the master node
	RandomSeedSize = 32
	MinSeedSize    = 16
	MaxSeedSize    = 64
)

// Master is the root of a key tree: depth 0, index 0 and no parent.
type Master struct {
	*Node
	seed []byte
}

// NewMaster derives the master node from seed. A seed whose hash is not a
// valid key is an ImportError; the caller must choose another seed.
func NewMaster(seed []byte) (*Master, error) {
	if len(seed) < MinSeedSize || len(seed) > MaxSeedSize {
		return nil, NewErr(ImportError, "seed must be %d to %d bytes, got %d", MinSeedSize, MaxSeedSize, len(seed))
	}
	I := HmacSha512([]byte(SeedKey), seed)
	priv, err := NewPrivateKeyFromBytes(I[:32])
	if err != nil {
		return nil, NewErr(ImportError, "seed does not produce a valid master key")
	}
	m := &Master{
		Node: newNode(0, 0, [4]byte{}, I[32:], newPrivateMaterial(priv)),
		seed: append([]byte(nil), seed...),
	}
	return m, nil
}

func NewMasterFromSeedHex(seedHex string) (*Master, error) {
	seed, err := HexDecode(seedHex)
	if err != nil {
		return nil, NewErr(ImportError, "seed is not valid hex: %v", err)
	}
	return NewMaster(seed)
}

// GenerateMaster draws random seeds until one yields a valid master key.
func GenerateMaster() (*Master, error) {
	seed := make([]byte, RandomSeedSize)
	for {
		if _, err := rand.Read(seed); err != nil {
			return nil, NewErr(ImportError, "cannot read random seed: %v", err)
		}
		m, err := NewMaster(seed)
		if err == nil {
			return m, nil
		}
		if !IsError(err, ImportError) {
			return nil, err
		}
	}
}

// NewMasterFromPrivateKey builds a master node from a key and its 32-byte chain code.
func NewMasterFromPrivateKey(priv *PrivateKey, chainCode []byte) (*Master, error) {
	if len(chainCode) != 32 {
		return nil, NewErr(ImportError, "chain code must be 32 bytes, got %d", len(chainCode))
	}
	return &Master{Node: newNode(0, 0, [4]byte{}, chainCode, newPrivateMaterial(priv))}, nil
}

// NewMasterFromPublicKey builds a public-only master node; only normal
// children can be derived from it.
func NewMasterFromPublicKey(pub *PublicKey, chainCode []byte) (*Master, error) {
	if len(chainCode) != 32 {
		return nil, NewErr(ImportError, "chain code must be 32 bytes, got %d", len(chainCode))
	}
	return &Master{Node: newNode(0, 0, [4]byte{}, chainCode, publicMaterial{pub: pub.Compressed()})}, nil
}

// Seed is empty for masters imported from a key.
func (m *Master) Seed() []byte {
	return append([]byte(nil), m.seed...)
}

func (m *Master) SeedHex() string {
	return HexEncode(m.seed)
}
