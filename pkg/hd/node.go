package hd

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// https://en.bitcoin.it/wiki/BIP_0032

const (
	HardenedKeyStart = 0x80000000 // first hardened child number
	MaxDepth         = 255        // the serialized depth is one byte

	minChildIndex = -(1 << 31)
	maxChildIndex = 1<<32 - 1
)

// keyMaterial is the key held by a Node: either a private key with its
// public key, or a public key alone.
type keyMaterial interface {
	publicKey() *PublicKey
}

type privateMaterial struct {
	priv *PrivateKey
	pub  *PublicKey
}

type publicMaterial struct {
	pub *PublicKey
}

func (m privateMaterial) publicKey() *PublicKey { return m.pub }
func (m publicMaterial) publicKey() *PublicKey  { return m.pub }

func newPrivateMaterial(priv *PrivateKey) privateMaterial {
	return privateMaterial{priv: priv, pub: priv.PublicKey()}
}

// Node is one element of a BIP32 key tree. Nodes are immutable; Child and
// PublicOnly return new nodes.
type Node struct {
	depth             uint8
	index             int64 // as supplied: hardened if negative or >= HardenedKeyStart
	parentFingerprint [4]byte
	chainCode         [32]byte
	key               keyMaterial
}

func newNode(depth uint8, index int64, parentFingerprint [4]byte, chainCode []byte, key keyMaterial) *Node {
	n := &Node{depth: depth, index: index, parentFingerprint: parentFingerprint, key: key}
	if copy(n.chainCode[:], chainCode) != 32 {
		panic("newNode: wrong chain code length")
	}
	return n
}

func (n *Node) Depth() uint8 {
	return n.depth
}

// Index is the child index the node was derived with, which may be negative.
func (n *Node) Index() int64 {
	return n.index
}

// ChildNumber is the index as serialized: its 32-bit two's complement.
func (n *Node) ChildNumber() uint32 {
	return uint32(n.index)
}

func (n *Node) IsHardened() bool {
	return isHardened(n.index)
}

func isHardened(index int64) bool {
	return index < 0 || index >= HardenedKeyStart
}

func (n *Node) ParentFingerprint() [4]byte {
	return n.parentFingerprint
}

func (n *Node) ChainCode() []byte {
	cc := n.chainCode
	return cc[:]
}

// ChainCodeHex is always 64 characters, leading zero bytes included.
func (n *Node) ChainCodeHex() string {
	return HexEncode(n.chainCode[:])
}

func (n *Node) PublicKey() *PublicKey {
	return n.key.publicKey()
}

// PrivateKey returns the node's private key, or false for a public-only node.
func (n *Node) PrivateKey() (*PrivateKey, bool) {
	if m, ok := n.key.(privateMaterial); ok {
		return m.priv, true
	}
	return nil, false
}

func (n *Node) IsPrivate() bool {
	_, ok := n.key.(privateMaterial)
	return ok
}

func (n *Node) Identifier() []byte {
	return n.PublicKey().Identifier()
}

func (n *Node) Fingerprint() [4]byte {
	return n.PublicKey().Fingerprint()
}

func (n *Node) Address(chain *NetworkParams) Address {
	return n.PublicKey().Address(chain)
}

// PublicOnly returns a copy of the node without its private key.
func (n *Node) PublicOnly() *Node {
	c := *n
	c.key = publicMaterial{pub: n.PublicKey()}
	return &c
}

// Child derives the child node at index. Hardened indexes need a private
// node. InvalidKeyForIndex is returned as-is; the caller picks another index.
func (n *Node) Child(index int64) (*Node, error) {
	if index < minChildIndex || index > maxChildIndex {
		return nil, NewErr(InvalidPath, "child index %d does not fit in 32 bits", index)
	}
	if n.depth == MaxDepth {
		return nil, NewErr(InvalidPath, "cannot derive below depth %d", MaxDepth)
	}
	i := uint32(index)

	// message: 0x00 || ser256(k) || ser32(i) or serP(K) || ser32(i)
	var msg [1 + 32 + 4]byte
	if isHardened(index) {
		m, ok := n.key.(privateMaterial)
		if !ok {
			return nil, NewErr(PrivatePublicMismatch, "cannot derive hardened child %d from a public key", index)
		}
		copy(msg[1:33], m.priv.Bytes())
	} else {
		copy(msg[0:33], n.PublicKey().CompressedBytes())
	}
	ser32(i, msg[33:37])

	I := HmacSha512(n.chainCode[:], msg[:])
	var il secp256k1.ModNScalar
	if il.SetByteSlice(I[:32]) {
		return nil, NewErr(InvalidKeyForIndex, "I_L is not less than N for index %d", index)
	}

	var key keyMaterial
	switch m := n.key.(type) {
	case privateMaterial:
		k := m.priv.scalar()
		il.Add(&k)
		if il.IsZero() {
			return nil, NewErr(InvalidKeyForIndex, "child key is zero for index %d", index)
		}
		key = newPrivateMaterial(newPrivateKey(&il))
	case publicMaterial:
		point, ok := scalarBaseMultAdd(&il, m.pub.key)
		if !ok {
			return nil, NewErr(InvalidKeyForIndex, "child key is the point at infinity for index %d", index)
		}
		key = publicMaterial{pub: &PublicKey{key: point, compressed: true}}
	}
	return newNode(n.depth+1, index, n.Fingerprint(), I[32:], key), nil
}
