package hd

import (
	"strings"
)

// KeyKind selects the private or public form of an extended key.
type KeyKind int

const (
	Public KeyKind = iota
	Private
)

func (k KeyKind) String() string {
	if k == Private {
		return "private"
	}
	return "public"
}

func ParseKeyKind(s string) (KeyKind, error) {
	switch strings.ToLower(s) {
	case "public", "pub":
		return Public, nil
	case "private", "priv", "prv":
		return Private, nil
	}
	return Public, NewErr(ImportError, "%q is not a key kind (public or private)", s)
}

const (
	SerializedBip32KeyLength = 4 + 1 + 4 + 4 + 32 + 33
)

// SerializedBytes lays out the node as an extended key:
//
//	version(4) depth(1) parent fingerprint(4) child number(4) chain code(32) key(33)
//
// where key is 0x00 || ser256(k) for the private form and serP(K) for the public form.
func (n *Node) SerializedBytes(kind KeyKind, chain *NetworkParams) ([]byte, error) {
	data := make([]byte, SerializedBip32KeyLength)
	ser32(chain.Bip32Version(kind), data[0:4])
	data[4] = n.depth
	copy(data[5:9], n.parentFingerprint[:])
	ser32(n.ChildNumber(), data[9:13])
	copy(data[13:45], n.chainCode[:])
	if kind == Private {
		priv, ok := n.PrivateKey()
		if !ok {
			return nil, NewErr(PrivatePublicMismatch, "cannot serialize a public node as an extended private key")
		}
		data[45] = 0x00
		if copy(data[46:78], priv.Bytes()) != PrivKeyLen {
			panic("SerializedBytes: wrong key length")
		}
	} else {
		if copy(data[45:78], n.PublicKey().CompressedBytes()) != PubKeyCompressedLen {
			panic("SerializedBytes: wrong pubkey length")
		}
	}
	return data, nil
}

func (n *Node) SerializedHex(kind KeyKind, chain *NetworkParams) (string, error) {
	data, err := n.SerializedBytes(kind, chain)
	if err != nil {
		return "", err
	}
	return HexEncode(data), nil
}

// EncodeBip32 returns the Base58Check extended key (xprv/xpub on bitcoin).
func (n *Node) EncodeBip32(kind KeyKind, chain *NetworkParams) (string, error) {
	data, err := n.SerializedBytes(kind, chain)
	if err != nil {
		return "", err
	}
	return Base58EncodeCheck(data), nil
}

// DecodeBip32 imports an extended key, resolving the network from its version.
func DecodeBip32(extendedKey string) (*Node, *NetworkParams, error) {
	return Networks.DecodeBip32(extendedKey)
}

func (r *Registry) DecodeBip32(extendedKey string) (*Node, *NetworkParams, error) {
	data, err := Base58DecodeCheck(extendedKey)
	if err != nil {
		return nil, nil, err
	}
	if len(data) != SerializedBip32KeyLength {
		return nil, nil, NewErr(ImportError, "not a bip32 extended key (%d bytes, expecting %d)", len(data), SerializedBip32KeyLength)
	}
	chain, kind, err := r.ByBip32Version(deser32(data[0:4]))
	if err != nil {
		return nil, nil, err
	}
	depth := data[4]
	var fingerprint [4]byte
	copy(fingerprint[:], data[5:9])
	childNumber := deser32(data[9:13])
	if depth == 0 && (fingerprint != [4]byte{} || childNumber != 0) {
		return nil, nil, NewErr(ImportError, "master extended key has a parent fingerprint or child number")
	}

	var key keyMaterial
	if kind == Private {
		if data[45] != 0x00 {
			return nil, nil, NewErr(ImportError, "extended private key does not start with 0x00")
		}
		priv, err := NewPrivateKeyFromBytes(data[46:78])
		if err != nil {
			return nil, nil, NewErr(ImportError, "extended private key: %v", err)
		}
		key = newPrivateMaterial(priv)
	} else {
		if data[45] != 0x02 && data[45] != 0x03 {
			return nil, nil, NewErr(ImportError, "extended public key is not a compressed point")
		}
		pub, err := NewPublicKeyFromBytes(data[45:78])
		if err != nil {
			return nil, nil, NewErr(ImportError, "extended public key: %v", err)
		}
		key = publicMaterial{pub: pub}
	}
	return newNode(depth, int64(childNumber), fingerprint, data[13:45], key), chain, nil
}

func ser32(i uint32, to []byte) {
	// serialize a 32-bit unsigned integer, most significant byte first.
	to[0] = byte(i >> 24)
	to[1] = byte(i >> 16)
	to[2] = byte(i >> 8)
	to[3] = byte(i >> 0)
}

func deser32(from []byte) uint32 {
	// deserialize a 32-bit unsigned integer, most significant byte first.
	return (uint32(from[0]) << 24) | (uint32(from[1]) << 16) | (uint32(from[2]) << 8) | (uint32(from[3]))
}
