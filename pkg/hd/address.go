package hd

import (
	"errors"
)

type Address string // base-58 Public Key Hash (P2PKH) or Script Hash (P2SH) address

func Hash160ToAddress(hash []byte, prefix byte) Address {
	ver_hash := [1 + 20]byte{}
	ver_hash[0] = prefix
	if copy(ver_hash[1:], hash) != 20 {
		panic("Hash160ToAddress: wrong RIPEMD-160 length")
	}
	return Address(Base58EncodeCheck(ver_hash[:]))
}

// PubKeyToAddress accepts a 33-byte compressed or 65-byte uncompressed key;
// the address hashes the key in the encoding it was given.
func PubKeyToAddress(key []byte, chain *NetworkParams) (Address, error) {
	pub, err := NewPublicKeyFromBytes(key)
	if err != nil {
		return "", errors.New("PubKeyToAddress: invalid pubkey")
	}
	return pub.Address(chain), nil
}

func ValidateP2PKH(address Address, chain *NetworkParams) bool {
	key, err := Base58DecodeCheck(string(address))
	if err != nil {
		return false
	}
	return len(key) == 21 && key[0] == chain.p2pkh_address_prefix
}

func ValidateP2SH(address Address, chain *NetworkParams) bool {
	key, err := Base58DecodeCheck(string(address))
	if err != nil {
		return false
	}
	return len(key) == 21 && key[0] == chain.p2sh_address_prefix
}

// KeyPair is a single private key with its compressed public key,
// outside of any HD tree.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

func GenerateKeyPair() (*KeyPair, error) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: priv.PublicKey()}, nil
}

// NewKeyPair imports a private key in any format ParsePrivateKey accepts.
func NewKeyPair(raw string) (*KeyPair, error) {
	priv, err := ParsePrivateKey(raw)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: priv.PublicKey()}, nil
}

func (p *KeyPair) Address(chain *NetworkParams) Address {
	return p.Public.Address(chain)
}

func (p *KeyPair) WIF(chain *NetworkParams) string {
	return p.Private.WIF(true, chain)
}
