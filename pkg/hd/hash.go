package hd

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

type Hash256 = []byte

func Sha256(bytes []byte) Hash256 {
	result := sha256.Sum256(bytes)
	return result[:]
}

func DoubleSha256(bytes []byte) Hash256 {
	hash := sha256.Sum256(bytes)
	result := sha256.Sum256(hash[:])
	return result[:]
}

func RIPEMD160(bytes []byte) []byte {
	hash := ripemd160.New()
	n, err := hash.Write(bytes)
	if err != nil || n != len(bytes) {
		panic("RIPEMD160: cannot write bytes")
	}
	return hash.Sum(nil)
}

// Hash160 is RIPEMD160(SHA256(bytes)), the key identifier hash.
func Hash160(bytes []byte) []byte {
	return RIPEMD160(Sha256(bytes))
}

// HmacSha512 is the derivation PRF used for master and child keys.
func HmacSha512(key []byte, message []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// checksum is the Base58Check checksum: the first 4 bytes of DoubleSha256.
func checksum(payload []byte) [4]byte {
	var sum [4]byte
	copy(sum[:], DoubleSha256(payload))
	return sum
}
